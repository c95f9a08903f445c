package systems

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/forms"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// 卡片显现动画的起始下移距离和悬停上浮距离
const (
	revealOffset = 30.0
	hoverLift    = 4.0
)

// PageRenderSystem 绘制页面内容和固定导航栏
//
// 文档坐标的元素绘制时减去滚动距离；不在视口内的元素直接跳过。
type PageRenderSystem struct {
	entityManager *ecs.EntityManager
	colors        *PageColors
	body          text.Face
	title         text.Face
	brand         string
	measure       func(string) float64
	messages      *MessageSystem
}

// NewPageRenderSystem 创建页面渲染系统
// colors 由场景持有，切换主题时原地更新
func NewPageRenderSystem(em *ecs.EntityManager, colors *PageColors, fonts *utils.FontSet, messages *MessageSystem, brand string) *PageRenderSystem {
	return &PageRenderSystem{
		entityManager: em,
		colors:        colors,
		body:          fonts.Body,
		title:         fonts.Title,
		brand:         brand,
		measure:       fonts.Measure(),
		messages:      messages,
	}
}

// DrawContent 绘制背景、区块标题、卡片、涟漪、问答和表单提示
func (s *PageRenderSystem) DrawContent(screen *ebiten.Image, scrollY float64) {
	screen.Fill(s.colors.Background)
	vh := float64(screen.Bounds().Dy())

	s.drawSections(screen, scrollY, vh)
	s.drawCards(screen, scrollY, vh)
	s.drawRipples(screen, scrollY)
	s.drawFAQ(screen, scrollY, vh)
	s.drawMessages(screen, scrollY)
}

// DrawNav 绘制固定导航栏和移动端菜单面板
func (s *PageRenderSystem) DrawNav(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, NavBarHeight, s.colors.Surface, false)
	vector.StrokeLine(screen, 0, NavBarHeight, w, NavBarHeight, 1, Fade(s.colors.Muted, 0.3), false)

	drawText(screen, s.title, s.brand, PagePadding, (NavBarHeight-utils.TitleFontSize)/2, s.colors.Accent)

	menu, hasMenu := s.menu()
	if hasMenu && menu.Panel.Height > 0 {
		p := menu.Panel
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), s.colors.Surface, false)
		vector.StrokeLine(screen, 0, float32(p.Y+p.Height), w, float32(p.Y+p.Height), 1, Fade(s.colors.Muted, 0.3), false)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.NavLinkComponent, *components.BoundsComponent](s.entityManager) {
		link, _ := ecs.GetComponent[*components.NavLinkComponent](s.entityManager, id)
		b, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if b.Width == 0 {
			continue
		}

		clr := s.colors.Text
		if link.Active {
			clr = s.colors.Accent
		}
		drawCenteredText(screen, s.body, link.Label, b.X+b.Width/2, b.Y+b.Height/2, clr)
		if link.Active {
			lw := s.measure(link.Label)
			x := b.X + (b.Width-lw)/2
			vector.DrawFilledRect(screen, float32(x), float32(b.Y+b.Height-3), float32(lw), 2, s.colors.Accent, false)
		}
	}
}

func (s *PageRenderSystem) menu() (*components.NavMenuComponent, bool) {
	_, menu, ok := findSingleton[*components.NavMenuComponent](s.entityManager)
	return menu, ok
}

func (s *PageRenderSystem) drawSections(screen *ebiten.Image, scrollY, vh float64) {
	x, _ := ContentColumn(screen.Bounds().Dx())

	for i, id := range ecs.GetEntitiesWith2[*components.SectionComponent, *components.BoundsComponent](s.entityManager) {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
		b, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		top := b.Y - scrollY
		if top > vh || top+b.Height < 0 {
			continue
		}

		// 奇数区块使用表面色作为背景以区分区块
		if i%2 == 1 {
			vector.DrawFilledRect(screen, float32(b.X), float32(top), float32(b.Width), float32(b.Height),
				MixColors(s.colors.Background, s.colors.Surface, 0.6), false)
		}

		y := top + SectionPadding
		drawText(screen, s.title, section.Title, x, y, s.colors.Text)
		y += SectionTitleH
		if section.Subtitle != "" {
			drawText(screen, s.body, section.Subtitle, x, y, s.colors.Muted)
		}
	}
}

func (s *PageRenderSystem) drawCards(screen *ebiten.Image, scrollY, vh float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.CardComponent, *components.BoundsComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		b, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		progress := 1.0
		if reveal, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, id); ok {
			progress = RevealProgress(reveal)
		}
		if progress <= 0 {
			continue
		}

		y := b.Y - scrollY + (1-progress)*revealOffset
		if y > vh || y+b.Height < 0 {
			continue
		}

		fill := s.colors.Surface
		border := Fade(s.colors.Muted, 0.25*progress)
		if card.Hovered {
			y -= hoverLift
			fill = MixColors(s.colors.Surface, s.colors.Accent, 0.08)
			border = Fade(s.colors.Accent, progress)
		}

		vector.DrawFilledRect(screen, float32(b.X), float32(y), float32(b.Width), float32(b.Height), Fade(fill, progress), true)
		vector.StrokeRect(screen, float32(b.X), float32(y), float32(b.Width), float32(b.Height), 1, border, true)

		tx := b.X + CardTextInset
		ty := y + CardTextInset
		drawText(screen, s.body, strings.ToUpper(card.Kind), tx, ty, Fade(s.colors.Accent, progress))
		ty += utils.LineHeight
		drawText(screen, s.body, card.Title, tx, ty, Fade(s.colors.Text, progress))
		ty += utils.LineHeight + 4
		for _, line := range utils.WrapText(card.Body, b.Width-2*CardTextInset, s.measure) {
			drawText(screen, s.body, line, tx, ty, Fade(s.colors.Muted, progress))
			ty += utils.LineHeight
		}
	}
}

// drawRipples 涟漪裁剪在所属卡片内
func (s *PageRenderSystem) drawRipples(screen *ebiten.Image, scrollY float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.RippleComponent](s.entityManager) {
		ripple, _ := ecs.GetComponent[*components.RippleComponent](s.entityManager, id)
		b, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, ripple.Card)
		if !ok || ripple.Alpha <= 0 {
			continue
		}

		y := b.Y - scrollY
		if card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, ripple.Card); ok && card.Hovered {
			y -= hoverLift
		}
		clip := image.Rect(int(b.X), int(y), int(b.X+b.Width), int(y+b.Height)).Intersect(screen.Bounds())
		if clip.Empty() {
			continue
		}
		dst := screen.SubImage(clip).(*ebiten.Image)

		r := ripple.Size * ripple.Scale / 2
		vector.DrawFilledCircle(dst, float32(ripple.CenterX), float32(ripple.CenterY+y-b.Y), float32(r),
			Fade(s.colors.Accent, ripple.Alpha), true)
	}
}

func (s *PageRenderSystem) drawFAQ(screen *ebiten.Image, scrollY, vh float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.FAQItemComponent, *components.BoundsComponent](s.entityManager) {
		faq, _ := ecs.GetComponent[*components.FAQItemComponent](s.entityManager, id)
		b, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		y := b.Y - scrollY
		if y > vh || y+b.Height < 0 {
			continue
		}

		vector.DrawFilledRect(screen, float32(b.X), float32(y), float32(b.Width), float32(b.Height), s.colors.Surface, false)
		border := Fade(s.colors.Muted, 0.25)
		if faq.Active {
			border = Fade(s.colors.Accent, 1)
		}
		vector.StrokeRect(screen, float32(b.X), float32(y), float32(b.Width), float32(b.Height), 1, border, false)

		qy := y + FAQQuestionHeight/2
		drawCenteredText(screen, s.body, faq.Question, b.X+CardTextInset+s.measure(faq.Question)/2, qy, s.colors.Text)

		sign := "+"
		if faq.Active {
			sign = "-"
		}
		drawCenteredText(screen, s.title, sign, b.X+b.Width-CardTextInset-8, qy, s.colors.Accent)

		if !faq.Active {
			continue
		}
		ay := y + FAQQuestionHeight
		for _, line := range utils.WrapText(faq.Answer, b.Width-2*CardTextInset, s.measure) {
			drawText(screen, s.body, line, b.X+CardTextInset, ay, s.colors.Muted)
			ay += utils.LineHeight
		}
	}
}

// drawMessages 表单提示显示在提交按钮下方
func (s *PageRenderSystem) drawMessages(screen *ebiten.Image, scrollY float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if button.Action != components.ButtonSubmit {
			continue
		}

		msg, ok := s.messages.Current(button.Form)
		if !ok {
			continue
		}
		b, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		clr := s.colors.Success
		if msg.Kind != string(forms.KindSuccess) {
			clr = s.colors.Error
		}
		drawText(screen, s.body, msg.Text, b.X, b.Y+b.Height+InputGap-scrollY, clr)
	}
}

// drawText 在 (x, y) 绘制文本，y 为文本顶部
func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawCenteredText 以 (cx, cy) 为中心绘制文本
func drawCenteredText(screen *ebiten.Image, face text.Face, s string, cx, cy float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

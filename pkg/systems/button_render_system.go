package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// 主题按钮显示的图标，与 SettingsManager.ThemeIcon 的返回值一致
const (
	themeIconSun  = "sun"
	themeIconMoon = "moon"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染提交按钮和导航栏上的图标按钮
//
// 职责：
//   - 提交按钮：强调色背景 + 居中文字，悬停时加深
//   - 主题按钮：太阳/月亮图标（Label 为 "sun" 或 "moon"）
//   - 汉堡按钮：三横线，菜单打开时变为叉号
//   - 回到顶部按钮：圆形 + 向上箭头
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	colors        *PageColors
	font          text.Face
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, colors *PageColors, fonts *utils.FontSet) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		colors:        colors,
		font:          fonts.Body,
	}
}

// Draw 渲染 Fixed 与 fixed 相同的所有可用按钮
// 页面按钮（fixed=false）使用文档坐标，绘制时减去 scrollY
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image, scrollY float64, fixed bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if !button.Enabled || button.Fixed != fixed {
			continue
		}
		b := *boundsOf(s.entityManager, id)
		if !fixed {
			b.Y -= scrollY
		}
		s.DrawButton(screen, button, b)
	}
}

// DrawButton 渲染单个按钮
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, button *components.ButtonComponent, b components.BoundsComponent) {
	switch button.Action {
	case components.ButtonSubmit:
		s.drawSubmit(screen, button, b)
	case components.ButtonThemeToggle:
		s.drawThemeIcon(screen, button, b)
	case components.ButtonHamburger:
		s.drawHamburger(screen, b)
	case components.ButtonBackToTop:
		s.drawBackToTop(screen, button, b)
	}
}

func (s *ButtonRenderSystem) drawSubmit(screen *ebiten.Image, button *components.ButtonComponent, b components.BoundsComponent) {
	fill := s.colors.Accent
	if button.Hovered {
		fill = MixColors(s.colors.Accent, s.colors.Text, 0.2)
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), fill, true)
	drawCenteredText(screen, s.font, button.Label, b.X+b.Width/2, b.Y+b.Height/2, s.colors.Background)
}

func (s *ButtonRenderSystem) drawThemeIcon(screen *ebiten.Image, button *components.ButtonComponent, b components.BoundsComponent) {
	cx, cy := float32(b.X+b.Width/2), float32(b.Y+b.Height/2)
	r := float32(b.Width) / 4

	if button.Hovered {
		vector.DrawFilledCircle(screen, cx, cy, float32(b.Width)/2, Fade(s.colors.Muted, 0.15), true)
	}

	switch button.Label {
	case themeIconMoon:
		// 用背景色圆遮住一部分形成月牙
		vector.DrawFilledCircle(screen, cx, cy, r, s.colors.Text, true)
		vector.DrawFilledCircle(screen, cx+r*0.6, cy-r*0.5, r*0.85, s.colors.Surface, true)
	default:
		vector.DrawFilledCircle(screen, cx, cy, r*0.8, s.colors.Accent, true)
		for i := 0; i < 8; i++ {
			dx, dy := rayDirection(i)
			vector.StrokeLine(screen, cx+dx*r*1.2, cy+dy*r*1.2, cx+dx*r*1.7, cy+dy*r*1.7, 2, s.colors.Accent, true)
		}
	}
}

func (s *ButtonRenderSystem) drawHamburger(screen *ebiten.Image, b components.BoundsComponent) {
	x0, x1 := float32(b.X+b.Width*0.25), float32(b.X+b.Width*0.75)
	cy := float32(b.Y + b.Height/2)
	gap := float32(b.Height) / 6

	_, menu, ok := findSingleton[*components.NavMenuComponent](s.entityManager)
	if ok && menu.Open {
		vector.StrokeLine(screen, x0, cy-gap, x1, cy+gap, 2, s.colors.Text, true)
		vector.StrokeLine(screen, x0, cy+gap, x1, cy-gap, 2, s.colors.Text, true)
		return
	}
	for _, y := range []float32{cy - gap, cy, cy + gap} {
		vector.StrokeLine(screen, x0, y, x1, y, 2, s.colors.Text, true)
	}
}

func (s *ButtonRenderSystem) drawBackToTop(screen *ebiten.Image, button *components.ButtonComponent, b components.BoundsComponent) {
	cx, cy := float32(b.X+b.Width/2), float32(b.Y+b.Height/2)
	fill := s.colors.Accent
	if button.Hovered {
		fill = MixColors(s.colors.Accent, s.colors.Text, 0.2)
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(b.Width)/2, fill, true)

	arm := float32(b.Width) / 6
	vector.StrokeLine(screen, cx-arm, cy+arm/2, cx, cy-arm/2, 2, s.colors.Background, true)
	vector.StrokeLine(screen, cx, cy-arm/2, cx+arm, cy+arm/2, 2, s.colors.Background, true)
}

// rayDirection 太阳光线方向，8 个方向均匀分布
func rayDirection(i int) (float32, float32) {
	dirs := [8][2]float32{{1, 0}, {0.707, 0.707}, {0, 1}, {-0.707, 0.707}, {-1, 0}, {-0.707, -0.707}, {0, -1}, {0.707, -0.707}}
	d := dirs[i%8]
	return d[0], d[1]
}

func boundsOf(em *ecs.EntityManager, id ecs.EntityID) *components.BoundsComponent {
	b, _ := ecs.GetComponent[*components.BoundsComponent](em, id)
	return b
}

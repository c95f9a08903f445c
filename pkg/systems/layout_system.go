package systems

import (
	"math"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// 布局尺寸（像素）
const (
	MaxContentWidth   = 1100.0
	PagePadding       = 24.0
	SectionPadding    = 40.0
	SectionTitleH     = 40.0
	SectionSubtitleH  = 28.0
	CardGap           = 20.0
	CardMinHeight     = 140.0
	CardTextInset     = 16.0
	FAQQuestionHeight = 52.0
	FAQGap            = 10.0
	InputHeight       = 40.0
	TextAreaHeight    = 110.0
	InputGap          = 12.0
	SubmitWidth       = 160.0
	SubmitHeight      = 40.0
	MessageAreaHeight = 40.0
	NavIconSize       = 40.0
	NavLinkHeight     = 30.0
	NavLinkPadding    = 24.0
	MenuItemHeight    = 48.0
	BackToTopSize     = 48.0
	BackToTopMargin   = 24.0
)

// LayoutSystem 根据视口尺寸计算所有页面元素的位置
//
// 内容高度依赖问答项展开状态和菜单状态，因此每帧都重新计算。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	measure       func(string) float64
}

// NewLayoutSystem 创建布局系统，measure 为 nil 时使用调试字体的宽度
func NewLayoutSystem(em *ecs.EntityManager, measure func(string) float64) *LayoutSystem {
	if measure == nil {
		measure = utils.DebugTextWidth
	}
	return &LayoutSystem{entityManager: em, measure: measure}
}

// ContentColumn 返回内容列的左边界和宽度
func ContentColumn(viewportWidth int) (x, width float64) {
	width = math.Min(float64(viewportWidth)-2*PagePadding, MaxContentWidth)
	if width < 0 {
		width = 0
	}
	return (float64(viewportWidth) - width) / 2, width
}

// CardColumns 返回卡片网格的列数
func CardColumns(viewportWidth int, contentWidth float64) int {
	switch {
	case utils.UseCompactLayout(viewportWidth):
		return 1
	case contentWidth >= 900:
		return 3
	default:
		return 2
	}
}

// Layout 布置导航栏、回到顶部按钮和所有区块，返回文档总高度
func (s *LayoutSystem) Layout(viewportWidth, viewportHeight int) float64 {
	s.layoutNav(viewportWidth)
	s.layoutBackToTop(viewportWidth, viewportHeight)

	x, width := ContentColumn(viewportWidth)
	y := NavBarHeight

	for i, id := range ecs.GetEntitiesWith2[*components.SectionComponent, *components.BoundsComponent](s.entityManager) {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

		height := s.layoutSection(section, x, y, width, viewportWidth)
		// 首屏区块至少占满一屏
		if i == 0 {
			height = math.Max(height, float64(viewportHeight)-NavBarHeight)
		}
		*bounds = components.BoundsComponent{X: 0, Y: y, Width: float64(viewportWidth), Height: height}
		y += height
	}
	return y
}

// layoutSection 布置区块内容，返回区块高度
func (s *LayoutSystem) layoutSection(section *components.SectionComponent, x, top, width float64, viewportWidth int) float64 {
	y := top + SectionPadding + SectionTitleH
	if section.Subtitle != "" {
		y += SectionSubtitleH
	}
	y += CardGap

	y = s.layoutCards(section.ID, x, y, width, viewportWidth)
	y = s.layoutFAQ(section.ID, x, y, width)
	y = s.layoutForm(section, x, y, width)

	return y - top + SectionPadding
}

func (s *LayoutSystem) layoutCards(sectionID string, x, y, width float64, viewportWidth int) float64 {
	var cards []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.CardComponent, *components.BoundsComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		if card.Section == sectionID {
			cards = append(cards, id)
		}
	}
	if len(cards) == 0 {
		return y
	}

	cols := CardColumns(viewportWidth, width)
	cardWidth := (width - CardGap*float64(cols-1)) / float64(cols)

	rowTop := y
	rowHeight := 0.0
	for i, id := range cards {
		col := i % cols
		if col == 0 && i > 0 {
			rowTop += rowHeight + CardGap
			rowHeight = 0
		}
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		h := s.CardHeight(card, cardWidth)
		rowHeight = math.Max(rowHeight, h)

		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		*bounds = components.BoundsComponent{
			X:      x + float64(col)*(cardWidth+CardGap),
			Y:      rowTop,
			Width:  cardWidth,
			Height: h,
		}
	}
	return rowTop + rowHeight + CardGap
}

// CardHeight 返回卡片在给定宽度下的高度
func (s *LayoutSystem) CardHeight(card *components.CardComponent, width float64) float64 {
	lines := len(utils.WrapText(card.Body, width-2*CardTextInset, s.measure))
	h := 2*CardTextInset + 2*utils.LineHeight + float64(lines*utils.LineHeight)
	return math.Max(CardMinHeight, h)
}

func (s *LayoutSystem) layoutFAQ(sectionID string, x, y, width float64) float64 {
	for _, id := range ecs.GetEntitiesWith2[*components.FAQItemComponent, *components.BoundsComponent](s.entityManager) {
		faq, _ := ecs.GetComponent[*components.FAQItemComponent](s.entityManager, id)
		if faq.Section != sectionID {
			continue
		}

		h := FAQQuestionHeight
		if faq.Active {
			lines := len(utils.WrapText(faq.Answer, width-2*CardTextInset, s.measure))
			h += float64(lines*utils.LineHeight) + CardTextInset
		}

		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		*bounds = components.BoundsComponent{X: x, Y: y, Width: width, Height: h}
		y += h + FAQGap
	}
	return y
}

func (s *LayoutSystem) layoutForm(section *components.SectionComponent, x, y, width float64) float64 {
	if section.Form == "" {
		return y
	}

	fieldWidth := math.Min(width, 600)
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.BoundsComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.Section != section.ID {
			continue
		}

		h := InputHeight
		if input.Multiline {
			h = TextAreaHeight
		}
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		*bounds = components.BoundsComponent{X: x, Y: y, Width: fieldWidth, Height: h}
		y += h + InputGap
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if button.Action != components.ButtonSubmit || button.Form != section.Form {
			continue
		}
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		*bounds = components.BoundsComponent{X: x, Y: y, Width: SubmitWidth, Height: SubmitHeight}
		y += SubmitHeight + InputGap
	}

	return y + MessageAreaHeight
}

func (s *LayoutSystem) layoutNav(viewportWidth int) {
	compact := utils.UseCompactLayout(viewportWidth)
	w := float64(viewportWidth)
	iconY := (NavBarHeight - NavIconSize) / 2

	themeX := w - PagePadding - NavIconSize
	hamburgerX := themeX - NavIconSize - 10
	var hamburger components.BoundsComponent

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		switch button.Action {
		case components.ButtonThemeToggle:
			*bounds = components.BoundsComponent{X: themeX, Y: iconY, Width: NavIconSize, Height: NavIconSize}
		case components.ButtonHamburger:
			button.Enabled = compact
			if compact {
				*bounds = components.BoundsComponent{X: hamburgerX, Y: iconY, Width: NavIconSize, Height: NavIconSize}
			} else {
				*bounds = components.BoundsComponent{}
			}
			hamburger = *bounds
		}
	}

	_, menu, hasMenu := findSingleton[*components.NavMenuComponent](s.entityManager)
	open := hasMenu && menu.Open && compact

	links := ecs.GetEntitiesWith2[*components.NavLinkComponent, *components.BoundsComponent](s.entityManager)
	var panel components.BoundsComponent
	if open {
		panel = components.BoundsComponent{X: 0, Y: NavBarHeight, Width: w, Height: float64(len(links)) * MenuItemHeight}
	}

	// 桌面端链接从主题按钮左侧向左排列
	right := themeX - 10
	for i := len(links) - 1; i >= 0; i-- {
		link, _ := ecs.GetComponent[*components.NavLinkComponent](s.entityManager, links[i])
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, links[i])
		switch {
		case open:
			*bounds = components.BoundsComponent{X: 0, Y: NavBarHeight + float64(i)*MenuItemHeight, Width: w, Height: MenuItemHeight}
		case compact:
			// 菜单收起时链接不可点击
			*bounds = components.BoundsComponent{}
		default:
			lw := s.measure(link.Label) + NavLinkPadding
			right -= lw
			*bounds = components.BoundsComponent{X: right, Y: (NavBarHeight - NavLinkHeight) / 2, Width: lw, Height: NavLinkHeight}
		}
	}

	if hasMenu {
		menu.Hamburger = hamburger
		menu.Panel = panel
	}
}

func (s *LayoutSystem) layoutBackToTop(viewportWidth, viewportHeight int) {
	for _, id := range ecs.GetEntitiesWith2[*components.BackToTopComponent, *components.BoundsComponent](s.entityManager) {
		backToTop, _ := ecs.GetComponent[*components.BackToTopComponent](s.entityManager, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		*bounds = components.BoundsComponent{
			X:      float64(viewportWidth) - BackToTopMargin - BackToTopSize,
			Y:      float64(viewportHeight) - BackToTopMargin - BackToTopSize,
			Width:  BackToTopSize,
			Height: BackToTopSize,
		}
		if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
			button.Enabled = backToTop.Visible
		}
	}
}

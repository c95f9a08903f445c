package scenes

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/confetti"
	"github.com/gonewx/webaddicted/pkg/config"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/entities"
	"github.com/gonewx/webaddicted/pkg/game"
	"github.com/gonewx/webaddicted/pkg/systems"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// keyScrollStep 方向键每次滚动的像素数
const keyScrollStep = 80.0

// LandingScene 营销落地页
//
// 每帧顺序：布局 → 输入 → 滚动 → 状态系统 → 彩纸帧 → 清理实体。
// 布局放在最前面，点击命中测试使用的总是本帧的位置。
type LandingScene struct {
	entityManager *ecs.EntityManager
	siteConfig    *config.SiteConfig
	settings      *game.SettingsManager
	page          *entities.Page

	colors *systems.PageColors

	// 系统
	layoutSystem     *systems.LayoutSystem
	navigationSystem *systems.NavigationSystem
	scrollSystem     *systems.ScrollSystem
	revealSystem     *systems.RevealSystem
	backToTopSystem  *systems.BackToTopSystem
	accordionSystem  *systems.AccordionSystem
	rippleSystem     *systems.RippleSystem
	cardSystem       *systems.CardInteractionSystem
	buttonSystem     *systems.ButtonSystem
	textInputSystem  *systems.TextInputSystem
	messageSystem    *systems.MessageSystem
	formSystem       *systems.FormSystem
	lifetimeSystem   *systems.LifetimeSystem

	// 渲染
	pageRender   *systems.PageRenderSystem
	buttonRender *systems.ButtonRenderSystem
	inputRender  *systems.TextInputRenderSystem

	// 彩纸
	canvas   *systems.CanvasSurface
	frames   *confetti.FrameQueue
	animator *confetti.Animator

	width, height int
}

// NewLandingScene 创建落地页场景
//
// 参数：
//   - cfg: 站点配置
//   - settings: 主题偏好
//   - tps: 每秒更新次数，用于平滑滚动的弹簧
func NewLandingScene(cfg *config.SiteConfig, settings *game.SettingsManager, tps int) (*LandingScene, error) {
	// 两套配色都先校验，切换主题时不会再失败
	for _, theme := range []string{config.ThemeLight, config.ThemeDark} {
		if _, err := systems.NewPageColors(cfg.Theme.Scheme(theme)); err != nil {
			return nil, fmt.Errorf("%s theme: %w", theme, err)
		}
	}

	fonts, err := utils.LoadFonts()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	s := &LandingScene{
		entityManager: em,
		siteConfig:    cfg,
		settings:      settings,
		colors:        &systems.PageColors{},
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
	}

	s.page = entities.NewPage(em, cfg)

	opts := []confetti.Option{confetti.WithDefaultCount(cfg.Confetti.DefaultCount)}
	if len(cfg.Confetti.Palette) > 0 {
		palette, err := confetti.ParsePalette(cfg.Confetti.Palette)
		if err != nil {
			return nil, fmt.Errorf("confetti palette: %w", err)
		}
		opts = append(opts, confetti.WithPalette(palette))
	}

	s.canvas = systems.NewCanvasSurface()
	s.frames = confetti.NewFrameQueue()
	s.animator, err = confetti.New(s.canvas, confetti.ViewportFunc(s.viewportSize), s.frames, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create confetti animator: %w", err)
	}

	s.layoutSystem = systems.NewLayoutSystem(em, fonts.Measure())
	s.navigationSystem = systems.NewNavigationSystem(em)
	s.scrollSystem = systems.NewScrollSystem(em, tps)
	s.revealSystem = systems.NewRevealSystem(em)
	s.backToTopSystem = systems.NewBackToTopSystem(em)
	s.accordionSystem = systems.NewAccordionSystem(em)
	s.rippleSystem = systems.NewRippleSystem(em)
	s.cardSystem = systems.NewCardInteractionSystem(em, s.rippleSystem, s.animator)
	s.buttonSystem = systems.NewButtonSystem(em)
	s.textInputSystem = systems.NewTextInputSystem(em)
	s.messageSystem = systems.NewMessageSystem(em)
	s.formSystem = systems.NewFormSystem(em, s.textInputSystem, s.messageSystem)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)

	s.pageRender = systems.NewPageRenderSystem(em, s.colors, fonts, s.messageSystem, cfg.Nav.Brand)
	s.buttonRender = systems.NewButtonRenderSystem(em, s.colors, fonts)
	s.inputRender = systems.NewTextInputRenderSystem(em, s.colors, fonts)

	// 桌面端无法读取系统配色偏好，没有保存的主题时使用配置默认值
	s.applyTheme(settings.InitTheme(false))
	s.revealSystem.ApplyLoadingDelays()

	log.Printf("[LandingScene] Initialized with %d entities, theme=%s", em.EntityCount(), settings.Theme())
	return s, nil
}

func (s *LandingScene) viewportSize() (int, int) {
	return s.width, s.height
}

// OnResize 同步彩纸表面尺寸，桌面宽度下收起移动端菜单
func (s *LandingScene) OnResize(width, height int) {
	s.width, s.height = width, height
	s.animator.Resize()
	s.navigationSystem.HandleResize(width)
}

// Update 更新页面状态
func (s *LandingScene) Update(deltaTime float64) {
	vh := float64(s.height)
	docHeight := s.layoutSystem.Layout(s.width, s.height)
	s.scrollSystem.SetDocumentHeight(docHeight, vh)

	input := utils.GetInputState()
	s.handleKeyboard()
	s.handleScroll(input)
	if input.JustPressed {
		s.handleClick(float64(input.X), float64(input.Y))
	}

	s.scrollSystem.Update()
	scrollY := s.scrollSystem.Y()

	s.navigationSystem.UpdateActiveLink(scrollY)
	s.revealSystem.Update(deltaTime, scrollY, vh)
	s.backToTopSystem.Update(time.Now(), scrollY, vh)
	s.cardSystem.UpdateVisibility(scrollY, vh)
	if !input.IsTouching {
		s.cardSystem.UpdateHover(float64(input.X), float64(input.Y), scrollY)
		s.buttonSystem.UpdateHover(float64(input.X), float64(input.Y), scrollY)
	}
	s.textInputSystem.Update(deltaTime)
	s.rippleSystem.Update()
	s.lifetimeSystem.Update(deltaTime)

	s.frames.Tick()
	s.entityManager.RemoveMarkedEntities()
}

// handleClick 依次交给导航、按钮、链接、问答、卡片和输入框处理，坐标为视口坐标
func (s *LandingScene) handleClick(x, y float64) {
	scrollY := s.scrollSystem.Y()
	s.navigationSystem.HandleClickOutside(x, y)

	if button, ok := s.buttonSystem.HitTest(x, y, scrollY); ok {
		s.activate(button)
		return
	}
	if href, ok := s.navigationSystem.HitLink(x, y); ok {
		if target, ok := s.navigationSystem.ScrollTargetFor(href); ok {
			s.scrollSystem.ScrollTo(target)
		}
		return
	}
	// 导航栏遮住下面的内容
	if y < systems.NavBarHeight {
		return
	}

	docY := y + scrollY
	if s.accordionSystem.HandleClick(x, docY) {
		s.textInputSystem.Focus(0)
		return
	}
	if _, ok := s.cardSystem.HandleClick(x, y, scrollY); ok {
		s.textInputSystem.Focus(0)
		return
	}
	s.textInputSystem.FocusAt(x, docY)
}

func (s *LandingScene) activate(button *components.ButtonComponent) {
	switch button.Action {
	case components.ButtonSubmit:
		s.formSystem.Submit(button.Form)
	case components.ButtonThemeToggle:
		s.toggleTheme()
	case components.ButtonHamburger:
		s.navigationSystem.ToggleMobileMenu()
	case components.ButtonBackToTop:
		s.scrollSystem.ScrollTo(0)
	}
}

func (s *LandingScene) handleKeyboard() {
	focused, hasFocus := s.textInputSystem.Focused()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.navigationSystem.CloseMobileMenu()
		s.textInputSystem.Focus(0)
		return
	}

	if hasFocus {
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			s.textInputSystem.FocusNext()
			return
		}
		// 留言框中 Ctrl+Enter 提交，其他输入框 Enter 提交
		ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
		if utils.IsKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) && (!focused.Multiline || ctrl) {
			s.formSystem.Submit(focused.Form)
		}
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		s.toggleTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.scrollSystem.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.scrollSystem.ScrollTo(math.Inf(1))
	case utils.IsKeyJustPressed(ebiten.KeyPageDown, ebiten.KeySpace):
		s.scrollSystem.ScrollTo(s.scrollSystem.Y() + float64(s.height) - systems.NavBarHeight)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.scrollSystem.ScrollTo(s.scrollSystem.Y() - float64(s.height) + systems.NavBarHeight)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		s.scrollSystem.ScrollBy(keyScrollStep / 8)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		s.scrollSystem.ScrollBy(-keyScrollStep / 8)
	}
}

// handleScroll 滚轮和触摸滑动；菜单打开时阻止触摸滚动
func (s *LandingScene) handleScroll(input utils.InputState) {
	if input.ScrollDelta == 0 {
		return
	}
	if input.IsTouching && s.navigationSystem.ShouldBlockTouchScroll(input.TouchDragY) {
		return
	}
	s.scrollSystem.ScrollBy(input.ScrollDelta)
}

func (s *LandingScene) toggleTheme() {
	theme, err := s.settings.ToggleTheme()
	if err != nil {
		log.Printf("[LandingScene] Warning: theme not saved: %v", err)
	}
	s.applyTheme(theme)
}

// applyTheme 原地更新共享的颜色并同步主题按钮图标
func (s *LandingScene) applyTheme(theme string) {
	colors, err := systems.NewPageColors(s.siteConfig.Theme.Scheme(theme))
	if err != nil {
		log.Printf("[LandingScene] Invalid %s theme: %v", theme, err)
		return
	}
	*s.colors = colors

	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.page.ThemeButton); ok {
		button.Label = s.settings.ThemeIcon()
	}
	log.Printf("[LandingScene] Theme: %s", theme)
}

// Draw 绘制页面，彩纸表面覆盖在最上层
func (s *LandingScene) Draw(screen *ebiten.Image) {
	scrollY := s.scrollSystem.Y()

	s.pageRender.DrawContent(screen, scrollY)
	s.inputRender.Draw(screen, scrollY)
	s.buttonRender.Draw(screen, scrollY, false)

	s.pageRender.DrawNav(screen)
	s.buttonRender.Draw(screen, scrollY, true)

	s.canvas.Draw(screen)
}

var _ game.Resizable = (*LandingScene)(nil)
var _ Scene = (*LandingScene)(nil)

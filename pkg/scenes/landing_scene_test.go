package scenes

import (
	"testing"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/config"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/game"
	"github.com/gonewx/webaddicted/pkg/systems"
)

const testSiteYAML = `
window: { width: 1280, height: 800 }
theme:
  default: light
  light: { background: "#ffffff", surface: "#f0f0f0", text: "#111111", muted: "#777777", accent: "#6366f1", success: "#16a34a", error: "#dc2626" }
  dark: { background: "#000000", surface: "#1e293b", text: "#eeeeee", muted: "#999999", accent: "#818cf8", success: "#4ade80", error: "#f87171" }
nav:
  brand: "Test"
  links:
    - { label: "Home", href: "#home" }
    - { label: "Contact", href: "#contact" }
sections:
  - id: home
    title: "Home"
    cards:
      - { kind: website, title: "A", body: "a", confetti: { on_click: true } }
  - id: faq
    title: "FAQ"
    faq:
      - { question: "Q1", answer: "A1" }
  - id: contact
    title: "Contact"
    form:
      id: newsletter
      submit: "Subscribe"
      fields:
        - { name: email }
`

func newTestScene(t *testing.T) *LandingScene {
	t.Helper()
	cfg, err := config.ParseSiteConfig([]byte(testSiteYAML))
	if err != nil {
		t.Fatalf("ParseSiteConfig() failed: %v", err)
	}
	scene, err := NewLandingScene(cfg, game.NewSettingsManager(nil, cfg.Theme.Default), 60)
	if err != nil {
		t.Fatalf("NewLandingScene() failed: %v", err)
	}
	docHeight := scene.layoutSystem.Layout(scene.width, scene.height)
	scene.scrollSystem.SetDocumentHeight(docHeight, float64(scene.height))
	return scene
}

func centerOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) (float64, float64) {
	t.Helper()
	b, ok := ecs.GetComponent[*components.BoundsComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no bounds", id)
	}
	return b.X + b.Width/2, b.Y + b.Height/2
}

func TestLandingSceneInitialTheme(t *testing.T) {
	scene := newTestScene(t)

	if scene.colors.Background.R != 0xff {
		t.Errorf("background = %v, want light theme", scene.colors.Background)
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](scene.entityManager, scene.page.ThemeButton)
	if button.Label != game.IconMoon {
		t.Errorf("theme icon = %q, want %q", button.Label, game.IconMoon)
	}
}

// TestLandingSceneThemeButton 点击主题按钮切换配色和图标
func TestLandingSceneThemeButton(t *testing.T) {
	scene := newTestScene(t)

	x, y := centerOf(t, scene.entityManager, scene.page.ThemeButton)
	scene.handleClick(x, y)

	if scene.settings.Theme() != game.ThemeDark {
		t.Fatalf("theme = %q, want dark", scene.settings.Theme())
	}
	if scene.colors.Background.R != 0 {
		t.Errorf("background = %v, want dark theme", scene.colors.Background)
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](scene.entityManager, scene.page.ThemeButton)
	if button.Label != game.IconSun {
		t.Errorf("theme icon = %q, want %q", button.Label, game.IconSun)
	}
}

func TestLandingSceneNavLinkScrolls(t *testing.T) {
	scene := newTestScene(t)

	links := ecs.GetEntitiesWith1[*components.NavLinkComponent](scene.entityManager)
	x, y := centerOf(t, scene.entityManager, links[1])
	scene.handleClick(x, y)

	if !scene.scrollSystem.IsAnimating() {
		t.Fatal("clicking a nav link should start a smooth scroll")
	}
	for i := 0; i < 600 && scene.scrollSystem.IsAnimating(); i++ {
		scene.scrollSystem.Update()
	}

	contact, _ := ecs.GetComponent[*components.BoundsComponent](scene.entityManager, scene.page.Sections[2])
	maxY := scene.layoutSystem.Layout(scene.width, scene.height) - float64(scene.height)
	want := contact.Y - systems.NavBarHeight
	if want > maxY {
		want = maxY
	}
	if got := scene.scrollSystem.Y(); got != want {
		t.Errorf("scroll = %v, want %v", got, want)
	}
}

// TestLandingSceneCardClickBursts 带点击触发的卡片发射彩纸并生成涟漪
func TestLandingSceneCardClickBursts(t *testing.T) {
	scene := newTestScene(t)

	x, y := centerOf(t, scene.entityManager, scene.page.Cards[0])
	scene.handleClick(x, y)

	if !scene.animator.Active() {
		t.Error("confetti should be running after clicking the card")
	}
	if n := len(ecs.GetEntitiesWith1[*components.RippleComponent](scene.entityManager)); n != 1 {
		t.Errorf("ripples = %d, want 1", n)
	}

	scene.frames.Tick()
	if scene.canvas.Len() == 0 {
		t.Error("first confetti frame should draw on the canvas")
	}
}

func TestLandingSceneFAQAndForm(t *testing.T) {
	scene := newTestScene(t)

	x, y := centerOf(t, scene.entityManager, scene.page.FAQ[0])
	scene.handleClick(x, y)
	if id, ok := scene.accordionSystem.ActiveItem(); !ok || id != scene.page.FAQ[0] {
		t.Fatal("clicking a question should open it")
	}

	// 点击订阅表单的输入框获得焦点（视口坐标 = 文档坐标 - 滚动距离）
	scene.layoutSystem.Layout(scene.width, scene.height)
	x, y = centerOf(t, scene.entityManager, scene.page.Inputs[0])
	scene.scrollSystem.SetDocumentHeight(scene.layoutSystem.Layout(scene.width, scene.height), float64(scene.height))
	scene.scrollSystem.ScrollBy(y - 400)
	scene.handleClick(x, y-scene.scrollSystem.Y())

	input, ok := scene.textInputSystem.Focused()
	if !ok || input.Form != "newsletter" {
		t.Fatalf("newsletter email should be focused, got %+v", input)
	}

	input.Text = "not-an-email"
	scene.formSystem.Submit("newsletter")
	msg, ok := scene.messageSystem.Current("newsletter")
	if !ok || msg.Kind != "error" {
		t.Errorf("message = %+v, want an error", msg)
	}
}

func TestLandingSceneResize(t *testing.T) {
	scene := newTestScene(t)
	scene.navigationSystem.ToggleMobileMenu()

	scene.OnResize(375, 700)
	if scene.canvas.Width() != 375 || scene.canvas.Height() != 700 {
		t.Errorf("canvas = %dx%d, want 375x700", scene.canvas.Width(), scene.canvas.Height())
	}
	if !scene.navigationSystem.IsMenuOpen() {
		t.Error("menu should stay open on a mobile width")
	}

	scene.OnResize(1024, 700)
	if scene.navigationSystem.IsMenuOpen() {
		t.Error("menu should close on a desktop width")
	}
}

package systems

import (
	"testing"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

func addButton(em *ecs.EntityManager, button *components.ButtonComponent, bounds components.BoundsComponent) {
	id := em.CreateEntity()
	em.AddComponent(id, button)
	em.AddComponent(id, &bounds)
}

// TestButtonHitTest 页面内按钮使用文档坐标，固定按钮使用视口坐标且优先
func TestButtonHitTest(t *testing.T) {
	em := ecs.NewEntityManager()
	submit := &components.ButtonComponent{Action: components.ButtonSubmit, Form: "contact", Enabled: true}
	theme := &components.ButtonComponent{Action: components.ButtonThemeToggle, Fixed: true, Enabled: true}
	disabled := &components.ButtonComponent{Action: components.ButtonBackToTop, Fixed: true}

	addButton(em, submit, components.BoundsComponent{X: 100, Y: 2000, Width: 160, Height: 40})
	addButton(em, theme, components.BoundsComponent{X: 1200, Y: 15, Width: 40, Height: 40})
	addButton(em, disabled, components.BoundsComponent{X: 100, Y: 0, Width: 200, Height: 100})
	sys := NewButtonSystem(em)

	if b, ok := sys.HitTest(120, 20, 1990); !ok || b != submit {
		t.Errorf("Expected submit button, got %+v", b)
	}
	if b, ok := sys.HitTest(1210, 20, 1990); !ok || b != theme {
		t.Errorf("Expected theme button, got %+v", b)
	}
	if _, ok := sys.HitTest(150, 50, 5000); ok {
		t.Error("Disabled button should not be hit")
	}

	sys.UpdateHover(1210, 20, 0)
	if !theme.Hovered || submit.Hovered {
		t.Errorf("hover state theme=%v submit=%v", theme.Hovered, submit.Hovered)
	}
}

func TestFixedButtonWinsOverlap(t *testing.T) {
	em := ecs.NewEntityManager()
	page := &components.ButtonComponent{Action: components.ButtonSubmit, Enabled: true}
	fixed := &components.ButtonComponent{Action: components.ButtonBackToTop, Fixed: true, Enabled: true}

	addButton(em, page, components.BoundsComponent{X: 0, Y: 500, Width: 100, Height: 100})
	addButton(em, fixed, components.BoundsComponent{X: 0, Y: 0, Width: 100, Height: 100})

	if b, _ := NewButtonSystem(em).HitTest(50, 50, 450); b != fixed {
		t.Errorf("Expected fixed button to win, got %+v", b)
	}
}

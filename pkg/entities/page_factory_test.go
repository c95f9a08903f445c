package entities

import (
	"testing"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/config"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

const testSiteYAML = `
nav:
  links:
    - { label: "Home", href: "#home" }
    - { label: "Contact", href: "#contact" }
sections:
  - id: home
    title: "Home"
    cards:
      - { kind: website, title: "A", body: "a", confetti: { on_click: true, on_visible: true } }
      - { kind: review, title: "B", body: "b" }
  - id: faq
    title: "FAQ"
    faq:
      - { question: "Q1", answer: "A1" }
      - { question: "Q2", answer: "A2" }
  - id: contact
    title: "Contact"
    form:
      id: contact
      submit: "Send"
      fields:
        - { name: name, placeholder: "Your name", max_length: 50 }
        - { name: email }
        - { name: message, multiline: true }
`

func newTestPage(t *testing.T) (*ecs.EntityManager, *Page) {
	t.Helper()
	cfg, err := config.ParseSiteConfig([]byte(testSiteYAML))
	if err != nil {
		t.Fatalf("ParseSiteConfig() failed: %v", err)
	}
	em := ecs.NewEntityManager()
	return em, NewPage(em, cfg)
}

func TestNewPageCreatesEntities(t *testing.T) {
	em, page := newTestPage(t)

	if len(page.Sections) != 3 || len(page.Cards) != 2 || len(page.FAQ) != 2 || len(page.Inputs) != 3 {
		t.Fatalf("page = %+v", page)
	}
	if got := len(ecs.GetEntitiesWith2[*components.NavLinkComponent, *components.BoundsComponent](em)); got != 2 {
		t.Errorf("nav links = %d, want 2", got)
	}
	if !ecs.HasComponent[*components.NavMenuComponent](em, page.Menu) {
		t.Error("menu entity has no NavMenuComponent")
	}
	if !ecs.HasComponent[*components.ScrollComponent](em, page.Scroll) {
		t.Error("scroll entity has no ScrollComponent")
	}

	section, _ := ecs.GetComponent[*components.SectionComponent](em, page.Sections[2])
	if section.ID != "contact" || section.Form != "contact" {
		t.Errorf("contact section = %+v", section)
	}
}

// TestNewPageConfettiTriggers 只有配置了触发方式的卡片带触发组件
func TestNewPageConfettiTriggers(t *testing.T) {
	em, page := newTestPage(t)

	trigger, ok := ecs.GetComponent[*components.ConfettiTriggerComponent](em, page.Cards[0])
	if !ok {
		t.Fatal("first card should have a confetti trigger")
	}
	if !trigger.OnClick || !trigger.OnVisible || trigger.OnHover {
		t.Errorf("trigger = %+v", trigger)
	}
	if ecs.HasComponent[*components.ConfettiTriggerComponent](em, page.Cards[1]) {
		t.Error("second card should not have a confetti trigger")
	}
	for _, id := range page.Cards {
		if !ecs.HasComponent[*components.RevealComponent](em, id) {
			t.Errorf("card %d has no RevealComponent", id)
		}
	}
}

func TestNewPageButtons(t *testing.T) {
	em, page := newTestPage(t)

	actions := make(map[components.ButtonAction]*components.ButtonComponent)
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](em) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
		actions[button.Action] = button
	}

	submit, ok := actions[components.ButtonSubmit]
	if !ok || submit.Form != "contact" || submit.Label != "Send" || submit.Fixed || !submit.Enabled {
		t.Errorf("submit button = %+v", submit)
	}
	if theme := actions[components.ButtonThemeToggle]; theme == nil || !theme.Fixed || !theme.Enabled {
		t.Errorf("theme button = %+v", theme)
	}
	if burger := actions[components.ButtonHamburger]; burger == nil || burger.Enabled {
		t.Errorf("hamburger button = %+v", burger)
	}

	back, ok := ecs.GetComponent[*components.ButtonComponent](em, page.BackToTop)
	if !ok || back.Action != components.ButtonBackToTop || back.Enabled {
		t.Errorf("back-to-top button = %+v", back)
	}
	if !ecs.HasComponent[*components.BackToTopComponent](em, page.BackToTop) {
		t.Error("back-to-top entity has no BackToTopComponent")
	}
}

func TestNewFormInputs(t *testing.T) {
	em, page := newTestPage(t)

	want := []struct {
		field     string
		maxLength int
		multiline bool
	}{
		{"name", 50, false},
		{"email", 0, false},
		{"message", 0, true},
	}
	for i, w := range want {
		input, _ := ecs.GetComponent[*components.TextInputComponent](em, page.Inputs[i])
		if input.Form != "contact" || input.Section != "contact" || input.Field != w.field ||
			input.MaxLength != w.maxLength || input.Multiline != w.multiline {
			t.Errorf("input %d = %+v", i, input)
		}
	}
}

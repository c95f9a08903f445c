package systems

import (
	"testing"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

type burstCall struct{ x, y float64 }

type recordingBurster struct {
	calls []burstCall
}

func (b *recordingBurster) StartDefault(x, y float64) {
	b.calls = append(b.calls, burstCall{x, y})
}

func newTriggerCard(em *ecs.EntityManager, y float64, trigger *components.ConfettiTriggerComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.CardComponent{Section: "courses", Title: "card"})
	em.AddComponent(id, &components.BoundsComponent{X: 100, Y: y, Width: 200, Height: 100})
	if trigger != nil {
		em.AddComponent(id, trigger)
	}
	return id
}

// TestClickBurstsAtPointer 点击带触发器的卡片时在点击位置（视口坐标）爆发
func TestClickBurstsAtPointer(t *testing.T) {
	em := ecs.NewEntityManager()
	burster := &recordingBurster{}
	sys := NewCardInteractionSystem(em, NewRippleSystem(em), burster)

	card := newTriggerCard(em, 1000, &components.ConfettiTriggerComponent{OnClick: true})

	hit, ok := sys.HandleClick(150, 100, 950)
	if !ok || hit != card {
		t.Fatalf("HandleClick() = %v, %v; want %v", hit, ok, card)
	}
	if len(burster.calls) != 1 || burster.calls[0] != (burstCall{150, 100}) {
		t.Errorf("bursts = %v, want [{150 100}]", burster.calls)
	}
	if n := len(ecs.GetEntitiesWith1[*components.RippleComponent](em)); n != 1 {
		t.Errorf("%d ripples, want 1", n)
	}
}

// TestClickWithoutTriggerOnlyRipples 没有触发器的卡片只有涟漪
func TestClickWithoutTriggerOnlyRipples(t *testing.T) {
	em := ecs.NewEntityManager()
	burster := &recordingBurster{}
	sys := NewCardInteractionSystem(em, NewRippleSystem(em), burster)
	newTriggerCard(em, 0, nil)

	if _, ok := sys.HandleClick(150, 50, 0); !ok {
		t.Fatal("Click should hit the card")
	}
	if len(burster.calls) != 0 {
		t.Errorf("bursts = %v, want none", burster.calls)
	}
	if _, ok := sys.HandleClick(10, 50, 0); ok {
		t.Error("Click beside the card should miss")
	}
}

// TestHoverBurstsOnEnterOnly 只在指针移入时爆发一次
func TestHoverBurstsOnEnterOnly(t *testing.T) {
	em := ecs.NewEntityManager()
	burster := &recordingBurster{}
	sys := NewCardInteractionSystem(em, nil, burster)
	card := newTriggerCard(em, 500, &components.ConfettiTriggerComponent{OnHover: true})

	sys.UpdateHover(150, 120, 400) // 文档坐标 (150, 520)
	sys.UpdateHover(160, 130, 400)
	sys.UpdateHover(10, 10, 400)
	sys.UpdateHover(150, 120, 400)

	if len(burster.calls) != 2 {
		t.Fatalf("bursts = %v, want 2", burster.calls)
	}
	// 卡片中心 (200, 550) 减去滚动距离
	if burster.calls[0] != (burstCall{200, 150}) {
		t.Errorf("burst at %v, want {200 150}", burster.calls[0])
	}
	c, _ := ecs.GetComponent[*components.CardComponent](em, card)
	if !c.Hovered {
		t.Error("Card should be hovered")
	}
}

// TestVisibilityBurstsOnce 首次进入视口时爆发，之后不再触发
func TestVisibilityBurstsOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	burster := &recordingBurster{}
	sys := NewCardInteractionSystem(em, nil, burster)
	newTriggerCard(em, 1500, &components.ConfettiTriggerComponent{OnVisible: true})
	newTriggerCard(em, 100, &components.ConfettiTriggerComponent{OnClick: true})

	sys.UpdateVisibility(0, 800)
	if len(burster.calls) != 0 {
		t.Fatalf("Card below the fold should not burst, got %v", burster.calls)
	}

	sys.UpdateVisibility(1000, 800)
	sys.UpdateVisibility(1000, 800)
	sys.UpdateVisibility(0, 800)
	sys.UpdateVisibility(1000, 800)

	if len(burster.calls) != 1 {
		t.Fatalf("bursts = %v, want exactly 1", burster.calls)
	}
	if burster.calls[0] != (burstCall{200, 550}) {
		t.Errorf("burst at %v, want {200 550}", burster.calls[0])
	}
}

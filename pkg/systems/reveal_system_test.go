package systems

import (
	"math"
	"testing"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

func newRevealCard(em *ecs.EntityManager, y, h float64) *components.RevealComponent {
	id := em.CreateEntity()
	reveal := &components.RevealComponent{}
	em.AddComponent(id, reveal)
	em.AddComponent(id, &components.BoundsComponent{Y: y, Width: 300, Height: h})
	return reveal
}

func TestApplyLoadingDelays(t *testing.T) {
	em := ecs.NewEntityManager()
	cards := []*components.RevealComponent{
		newRevealCard(em, 0, 100),
		newRevealCard(em, 0, 100),
		newRevealCard(em, 0, 100),
	}

	NewRevealSystem(em).ApplyLoadingDelays()

	for i, c := range cards {
		if math.Abs(c.AnimationDelay-float64(i)*0.1) > 1e-9 {
			t.Errorf("card %d delay = %v, want %v", i, c.AnimationDelay, float64(i)*0.1)
		}
	}
}

// TestRevealThreshold 视口底部收缩 50px 后，可见比例达到 10% 才显现
func TestRevealThreshold(t *testing.T) {
	tests := []struct {
		name    string
		cardY   float64
		scrollY float64
		want    bool
	}{
		// 视口 800，有效底部 750；卡片高 200，需要 20px 可见
		{"fully inside", 100, 0, true},
		{"exactly ten percent", 730, 0, true},
		{"below threshold", 735, 0, false},
		{"inside shrunk margin", 760, 0, false},
		{"revealed after scroll", 1200, 500, true},
		{"above viewport", 0, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			card := newRevealCard(em, tt.cardY, 200)

			NewRevealSystem(em).Update(0.016, tt.scrollY, 800)
			if card.Revealed != tt.want {
				t.Errorf("Revealed = %v, want %v", card.Revealed, tt.want)
			}
		})
	}
}

// TestRevealIsPermanent 显现后滚出视口不会再隐藏
func TestRevealIsPermanent(t *testing.T) {
	em := ecs.NewEntityManager()
	card := newRevealCard(em, 100, 200)
	sys := NewRevealSystem(em)

	sys.Update(0.1, 0, 800)
	sys.Update(0.1, 5000, 800)

	if !card.Revealed {
		t.Error("Card should stay revealed")
	}
	if math.Abs(card.Elapsed-0.1) > 1e-9 {
		t.Errorf("Elapsed = %v, want 0.1", card.Elapsed)
	}
}

func TestRevealProgress(t *testing.T) {
	tests := []struct {
		name   string
		reveal components.RevealComponent
		want   float64
	}{
		{"hidden", components.RevealComponent{}, 0},
		{"waiting for delay", components.RevealComponent{Revealed: true, AnimationDelay: 0.3, Elapsed: 0.2}, 0},
		{"finished", components.RevealComponent{Revealed: true, Elapsed: 1.0}, 1},
		{"halfway", components.RevealComponent{Revealed: true, Elapsed: 0.3}, 0.875},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RevealProgress(&tt.reveal); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RevealProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}

package systems

import (
	"testing"

	"github.com/gonewx/webaddicted/pkg/ecs"
)

func TestScrollByClamps(t *testing.T) {
	sys := NewScrollSystem(ecs.NewEntityManager(), 60)
	sys.SetDocumentHeight(3000, 800)

	sys.ScrollBy(500)
	if sys.Y() != 500 {
		t.Errorf("Y() = %v, want 500", sys.Y())
	}
	sys.ScrollBy(10000)
	if sys.Y() != 2200 {
		t.Errorf("Y() = %v, want max 2200", sys.Y())
	}
	sys.ScrollBy(-10000)
	if sys.Y() != 0 {
		t.Errorf("Y() = %v, want 0", sys.Y())
	}
}

// TestScrollToSettles 平滑滚动在有限帧内到达目标并停止
func TestScrollToSettles(t *testing.T) {
	sys := NewScrollSystem(ecs.NewEntityManager(), 60)
	sys.SetDocumentHeight(5000, 800)

	sys.ScrollTo(1200)
	if !sys.IsAnimating() {
		t.Fatal("ScrollTo should start animating")
	}

	sys.Update()
	if y := sys.Y(); y <= 0 || y >= 1200 {
		t.Errorf("after one frame Y = %v, want strictly between 0 and 1200", y)
	}

	for i := 0; i < 600 && sys.IsAnimating(); i++ {
		sys.Update()
	}
	if sys.IsAnimating() {
		t.Fatal("Smooth scroll did not settle within 10 seconds")
	}
	if sys.Y() != 1200 {
		t.Errorf("Y() = %v, want 1200", sys.Y())
	}
}

func TestScrollToClampsTarget(t *testing.T) {
	sys := NewScrollSystem(ecs.NewEntityManager(), 60)
	sys.SetDocumentHeight(1000, 800)

	sys.ScrollTo(-50)
	for i := 0; i < 600 && sys.IsAnimating(); i++ {
		sys.Update()
	}
	if sys.Y() != 0 {
		t.Errorf("Y() = %v, want 0", sys.Y())
	}

	sys.ScrollTo(5000)
	for i := 0; i < 600 && sys.IsAnimating(); i++ {
		sys.Update()
	}
	if sys.Y() != 200 {
		t.Errorf("Y() = %v, want 200", sys.Y())
	}
}

// TestScrollByInterruptsAnimation 用户滚动打断平滑滚动
func TestScrollByInterruptsAnimation(t *testing.T) {
	sys := NewScrollSystem(ecs.NewEntityManager(), 60)
	sys.SetDocumentHeight(5000, 800)

	sys.ScrollTo(2000)
	sys.Update()
	sys.ScrollBy(60)

	if sys.IsAnimating() {
		t.Error("ScrollBy should cancel the smooth scroll")
	}
}

// TestShrinkingDocumentClampsPosition 文档变短时滚动位置被夹紧
func TestShrinkingDocumentClampsPosition(t *testing.T) {
	sys := NewScrollSystem(ecs.NewEntityManager(), 60)
	sys.SetDocumentHeight(3000, 800)
	sys.ScrollBy(2000)

	sys.SetDocumentHeight(1500, 800)
	if sys.Y() != 700 {
		t.Errorf("Y() = %v, want 700", sys.Y())
	}
	sys.SetDocumentHeight(600, 800)
	if sys.Y() != 0 {
		t.Errorf("Y() = %v, want 0 when document fits viewport", sys.Y())
	}
}

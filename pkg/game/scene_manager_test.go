package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// ResizableScene 记录收到的尺寸通知
type ResizableScene struct {
	MockScene
	sizes [][2]int
}

func (r *ResizableScene) OnResize(width, height int) {
	r.sizes = append(r.sizes, [2]int{width, height})
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded correctly: %+v", mockScene)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
	if sm.GetCurrentScene() != mockScene {
		t.Error("GetCurrentScene returned wrong scene")
	}
}

// TestSceneManagerNoScene 没有场景时不会 panic
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Resize(800, 600)
}

// TestSceneManagerResize 尺寸变化时通知可调整大小的场景，重复尺寸不通知
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	scene := &ResizableScene{}
	sm.SwitchTo(scene)

	sm.Resize(1280, 800)
	sm.Resize(1280, 800)
	sm.Resize(375, 812)

	if len(scene.sizes) != 2 {
		t.Fatalf("Expected 2 resize notifications, got %v", scene.sizes)
	}
	if scene.sizes[1] != [2]int{375, 812} {
		t.Errorf("Last size = %v, want [375 812]", scene.sizes[1])
	}

	// 非 Resizable 场景不受影响
	sm.SwitchTo(&MockScene{})
	sm.Resize(1024, 768)
}

// TestSceneManagerSwitchAppliesKnownSize 切换场景时立即同步已知尺寸
func TestSceneManagerSwitchAppliesKnownSize(t *testing.T) {
	sm := NewSceneManager()
	sm.Resize(1024, 768)

	scene := &ResizableScene{}
	sm.SwitchTo(scene)

	if len(scene.sizes) != 1 || scene.sizes[0] != [2]int{1024, 768} {
		t.Errorf("Expected immediate resize to 1024x768, got %v", scene.sizes)
	}
}

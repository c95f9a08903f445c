package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page view driven by the ebiten loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在视口尺寸变化时收到通知
//
// 彩纸表面、导航栏布局都依赖视口尺寸，必须在尺寸变化后立即同步。
type Resizable interface {
	OnResize(width, height int)
}

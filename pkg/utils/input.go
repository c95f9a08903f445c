// Package utils 提供页面交互层通用的工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WheelStep 鼠标滚轮每格滚动的像素数
const WheelStep = 60.0

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置（视口坐标）
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
	// 本帧的滚动距离（像素，正值表示向下滚动页面）
	ScrollDelta float64
	// 本帧触摸起点到当前位置的纵向距离（正值表示手指上移）
	TouchDragY float64
}

// 触摸起点（touchstart 时记录）
var touchStartY, lastTouchY int

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		touchStartY, lastTouchY = state.Y, state.Y
		return state
	}

	// 活动中的触摸：换算成滚动距离
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		state.TouchDragY = float64(touchStartY - state.Y)
		state.ScrollDelta = float64(lastTouchY - state.Y)
		lastTouchY = state.Y
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	_, wheelY := ebiten.Wheel()
	state.ScrollDelta = -wheelY * WheelStep
	return state
}

// IsKeyJustPressed 检查任意一个按键是否在本帧刚按下
func IsKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Package confetti 实现页面的彩纸粒子动画
//
// Animator 拥有一组独立演化的粒子，每帧推进运动学和视觉状态，
// 渲染到全视口绘图表面上，并在所有粒子过期后自动停止。
//
// 绘图表面、帧调度器、视口尺寸和随机数来源都通过接口注入，
// 因此动画循环可以在测试中逐帧手动推进，而不依赖真实的屏幕刷新。
package confetti

import "image/color"

// Rect 描述一次旋转矩形填充
// 坐标为表面像素坐标，原点在左上角
type Rect struct {
	CenterX  float64
	CenterY  float64
	Width    float64
	Height   float64
	Rotation float64 // 弧度

	Color   color.RGBA
	Opacity float64 // 0-1

	// Glow 光晕颜色，GlowBlur 为 0 时不绘制光晕
	Glow     color.RGBA
	GlowBlur float64
}

// Surface 是动画渲染的目标表面
type Surface interface {
	Width() int
	Height() int
	SetSize(width, height int)
	ClearRect(x, y, width, height float64)
	FillRect(r Rect)
}

// Viewport 提供当前视口尺寸
type Viewport interface {
	Size() (width, height int)
}

// ViewportFunc 让普通函数满足 Viewport 接口
type ViewportFunc func() (width, height int)

// Size 实现 Viewport
func (f ViewportFunc) Size() (int, int) {
	return f()
}

// FrameID 标识一次已登记的帧回调，0 为无效值
type FrameID uint64

// Scheduler 在下一次重绘前执行回调
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// RandomSource 提供 [0,1) 区间的均匀随机数
// *rand.Rand 满足该接口
type RandomSource interface {
	Float64() float64
}

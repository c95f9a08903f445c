package confetti

import (
	"image/color"
	"math"
)

// 粒子参数
const (
	MinVelocityX     = -7.0
	MaxVelocityX     = 7.0
	MinVelocityY     = -14.0 // 初速度向上
	MaxVelocityY     = -4.0
	MinSize          = 5.0
	MaxSize          = 15.0
	MaxRotationSpeed = 0.075 // 弧度/帧，取值区间 [-0.075, 0.075]
	Gravity          = 0.08
	FadeRate         = 0.015
	MinLife          = 100 // 帧，取值区间 [100, 150)
	MaxLife          = 150
	HeightRatio      = 0.4 // 矩形高度 = size * 0.4
	HighlightMinSize = 8.0 // size 超过该值才绘制高光
	HighlightRatio   = 0.3 // 高光方块边长 = size * 0.3
	HighlightOpacity = 0.6
	GlowBlur         = 10.0
)

// Particle 是一个彩纸粒子
//
// 速度单位为像素/帧，Life 为剩余帧数。
// 粒子之间互不读取状态。
type Particle struct {
	X, Y   float64
	VX, VY float64

	Color color.RGBA
	Size  float64

	Rotation      float64
	RotationSpeed float64
	Gravity       float64

	Opacity float64
	Life    int
}

// Update 推进一帧
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += p.Gravity
	p.Rotation += p.RotationSpeed
	p.Life--
	p.Opacity = math.Max(0, p.Opacity-FadeRate)
}

// Alive 返回粒子是否仍存活
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Bounds 返回粒子主体矩形
func (p *Particle) Bounds() Rect {
	return Rect{
		CenterX:  p.X,
		CenterY:  p.Y,
		Width:    p.Size,
		Height:   p.Size * HeightRatio,
		Rotation: p.Rotation,
		Color:    p.Color,
		Opacity:  p.Opacity,
		Glow:     p.Color,
		GlowBlur: GlowBlur,
	}
}

// Highlight 返回高光方块，小粒子没有高光
func (p *Particle) Highlight() (Rect, bool) {
	if p.Size <= HighlightMinSize {
		return Rect{}, false
	}
	side := p.Size * HighlightRatio
	return Rect{
		CenterX:  p.X,
		CenterY:  p.Y,
		Width:    side,
		Height:   side,
		Rotation: p.Rotation,
		Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Opacity:  p.Opacity * HighlightOpacity,
	}, true
}

package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/webaddicted/pkg/confetti"
)

// glowAlpha 光晕层相对粒子本体的不透明度
const glowAlpha = 0.35

// CanvasSurface 覆盖整个视口的彩纸绘制表面
//
// 动画器在 Update 阶段记录绘制命令，场景在 Draw 阶段调用 Draw 回放，
// 因此表面内容与 ebiten 的渲染时机无关。
type CanvasSurface struct {
	width, height int
	rects         []confetti.Rect

	pixel *ebiten.Image // 1x1 白色纹理，首次 Draw 时创建
}

// NewCanvasSurface 创建空表面
func NewCanvasSurface() *CanvasSurface {
	return &CanvasSurface{}
}

// Width 实现 confetti.Surface
func (c *CanvasSurface) Width() int { return c.width }

// Height 实现 confetti.Surface
func (c *CanvasSurface) Height() int { return c.height }

// SetSize 调整表面尺寸，和浏览器画布一样会清空内容
func (c *CanvasSurface) SetSize(width, height int) {
	c.width, c.height = width, height
	c.rects = c.rects[:0]
}

// ClearRect 清除中心落在区域内的矩形
func (c *CanvasSurface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= float64(c.width) && y+h >= float64(c.height) {
		c.rects = c.rects[:0]
		return
	}
	kept := c.rects[:0]
	for _, r := range c.rects {
		if r.CenterX >= x && r.CenterX < x+w && r.CenterY >= y && r.CenterY < y+h {
			continue
		}
		kept = append(kept, r)
	}
	c.rects = kept
}

// FillRect 记录一个旋转矩形
func (c *CanvasSurface) FillRect(r confetti.Rect) {
	c.rects = append(c.rects, r)
}

// Len 返回待绘制的矩形数
func (c *CanvasSurface) Len() int {
	return len(c.rects)
}

// Draw 把记录的矩形按顺序画到 screen 上，光晕使用加色混合
func (c *CanvasSurface) Draw(screen *ebiten.Image) {
	if len(c.rects) == 0 {
		return
	}
	if c.pixel == nil {
		c.pixel = ebiten.NewImage(1, 1)
		c.pixel.Fill(color.White)
	}

	for _, r := range c.rects {
		if r.GlowBlur > 0 && r.Glow.A > 0 {
			c.drawRect(screen, r.CenterX, r.CenterY, r.Width+2*r.GlowBlur, r.Height+2*r.GlowBlur,
				r.Rotation, r.Glow, r.Opacity*glowAlpha, ebiten.BlendLighter)
		}
		c.drawRect(screen, r.CenterX, r.CenterY, r.Width, r.Height,
			r.Rotation, r.Color, r.Opacity, ebiten.BlendSourceOver)
	}
}

func (c *CanvasSurface) drawRect(screen *ebiten.Image, cx, cy, w, h, rotation float64, clr color.RGBA, alpha float64, blend ebiten.Blend) {
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = blend
	screen.DrawImage(c.pixel, op)
}

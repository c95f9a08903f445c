package systems

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gonewx/webaddicted/pkg/config"
)

// PageColors 解析后的主题颜色
type PageColors struct {
	Background color.RGBA
	Surface    color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Accent     color.RGBA
	Success    color.RGBA
	Error      color.RGBA
}

// NewPageColors 解析配色方案中的十六进制颜色
func NewPageColors(scheme config.ColorScheme) (PageColors, error) {
	var colors PageColors
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", scheme.Background, &colors.Background},
		{"surface", scheme.Surface, &colors.Surface},
		{"text", scheme.Text, &colors.Text},
		{"muted", scheme.Muted, &colors.Muted},
		{"accent", scheme.Accent, &colors.Accent},
		{"success", scheme.Success, &colors.Success},
		{"error", scheme.Error, &colors.Error},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return PageColors{}, fmt.Errorf("invalid %s color %q: %w", f.name, f.hex, err)
		}
		r, g, b := c.Clamped().RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors, nil
}

// MixColors 在 Lab 空间中混合两种颜色，t=0 为 a，t=1 为 b
func MixColors(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// Fade 返回带透明度的颜色
func Fade(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}

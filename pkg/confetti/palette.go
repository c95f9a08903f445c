package confetti

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultPaletteHex 默认的 20 色彩纸调色板
var DefaultPaletteHex = []string{
	"#ff6b6b", "#feca57", "#48dbfb", "#ff9ff3", "#54a0ff",
	"#5f27cd", "#00d2d3", "#1dd1a1", "#ff9f43", "#ee5253",
	"#0abde3", "#10ac84", "#f368e0", "#ff6348", "#7bed9f",
	"#70a1ff", "#eccc68", "#a29bfe", "#fd79a8", "#e17055",
}

// ParsePalette 将十六进制颜色列表解析为 RGBA
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}

	palette := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid palette color %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		palette = append(palette, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return palette, nil
}

// DefaultPalette 返回解析后的默认调色板
func DefaultPalette() []color.RGBA {
	palette, err := ParsePalette(DefaultPaletteHex)
	if err != nil {
		// 默认调色板是字面量，解析失败说明代码本身有误
		panic(err)
	}
	return palette
}

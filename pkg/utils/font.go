package utils

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 页面字号
const (
	BodyFontSize  = 13.0
	TitleFontSize = 24.0
)

// FontSet 页面使用的字体
type FontSet struct {
	Body  *text.GoTextFace
	Title *text.GoTextFace
}

// LoadFonts 从内置的 Go Regular 字体创建正文和标题字体
func LoadFonts() (*FontSet, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &FontSet{
		Body:  &text.GoTextFace{Source: source, Size: BodyFontSize},
		Title: &text.GoTextFace{Source: source, Size: TitleFontSize},
	}, nil
}

// Measure 返回按正文字体测量文本宽度的函数，供布局换行使用
func (f *FontSet) Measure() func(string) float64 {
	return func(s string) float64 {
		return text.Advance(s, f.Body)
	}
}

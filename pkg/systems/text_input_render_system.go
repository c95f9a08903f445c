package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// inputPadding 输入框内边距
const inputPadding = 10.0

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、背景、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	colors        *PageColors
	font          text.Face
	measure       func(string) float64
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, colors *PageColors, fonts *utils.FontSet) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		colors:        colors,
		font:          fonts.Body,
		measure:       fonts.Measure(),
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image, scrollY float64) {
	vh := float64(screen.Bounds().Dy())
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.BoundsComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		b := *boundsOf(s.entityManager, id)
		b.Y -= scrollY
		if b.Y > vh || b.Y+b.Height < 0 {
			continue
		}
		s.DrawInputBox(screen, input, b)
	}
}

// DrawInputBox 绘制单个输入框，b 为视口坐标
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, b components.BoundsComponent) {
	// 1. 背景和边框，获得焦点时边框为强调色
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), s.colors.Surface, false)
	border, width := Fade(s.colors.Muted, 0.5), float32(1)
	if input.IsFocused {
		border, width = Fade(s.colors.Accent, 1), 2
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), width, border, false)

	// 文本裁剪在输入框内
	clip := image.Rect(int(b.X+1), int(b.Y+1), int(b.X+b.Width-1), int(b.Y+b.Height-1)).Intersect(screen.Bounds())
	if clip.Empty() {
		return
	}
	dst := screen.SubImage(clip).(*ebiten.Image)

	// 2. 占位符或文本
	if input.Text == "" {
		if input.Placeholder != "" && !input.IsFocused {
			drawText(dst, s.font, input.Placeholder, b.X+inputPadding, b.Y+s.firstLineY(input, b), Fade(s.colors.Muted, 0.8))
		}
		if input.IsFocused && input.CursorVisible {
			s.drawCursor(dst, b.X+inputPadding, b.Y+s.firstLineY(input, b))
		}
		return
	}

	if input.Multiline {
		s.drawMultiline(dst, input, b)
		return
	}
	s.drawSingleLine(dst, input, b)
}

// firstLineY 第一行文本相对输入框顶部的偏移：单行垂直居中，多行从内边距开始
func (s *TextInputRenderSystem) firstLineY(input *components.TextInputComponent, b components.BoundsComponent) float64 {
	if input.Multiline {
		return inputPadding
	}
	return (b.Height - utils.LineHeight) / 2
}

// drawSingleLine 文本超出宽度时向左滚动，保证光标可见
func (s *TextInputRenderSystem) drawSingleLine(dst *ebiten.Image, input *components.TextInputComponent, b components.BoundsComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	cursorX := s.measure(string(runes[:pos]))

	offset := 0.0
	if visible := b.Width - 2*inputPadding; cursorX > visible {
		offset = cursorX - visible
	}

	x := b.X + inputPadding - offset
	y := b.Y + s.firstLineY(input, b)
	drawText(dst, s.font, input.Text, x, y, s.colors.Text)

	if input.IsFocused && input.CursorVisible {
		s.drawCursor(dst, x+cursorX, y)
	}
}

// drawMultiline 多行文本自动换行，超出高度时显示最后几行
func (s *TextInputRenderSystem) drawMultiline(dst *ebiten.Image, input *components.TextInputComponent, b components.BoundsComponent) {
	maxWidth := b.Width - 2*inputPadding
	lines := utils.WrapText(input.Text, maxWidth, s.measure)

	maxLines := int((b.Height - 2*inputPadding) / utils.LineHeight)
	if maxLines < 1 {
		maxLines = 1
	}
	first := 0
	if len(lines) > maxLines {
		first = len(lines) - maxLines
	}

	x := b.X + inputPadding
	y := b.Y + inputPadding
	for _, line := range lines[first:] {
		drawText(dst, s.font, line, x, y, s.colors.Text)
		y += utils.LineHeight
	}

	if input.IsFocused && input.CursorVisible {
		// 按光标前的文本换行定位光标
		runes := []rune(input.Text)
		before := utils.WrapText(string(runes[:clampCursor(input.CursorPosition, len(runes))]), maxWidth, s.measure)
		row := len(before) - 1 - first
		if row < 0 {
			return
		}
		last := before[len(before)-1]
		s.drawCursor(dst, x+s.measure(last), b.Y+inputPadding+float64(row)*utils.LineHeight)
	}
}

// drawCursor 绘制光标（2像素宽的竖线）
func (s *TextInputRenderSystem) drawCursor(dst *ebiten.Image, x, y float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), 2, utils.LineHeight, s.colors.Text, false)
}

package systems

import (
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

// cursorBlinkInterval 光标闪烁间隔(秒)
const cursorBlinkInterval = 0.5

// TextInputSystem 表单输入框：焦点、光标闪烁和键盘编辑
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新光标闪烁并处理获得焦点的输入框的键盘输入
func (s *TextInputSystem) Update(deltaTime float64) {
	input, ok := s.Focused()
	if !ok {
		return
	}
	s.updateCursorBlink(input, deltaTime)
	s.handleKeyboardInput(input)
}

// Focused 返回获得焦点的输入框
func (s *TextInputSystem) Focused() (*components.TextInputComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.IsFocused {
			return input, true
		}
	}
	return nil, false
}

// Focus 让指定输入框获得焦点，其余输入框失去焦点
// id 为 0 时所有输入框失去焦点
func (s *TextInputSystem) Focus(id ecs.EntityID) {
	for _, other := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, other)
		if other != id {
			input.IsFocused = false
			input.CursorVisible = false
			continue
		}
		input.IsFocused = true
		input.CursorVisible = true
		input.CursorBlinkTimer = 0
		input.CursorPosition = len([]rune(input.Text))
	}
}

// FocusAt 让文档坐标 (x, y) 处的输入框获得焦点，没有命中时清除焦点
func (s *TextInputSystem) FocusAt(x, y float64) bool {
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.BoundsComponent](s.entityManager) {
		if boundsContain(s.entityManager, id, x, y) {
			s.Focus(id)
			return true
		}
	}
	s.Focus(0)
	return false
}

// FocusNext 焦点移到同一表单的下一个输入框（Tab）
func (s *TextInputSystem) FocusNext() {
	var fields []ecs.EntityID
	current := -1
	form := ""
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.IsFocused {
			form = input.Form
		}
	}
	if form == "" {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.Form != form {
			continue
		}
		if input.IsFocused {
			current = len(fields)
		}
		fields = append(fields, id)
	}
	s.Focus(fields[(current+1)%len(fields)])
}

// Values 返回表单各字段的当前文本
func (s *TextInputSystem) Values(form string) map[string]string {
	values := make(map[string]string)
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.Form == form {
			values[input.Field] = input.Text
		}
	}
	return values
}

// Reset 清空表单的所有字段
func (s *TextInputSystem) Reset(form string) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.Form == form {
			input.Text = ""
			input.CursorPosition = 0
		}
	}
}

func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// repeating 第1帧立即响应，按住半秒后每3帧响应一次
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	edited := false

	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		edited = insertText(input, string(runes)) || edited
	}
	if repeating(ebiten.KeyBackspace) {
		deleteCharBefore(input)
		edited = true
	}
	if repeating(ebiten.KeyDelete) {
		deleteCharAfter(input)
		edited = true
	}
	if repeating(ebiten.KeyArrowLeft) {
		moveCursor(input, -1)
		edited = true
	}
	if repeating(ebiten.KeyArrowRight) {
		moveCursor(input, 1)
		edited = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		edited = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		edited = true
	}

	// 编辑时光标保持可见
	if edited {
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}
}

// insertText 在光标位置插入可打印字符，超过 MaxLength 时整段丢弃
func insertText(input *components.TextInputComponent, text string) bool {
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsPrint(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return false
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] %s.%s reached max length (%d)", input.Form, input.Field, input.MaxLength)
		return false
	}

	pos := clampCursor(input.CursorPosition, len(runes))
	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:pos]...)
	result = append(result, filtered...)
	result = append(result, runes[pos:]...)

	input.Text = string(result)
	input.CursorPosition = pos + len(filtered)
	return true
}

// deleteCharBefore 删除光标前的字符（退格）
func deleteCharBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos == 0 {
		return
	}
	input.Text = string(append(runes[:pos-1:pos-1], runes[pos:]...))
	input.CursorPosition = pos - 1
}

// deleteCharAfter 删除光标后的字符（Delete键），光标不动
func deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	pos := clampCursor(input.CursorPosition, len(runes))
	if pos >= len(runes) {
		return
	}
	input.Text = string(append(runes[:pos:pos], runes[pos+1:]...))
}

func moveCursor(input *components.TextInputComponent, delta int) {
	input.CursorPosition = clampCursor(input.CursorPosition+delta, len([]rune(input.Text)))
}

func clampCursor(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}

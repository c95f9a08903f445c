package components

// TextInputComponent 表单输入框组件
// 用于联系表单和订阅表单的字段输入
type TextInputComponent struct {
	Section string // 所属区块ID
	Form    string // 所属表单: "contact" / "newsletter"
	Field   string // 字段名: "name" / "email" / "message"

	// 输入框文本
	Text        string // 当前输入的文本
	Placeholder string // 占位符文本（输入框为空时显示）
	MaxLength   int    // 最大字符数（0 = 无限制）
	Multiline   bool   // 多行文本框（留言）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）
}

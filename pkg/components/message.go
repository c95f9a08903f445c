package components

// FormMessageComponent 表单提交后显示的临时提示
type FormMessageComponent struct {
	Form string // "contact" 或 "newsletter"
	Kind string // "success" 或 "error"
	Text string
}

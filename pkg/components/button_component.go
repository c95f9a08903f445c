package components

// ButtonAction 按钮触发的动作
type ButtonAction int

const (
	// ButtonSubmit 提交 Form 指定的表单
	ButtonSubmit ButtonAction = iota
	// ButtonThemeToggle 切换明暗主题
	ButtonThemeToggle
	// ButtonHamburger 切换移动端菜单
	ButtonHamburger
	// ButtonBackToTop 平滑滚动回顶部
	ButtonBackToTop
)

// ButtonComponent 可点击按钮，位置由同一实体上的 BoundsComponent 给出
type ButtonComponent struct {
	Action ButtonAction
	Form   string // ButtonSubmit 使用
	Label  string

	// Fixed 为 true 时 Bounds 使用视口坐标（导航栏上的按钮），否则为文档坐标
	Fixed   bool
	Hovered bool
	Enabled bool
}

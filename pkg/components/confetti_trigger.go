package components

// ConfettiTriggerComponent 让卡片触发彩纸爆发
type ConfettiTriggerComponent struct {
	OnClick   bool // 点击时在点击位置爆发
	OnHover   bool // 指针移入时在卡片中心爆发
	OnVisible bool // 首次进入视口时在卡片中心爆发（仅一次）

	Hovered      bool
	VisibleFired bool
}

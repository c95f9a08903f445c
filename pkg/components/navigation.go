package components

// NavLinkComponent 导航栏中的一个链接
type NavLinkComponent struct {
	Label  string
	Href   string // 形如 "#faq"
	Active bool   // 当前滚动位置所在区块对应的链接
}

// NavMenuComponent 移动端菜单状态
//
// 菜单面板与汉堡按钮总是同时切换，Open 同时代表两者的激活状态。
type NavMenuComponent struct {
	Open bool

	// 视口坐标，用于"点击菜单外部关闭菜单"
	Hamburger BoundsComponent
	Panel     BoundsComponent
}

package components

// ScrollComponent 页面滚动状态（单例）
type ScrollComponent struct {
	Y        float64 // 当前滚动位置(像素)
	Velocity float64 // 平滑滚动的弹簧速度
	Target   float64
	MaxY     float64 // 文档高度 - 视口高度

	Animating bool // 正在平滑滚动到 Target
}

// BackToTopComponent 回到顶部按钮
// 位置由同一实体上的 BoundsComponent 给出（视口坐标）
type BackToTopComponent struct {
	Visible bool
}

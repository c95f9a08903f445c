package components

// BoundsComponent 页面元素的矩形区域
//
// 页面内容（区块、卡片）使用文档坐标，随滚动移动；
// 固定元素（导航栏、回到顶部按钮）使用视口坐标。
type BoundsComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

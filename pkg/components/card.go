package components

// CardComponent 作品、评价、课程、笔记卡片
type CardComponent struct {
	Section string // 所属区块ID
	Kind    string // website / review / course / note
	Title   string
	Body    string
	Hovered bool
}

// RevealComponent 滚动显现动画状态
type RevealComponent struct {
	Revealed       bool
	AnimationDelay float64 // 首屏加载动画的错峰延迟(秒)，index * 0.1
	Elapsed        float64 // 显现后经过的时间(秒)，含延迟
}

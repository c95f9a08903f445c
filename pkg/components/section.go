package components

// SectionComponent 页面中带锚点的区块
// 位置和高度由同一实体上的 BoundsComponent 给出（文档坐标）
type SectionComponent struct {
	ID       string
	Title    string
	Subtitle string
	Form     string // 区块内表单的ID，没有表单时为空
}

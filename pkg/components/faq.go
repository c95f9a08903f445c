package components

// FAQItemComponent 折叠问答项
// 同一时间最多一个问答项处于展开状态
type FAQItemComponent struct {
	Section  string // 所属区块ID
	Question string
	Answer   string
	Active   bool
}

package components

import "github.com/gonewx/webaddicted/pkg/ecs"

// RippleComponent 卡片点击涟漪
// 生命周期由 LifetimeComponent 控制，Scale 从 0 增长到 4，Alpha 从 0.6 衰减到 0
type RippleComponent struct {
	Card    ecs.EntityID // 所属卡片
	CenterX float64
	CenterY float64
	Size    float64 // max(卡片宽, 卡片高)
	Scale   float64
	Alpha   float64
}

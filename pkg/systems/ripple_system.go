package systems

import (
	"math"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

const (
	// RippleDuration 涟漪动画时长(秒)
	RippleDuration = 0.6
	// RippleMaxScale 涟漪结束时的缩放
	RippleMaxScale = 4.0
	// RippleStartAlpha 涟漪起始不透明度
	RippleStartAlpha = 0.6
)

// RippleSystem 卡片点击涟漪
type RippleSystem struct {
	entityManager *ecs.EntityManager
}

// NewRippleSystem 创建涟漪系统
func NewRippleSystem(em *ecs.EntityManager) *RippleSystem {
	return &RippleSystem{entityManager: em}
}

// Spawn 在卡片上 (x, y) 处生成涟漪，坐标为文档坐标
func (s *RippleSystem) Spawn(card ecs.EntityID, x, y float64) (ecs.EntityID, bool) {
	bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, card)
	if !ok {
		return 0, false
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.RippleComponent{
		Card:    card,
		CenterX: x,
		CenterY: y,
		Size:    math.Max(bounds.Width, bounds.Height),
		Alpha:   RippleStartAlpha,
	})
	s.entityManager.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: RippleDuration,
	})
	return id, true
}

// Update 按生命周期进度推进涟漪的缩放和透明度
// 移除由 LifetimeSystem 负责
func (s *RippleSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.RippleComponent, *components.LifetimeComponent](s.entityManager) {
		ripple, _ := ecs.GetComponent[*components.RippleComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		t := LifetimeProgress(lifetime)
		ripple.Scale = utils.Lerp(0, RippleMaxScale, t)
		ripple.Alpha = utils.Lerp(RippleStartAlpha, 0, t)
	}
}

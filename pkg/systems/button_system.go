package systems

import (
	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

// ButtonSystem 按钮命中检测和悬停状态
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

func (s *ButtonSystem) contains(id ecs.EntityID, button *components.ButtonComponent, x, y, scrollY float64) bool {
	if !button.Enabled {
		return false
	}
	if !button.Fixed {
		y += scrollY
	}
	return boundsContain(s.entityManager, id, x, y)
}

// UpdateHover 按视口坐标更新所有按钮的悬停状态
func (s *ButtonSystem) UpdateHover(x, y, scrollY float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		button.Hovered = s.contains(id, button, x, y, scrollY)
	}
}

// HitTest 返回视口坐标 (x, y) 处的按钮，固定按钮优先
func (s *ButtonSystem) HitTest(x, y, scrollY float64) (*components.ButtonComponent, bool) {
	var hit *components.ButtonComponent
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.BoundsComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if !s.contains(id, button, x, y, scrollY) {
			continue
		}
		if button.Fixed {
			return button, true
		}
		if hit == nil {
			hit = button
		}
	}
	return hit, hit != nil
}

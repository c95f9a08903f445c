package systems

import (
	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// Burster 在视口坐标发射一次默认大小的彩纸爆发
// *confetti.Animator 满足该接口
type Burster interface {
	StartDefault(x, y float64)
}

// CardInteractionSystem 处理卡片的悬停、点击涟漪和彩纸触发
//
// 卡片使用文档坐标，彩纸表面覆盖视口，因此发射位置要减去滚动距离。
type CardInteractionSystem struct {
	entityManager *ecs.EntityManager
	ripples       *RippleSystem
	burster       Burster
}

// NewCardInteractionSystem 创建卡片交互系统，burster 可以为 nil
func NewCardInteractionSystem(em *ecs.EntityManager, ripples *RippleSystem, burster Burster) *CardInteractionSystem {
	return &CardInteractionSystem{
		entityManager: em,
		ripples:       ripples,
		burster:       burster,
	}
}

func (s *CardInteractionSystem) burst(x, y float64) {
	if s.burster != nil {
		s.burster.StartDefault(x, y)
	}
}

// UpdateHover 更新指针所在卡片的悬停状态，移入带 OnHover 触发的卡片时在卡片中心爆发
func (s *CardInteractionSystem) UpdateHover(pointerX, pointerY, scrollY float64) {
	docY := pointerY + scrollY

	for _, id := range ecs.GetEntitiesWith2[*components.CardComponent, *components.BoundsComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		card.Hovered = boundsContain(s.entityManager, id, pointerX, docY)

		trigger, ok := ecs.GetComponent[*components.ConfettiTriggerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		entered := card.Hovered && !trigger.Hovered
		trigger.Hovered = card.Hovered
		if entered && trigger.OnHover {
			bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
			s.burst(bounds.X+bounds.Width/2, bounds.Y+bounds.Height/2-scrollY)
		}
	}
}

// HandleClick 处理视口坐标 (x, y) 的点击，命中卡片时生成涟漪
// 带 OnClick 触发的卡片在点击位置爆发
func (s *CardInteractionSystem) HandleClick(x, y, scrollY float64) (ecs.EntityID, bool) {
	docY := y + scrollY

	for _, id := range ecs.GetEntitiesWith2[*components.CardComponent, *components.BoundsComponent](s.entityManager) {
		if !boundsContain(s.entityManager, id, x, docY) {
			continue
		}

		if s.ripples != nil {
			s.ripples.Spawn(id, x, docY)
		}
		if trigger, ok := ecs.GetComponent[*components.ConfettiTriggerComponent](s.entityManager, id); ok && trigger.OnClick {
			s.burst(x, y)
		}
		return id, true
	}
	return 0, false
}

// UpdateVisibility 带 OnVisible 触发的卡片首次进入视口时在卡片中心爆发，只触发一次
func (s *CardInteractionSystem) UpdateVisibility(scrollY, viewportHeight float64) {
	viewBottom := scrollY + viewportHeight - RevealBottomMargin

	for _, id := range ecs.GetEntitiesWith2[*components.ConfettiTriggerComponent, *components.BoundsComponent](s.entityManager) {
		trigger, _ := ecs.GetComponent[*components.ConfettiTriggerComponent](s.entityManager, id)
		if !trigger.OnVisible || trigger.VisibleFired {
			continue
		}

		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if utils.VisibleRatio(bounds.Y, bounds.Height, scrollY, viewBottom) < RevealThreshold {
			continue
		}
		trigger.VisibleFired = true
		s.burst(bounds.X+bounds.Width/2, bounds.Y+bounds.Height/2-scrollY)
	}
}

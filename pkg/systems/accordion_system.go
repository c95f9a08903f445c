package systems

import (
	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

// AccordionSystem FAQ 折叠面板：同一时间最多展开一项
type AccordionSystem struct {
	entityManager *ecs.EntityManager
}

// NewAccordionSystem 创建折叠面板系统
func NewAccordionSystem(em *ecs.EntityManager) *AccordionSystem {
	return &AccordionSystem{entityManager: em}
}

// Toggle 关闭所有问答项；被点击的项原本是关闭的则展开它
func (s *AccordionSystem) Toggle(id ecs.EntityID) {
	item, ok := ecs.GetComponent[*components.FAQItemComponent](s.entityManager, id)
	if !ok {
		return
	}
	wasActive := item.Active

	for _, other := range ecs.GetEntitiesWith1[*components.FAQItemComponent](s.entityManager) {
		faq, _ := ecs.GetComponent[*components.FAQItemComponent](s.entityManager, other)
		faq.Active = false
	}

	if !wasActive {
		item.Active = true
	}
}

// HandleClick 点击落在某个问题上时切换它，坐标为文档坐标
func (s *AccordionSystem) HandleClick(x, y float64) bool {
	for _, id := range ecs.GetEntitiesWith2[*components.FAQItemComponent, *components.BoundsComponent](s.entityManager) {
		if boundsContain(s.entityManager, id, x, y) {
			s.Toggle(id)
			return true
		}
	}
	return false
}

// ActiveItem 返回当前展开的问答项
func (s *AccordionSystem) ActiveItem() (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.FAQItemComponent](s.entityManager) {
		faq, _ := ecs.GetComponent[*components.FAQItemComponent](s.entityManager, id)
		if faq.Active {
			return id, true
		}
	}
	return 0, false
}

package systems

import (
	"log"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/forms"
)

// MessageSystem 显示表单提交结果，每个表单同一时间只有一条提示
type MessageSystem struct {
	entityManager *ecs.EntityManager
}

// NewMessageSystem 创建表单提示系统
func NewMessageSystem(em *ecs.EntityManager) *MessageSystem {
	return &MessageSystem{entityManager: em}
}

// Show 替换表单当前的提示，新提示在 forms.MessageDuration 秒后由 LifetimeSystem 移除
func (s *MessageSystem) Show(result forms.Result) ecs.EntityID {
	s.Clear(result.Form)

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.FormMessageComponent{
		Form: result.Form,
		Kind: string(result.Kind),
		Text: result.Message,
	})
	s.entityManager.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: forms.MessageDuration,
	})

	log.Printf("[MessageSystem] %s form: %s (%s)", result.Form, result.Message, result.Kind)
	return id
}

// Clear 移除表单的提示
func (s *MessageSystem) Clear(form string) {
	for _, id := range ecs.GetEntitiesWith1[*components.FormMessageComponent](s.entityManager) {
		msg, _ := ecs.GetComponent[*components.FormMessageComponent](s.entityManager, id)
		if msg.Form != form {
			continue
		}
		// 去掉组件，帧末清理前也不会再被查到
		ecs.RemoveComponent[*components.FormMessageComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)
	}
}

// Current 返回表单当前显示的提示
func (s *MessageSystem) Current(form string) (*components.FormMessageComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.FormMessageComponent](s.entityManager) {
		msg, _ := ecs.GetComponent[*components.FormMessageComponent](s.entityManager, id)
		if msg.Form != form {
			continue
		}
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok && lifetime.IsExpired {
			continue
		}
		return msg, true
	}
	return nil, false
}

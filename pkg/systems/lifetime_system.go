package systems

import (
	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// LifetimeSystem 管理临时实体的生命周期（表单提示、点击涟漪）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
// 过期实体只被标记删除，由场景在帧末统一清理
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime

		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
		}
	}
}

// LifetimeProgress 返回生命周期进度 [0, 1]
func LifetimeProgress(lifetime *components.LifetimeComponent) float64 {
	if lifetime.MaxLifetime <= 0 {
		return 1
	}
	return utils.Clamp01(lifetime.CurrentLifetime / lifetime.MaxLifetime)
}

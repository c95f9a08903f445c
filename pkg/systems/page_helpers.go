package systems

import (
	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// findSingleton 返回第一个拥有组件 T 的实体
func findSingleton[T any](em *ecs.EntityManager) (ecs.EntityID, T, bool) {
	var zero T
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if comp, ok := ecs.GetComponent[T](em, id); ok {
			return id, comp, true
		}
	}
	return 0, zero, false
}

// boundsContain 判断实体的 BoundsComponent 是否包含点 (x, y)
func boundsContain(em *ecs.EntityManager, id ecs.EntityID, x, y float64) bool {
	b, ok := ecs.GetComponent[*components.BoundsComponent](em, id)
	if !ok {
		return false
	}
	return rectContains(*b, x, y)
}

func rectContains(b components.BoundsComponent, x, y float64) bool {
	return utils.PointInRect(x, y, b.X, b.Y, b.Width, b.Height)
}

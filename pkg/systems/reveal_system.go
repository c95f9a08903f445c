package systems

import (
	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

const (
	// RevealThreshold 元素至少有该比例进入视口才显现
	RevealThreshold = 0.1
	// RevealBottomMargin 视口底部收缩的像素数
	RevealBottomMargin = 50.0
	// RevealStagger 首屏加载动画每张卡片的错峰延迟(秒)
	RevealStagger = 0.1
	// RevealDuration 显现动画时长(秒)
	RevealDuration = 0.6
)

// RevealSystem 卡片滚动显现
type RevealSystem struct {
	entityManager *ecs.EntityManager
}

// NewRevealSystem 创建滚动显现系统
func NewRevealSystem(em *ecs.EntityManager) *RevealSystem {
	return &RevealSystem{entityManager: em}
}

// ApplyLoadingDelays 按页面顺序为卡片设置错峰延迟
func (s *RevealSystem) ApplyLoadingDelays() {
	for i, id := range ecs.GetEntitiesWith1[*components.RevealComponent](s.entityManager) {
		reveal, _ := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
		reveal.AnimationDelay = float64(i) * RevealStagger
	}
}

// Update 标记进入视口的卡片并推进显现动画
// 卡片一旦显现不会再隐藏
func (s *RevealSystem) Update(deltaTime, scrollY, viewportHeight float64) {
	viewBottom := scrollY + viewportHeight - RevealBottomMargin

	for _, id := range ecs.GetEntitiesWith2[*components.RevealComponent, *components.BoundsComponent](s.entityManager) {
		reveal, _ := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
		if reveal.Revealed {
			reveal.Elapsed += deltaTime
			continue
		}

		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if utils.VisibleRatio(bounds.Y, bounds.Height, scrollY, viewBottom) >= RevealThreshold {
			reveal.Revealed = true
		}
	}
}

// RevealProgress 返回显现动画进度 [0, 1]，未显现为 0
func RevealProgress(reveal *components.RevealComponent) float64 {
	if !reveal.Revealed {
		return 0
	}
	t := (reveal.Elapsed - reveal.AnimationDelay) / RevealDuration
	return utils.EaseOutCubic(utils.Clamp01(t))
}

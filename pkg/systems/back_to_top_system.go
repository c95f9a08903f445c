package systems

import (
	"time"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

// BackToTopThrottle 回到顶部按钮可见性的最短刷新间隔
const BackToTopThrottle = 100 * time.Millisecond

// BackToTopSystem 滚动超过半屏后显示回到顶部按钮
type BackToTopSystem struct {
	entityManager *ecs.EntityManager
	throttle      *utils.Throttle
}

// NewBackToTopSystem 创建回到顶部系统
func NewBackToTopSystem(em *ecs.EntityManager) *BackToTopSystem {
	return &BackToTopSystem{
		entityManager: em,
		throttle:      utils.NewThrottle(BackToTopThrottle),
	}
}

// Update 按节流间隔刷新按钮可见性
func (s *BackToTopSystem) Update(now time.Time, scrollY, viewportHeight float64) {
	if !s.throttle.Allow(now) {
		return
	}
	_, button, ok := findSingleton[*components.BackToTopComponent](s.entityManager)
	if !ok {
		return
	}
	button.Visible = scrollY > viewportHeight/2
}

// IsVisible 返回按钮是否可见
func (s *BackToTopSystem) IsVisible() bool {
	_, button, ok := findSingleton[*components.BackToTopComponent](s.entityManager)
	return ok && button.Visible
}

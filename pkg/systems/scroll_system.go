package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

const (
	// scrollAngularFrequency 弹簧角频率，数值越大越快到达目标
	scrollAngularFrequency = 8.0
	// scrollDampingRatio 临界阻尼，不回弹
	scrollDampingRatio = 1.0
	// scrollSettleDistance 距离和速度都低于该值时直接落到目标
	scrollSettleDistance = 0.5
)

// ScrollSystem 管理页面滚动：滚轮/触摸立即滚动，链接跳转平滑滚动
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	spring        harmonica.Spring
}

// NewScrollSystem 创建滚动系统，tps 为每秒更新次数
func NewScrollSystem(em *ecs.EntityManager, tps int) *ScrollSystem {
	if tps <= 0 {
		tps = 60
	}
	return &ScrollSystem{
		entityManager: em,
		spring:        harmonica.NewSpring(harmonica.FPS(tps), scrollAngularFrequency, scrollDampingRatio),
	}
}

func (s *ScrollSystem) state() *components.ScrollComponent {
	_, scroll, ok := findSingleton[*components.ScrollComponent](s.entityManager)
	if !ok {
		id := s.entityManager.CreateEntity()
		scroll = &components.ScrollComponent{}
		s.entityManager.AddComponent(id, scroll)
	}
	return scroll
}

// Y 返回当前滚动位置
func (s *ScrollSystem) Y() float64 {
	return s.state().Y
}

// SetDocumentHeight 根据文档和视口高度更新最大滚动距离
func (s *ScrollSystem) SetDocumentHeight(documentHeight, viewportHeight float64) {
	scroll := s.state()
	scroll.MaxY = math.Max(0, documentHeight-viewportHeight)
	scroll.Y = s.clamp(scroll, scroll.Y)
	scroll.Target = s.clamp(scroll, scroll.Target)
}

// ScrollBy 立即滚动 delta 像素，并打断正在进行的平滑滚动
func (s *ScrollSystem) ScrollBy(delta float64) {
	if delta == 0 {
		return
	}
	scroll := s.state()
	scroll.Animating = false
	scroll.Velocity = 0
	scroll.Y = s.clamp(scroll, scroll.Y+delta)
	scroll.Target = scroll.Y
}

// ScrollTo 平滑滚动到 target
func (s *ScrollSystem) ScrollTo(target float64) {
	scroll := s.state()
	scroll.Target = s.clamp(scroll, target)
	scroll.Animating = true
}

// IsAnimating 返回是否正在平滑滚动
func (s *ScrollSystem) IsAnimating() bool {
	return s.state().Animating
}

// Update 推进一次弹簧模拟
func (s *ScrollSystem) Update() {
	scroll := s.state()
	if !scroll.Animating {
		return
	}

	scroll.Y, scroll.Velocity = s.spring.Update(scroll.Y, scroll.Velocity, scroll.Target)

	if math.Abs(scroll.Y-scroll.Target) < scrollSettleDistance && math.Abs(scroll.Velocity) < scrollSettleDistance {
		scroll.Y = scroll.Target
		scroll.Velocity = 0
		scroll.Animating = false
	}
}

func (s *ScrollSystem) clamp(scroll *components.ScrollComponent, y float64) float64 {
	return math.Max(0, math.Min(y, scroll.MaxY))
}

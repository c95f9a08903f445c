package systems

import (
	"log"
	"math"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/utils"
)

const (
	// ActiveLinkOffset 判定当前区块时在滚动位置上加的偏移
	ActiveLinkOffset = 100.0
	// NavBarHeight 固定导航栏高度，跳转到区块时需要让出
	NavBarHeight = 70.0
	// TouchScrollLockThreshold 菜单打开时超过该距离的触摸滑动被阻止
	TouchScrollLockThreshold = 10.0
)

// NavigationSystem 管理导航栏：移动端菜单开合与当前区块高亮
type NavigationSystem struct {
	entityManager *ecs.EntityManager
}

// NewNavigationSystem 创建导航系统
func NewNavigationSystem(em *ecs.EntityManager) *NavigationSystem {
	return &NavigationSystem{entityManager: em}
}

func (s *NavigationSystem) menu() (*components.NavMenuComponent, bool) {
	_, menu, ok := findSingleton[*components.NavMenuComponent](s.entityManager)
	return menu, ok
}

// IsMenuOpen 返回移动端菜单是否打开
func (s *NavigationSystem) IsMenuOpen() bool {
	menu, ok := s.menu()
	return ok && menu.Open
}

// ToggleMobileMenu 切换移动端菜单（汉堡按钮点击）
func (s *NavigationSystem) ToggleMobileMenu() {
	if menu, ok := s.menu(); ok {
		menu.Open = !menu.Open
	}
}

// CloseMobileMenu 关闭移动端菜单
func (s *NavigationSystem) CloseMobileMenu() {
	if menu, ok := s.menu(); ok {
		menu.Open = false
	}
}

// HandleClickOutside 点击落在汉堡按钮和菜单面板之外时关闭菜单
// 坐标为视口坐标
func (s *NavigationSystem) HandleClickOutside(x, y float64) {
	menu, ok := s.menu()
	if !ok {
		return
	}
	if rectContains(menu.Hamburger, x, y) || rectContains(menu.Panel, x, y) {
		return
	}
	menu.Open = false
}

// HandleResize 视口宽度超过移动端断点时关闭菜单
func (s *NavigationSystem) HandleResize(viewportWidth int) {
	if viewportWidth > utils.MobileBreakpoint {
		s.CloseMobileMenu()
	}
}

// ShouldBlockTouchScroll 菜单打开时阻止页面随手指滑动
func (s *NavigationSystem) ShouldBlockTouchScroll(dragY float64) bool {
	return s.IsMenuOpen() && math.Abs(dragY) > TouchScrollLockThreshold
}

// HitLink 返回视口坐标 (x, y) 处的导航链接
func (s *NavigationSystem) HitLink(x, y float64) (string, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.NavLinkComponent, *components.BoundsComponent](s.entityManager) {
		if !boundsContain(s.entityManager, id, x, y) {
			continue
		}
		link, _ := ecs.GetComponent[*components.NavLinkComponent](s.entityManager, id)
		return link.Href, true
	}
	return "", false
}

// ScrollTargetFor 返回跳转到链接区块时的滚动目标，并关闭菜单
func (s *NavigationSystem) ScrollTargetFor(href string) (float64, bool) {
	s.CloseMobileMenu()

	for _, id := range ecs.GetEntitiesWith2[*components.SectionComponent, *components.BoundsComponent](s.entityManager) {
		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
		if "#"+section.ID != href {
			continue
		}
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		return bounds.Y - NavBarHeight, true
	}

	log.Printf("[NavigationSystem] No section for link %s", href)
	return 0, false
}

// UpdateActiveLink 根据滚动位置高亮对应区块的链接
// 没有区块命中时保持原有高亮
func (s *NavigationSystem) UpdateActiveLink(scrollY float64) {
	position := scrollY + ActiveLinkOffset

	for _, id := range ecs.GetEntitiesWith2[*components.SectionComponent, *components.BoundsComponent](s.entityManager) {
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		if position < bounds.Y || position >= bounds.Y+bounds.Height {
			continue
		}

		section, _ := ecs.GetComponent[*components.SectionComponent](s.entityManager, id)
		href := "#" + section.ID
		for _, linkID := range ecs.GetEntitiesWith1[*components.NavLinkComponent](s.entityManager) {
			link, _ := ecs.GetComponent[*components.NavLinkComponent](s.entityManager, linkID)
			link.Active = link.Href == href
		}
	}
}

// ActiveHref 返回当前高亮的链接，没有时返回空字符串
func (s *NavigationSystem) ActiveHref() string {
	for _, id := range ecs.GetEntitiesWith1[*components.NavLinkComponent](s.entityManager) {
		link, _ := ecs.GetComponent[*components.NavLinkComponent](s.entityManager, id)
		if link.Active {
			return link.Href
		}
	}
	return ""
}

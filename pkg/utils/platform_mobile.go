//go:build mobile

package utils

// MobileBreakpoint 视口宽度不超过该值时使用移动端布局（汉堡菜单）
const MobileBreakpoint = 768

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// UseCompactLayout 移动端始终使用紧凑布局
func UseCompactLayout(viewportWidth int) bool {
	return true
}

//go:build !mobile

package utils

import "os"

// MobileBreakpoint 视口宽度不超过该值时使用移动端布局（汉堡菜单）
const MobileBreakpoint = 768

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 WEBADDICTED_MOBILE_EMULATE=1 强制启用移动布局（用于本地调试）
func IsMobile() bool {
	return os.Getenv("WEBADDICTED_MOBILE_EMULATE") == "1"
}

// UseCompactLayout 判断给定视口宽度是否使用移动端布局
func UseCompactLayout(viewportWidth int) bool {
	return IsMobile() || viewportWidth <= MobileBreakpoint
}

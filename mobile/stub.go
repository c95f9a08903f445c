//go:build !mobile

// 桌面构建下 mobile 包只保留导出符号，绑定入口见 mobile.go。
// 这样 go build ./... 不需要 -tags mobile 也不会依赖 data/ 的副本。
package mobile

// Dummy 与 mobile.go 中的同名函数对应
func Dummy() {}

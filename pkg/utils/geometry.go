package utils

// PointInRect 判断点是否落在矩形内（含左上边界，不含右下边界）
func PointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px < x+width && py >= y && py < y+height
}

// VisibleRatio 计算纵向区间 [top, top+height) 落在 [viewTop, viewBottom) 内的比例
// height <= 0 时返回 0
func VisibleRatio(top, height, viewTop, viewBottom float64) float64 {
	if height <= 0 || viewBottom <= viewTop {
		return 0
	}
	visibleTop := top
	if viewTop > visibleTop {
		visibleTop = viewTop
	}
	visibleBottom := top + height
	if viewBottom < visibleBottom {
		visibleBottom = viewBottom
	}
	if visibleBottom <= visibleTop {
		return 0
	}
	return (visibleBottom - visibleTop) / height
}

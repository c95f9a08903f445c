package utils

import (
	"math"
	"testing"
)

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"内部", 50, 50, true},
		{"左上角", 10, 20, true},
		{"右边界外", 110, 50, false},
		{"上方", 50, 19, false},
	}
	for _, tt := range tests {
		if got := PointInRect(tt.px, tt.py, 10, 20, 100, 80); got != tt.want {
			t.Errorf("%s: PointInRect(%v, %v) = %v, want %v", tt.name, tt.px, tt.py, got, tt.want)
		}
	}
}

func TestVisibleRatio(t *testing.T) {
	tests := []struct {
		name                string
		top, height         float64
		viewTop, viewBottom float64
		want                float64
	}{
		{"完全可见", 100, 100, 0, 720, 1},
		{"完全在下方", 800, 100, 0, 720, 0},
		{"一半可见", 670, 100, 0, 720, 0.5},
		{"顶部被裁掉", -20, 100, 0, 720, 0.8},
		{"零高度", 100, 0, 0, 720, 0},
	}
	for _, tt := range tests {
		got := VisibleRatio(tt.top, tt.height, tt.viewTop, tt.viewBottom)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: VisibleRatio = %v, want %v", tt.name, got, tt.want)
		}
	}
}

package utils

import "time"

// Throttle 限制回调的执行频率
//
// 第一次调用立即放行，之后在 Interval 内的调用全部被丢弃（不补发）。
type Throttle struct {
	Interval time.Duration

	last  time.Time
	fired bool
}

// NewThrottle 创建指定间隔的限流器
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{Interval: interval}
}

// Allow 判断 now 时刻的调用是否放行
func (t *Throttle) Allow(now time.Time) bool {
	if t.fired && now.Sub(t.last) < t.Interval {
		return false
	}
	t.fired = true
	t.last = now
	return true
}

// Reset 清除限流状态，下一次调用立即放行
func (t *Throttle) Reset() {
	t.fired = false
}

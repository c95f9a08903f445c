package confetti

// FrameQueue 是协作式的帧调度器
//
// 宿主在每次显示刷新时调用一次 Tick()（ebiten 的 Update，或测试中手动调用）。
// Tick 只执行调用前已登记的回调；回调执行期间新登记的帧留到下一次 Tick。
type FrameQueue struct {
	nextID  FrameID
	pending []queuedFrame
}

type queuedFrame struct {
	id FrameID
	fn func()
}

// NewFrameQueue 创建空的帧队列
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		nextID:  1, // 0 保留为无效 ID
		pending: make([]queuedFrame, 0, 4),
	}
}

// RequestFrame 登记一个在下一次 Tick 执行的回调
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	id := q.nextID
	q.nextID++
	q.pending = append(q.pending, queuedFrame{id: id, fn: fn})
	return id
}

// CancelFrame 取消尚未执行的回调，未知 ID 忽略
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending 返回等待执行的回调数量
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Tick 执行一帧，返回本次执行的回调数量
func (q *FrameQueue) Tick() int {
	if len(q.pending) == 0 {
		return 0
	}

	batch := q.pending
	q.pending = make([]queuedFrame, 0, len(batch))

	for _, f := range batch {
		f.fn()
	}
	return len(batch)
}

package race

import "sync"

// FrameHandle identifies one requested frame callback. The zero handle is
// never issued.
type FrameHandle uint64

// FrameScheduler runs a callback on the next display refresh, the way a
// browser's requestAnimationFrame does.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// FrameLoop is a FrameScheduler drained by the host once per ebiten Update.
// Callbacks requested while draining run on the following drain.
type FrameLoop struct {
	mu      sync.Mutex
	next    FrameHandle
	order   []FrameHandle
	pending map[FrameHandle]func()
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{pending: make(map[FrameHandle]func())}
}

func (l *FrameLoop) RequestFrame(fn func()) FrameHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		l.pending = make(map[FrameHandle]func())
	}
	l.next++
	h := l.next
	l.pending[h] = fn
	l.order = append(l.order, h)
	return h
}

func (l *FrameLoop) CancelFrame(h FrameHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.pending[h]; !ok {
		return
	}
	delete(l.pending, h)
	for i, queued := range l.order {
		if queued == h {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Pending returns how many callbacks are waiting.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// RunPending runs every callback requested before the call, in request
// order, and reports how many ran. A callback cancelled by an earlier one in
// the same drain does not run.
func (l *FrameLoop) RunPending() int {
	l.mu.Lock()
	order := l.order
	l.order = nil
	l.mu.Unlock()

	ran := 0
	for _, h := range order {
		l.mu.Lock()
		fn, ok := l.pending[h]
		delete(l.pending, h)
		l.mu.Unlock()
		if !ok || fn == nil {
			continue
		}
		fn()
		ran++
	}
	return ran
}

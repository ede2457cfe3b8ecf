package rtcrelay

import (
	"context"
	"sync"
	"sync/atomic"
)

// inflight counts forwards in progress and lets callers wait for the count
// to reach zero. The forwarding path only touches atomics unless a waiter is
// registered.
type inflight struct {
	count   atomic.Int64
	waiting atomic.Int32

	mu      sync.Mutex
	waiters []chan struct{}
}

func (f *inflight) begin() {
	f.count.Add(1)
}

func (f *inflight) end() {
	if f.count.Add(-1) == 0 && f.waiting.Load() > 0 {
		f.notify()
	}
}

func (f *inflight) notify() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, waiter := range f.waiters {
		close(waiter)
	}
	f.waiters = nil
	f.waiting.Store(0)
}

func (f *inflight) wait(ctx context.Context) error {
	waiter := make(chan struct{})

	f.mu.Lock()
	f.waiters = append(f.waiters, waiter)
	f.waiting.Store(int32(len(f.waiters)))
	f.mu.Unlock()

	// The waiter is registered before the count is read so an end that
	// reaches zero after this point always sees it.
	if f.count.Load() == 0 {
		f.remove(waiter)
		return nil
	}

	select {
	case <-waiter:
		return nil
	case <-ctx.Done():
		f.remove(waiter)
		return ctx.Err()
	}
}

func (f *inflight) remove(waiter chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.waiters {
		if w == waiter {
			f.waiters = append(f.waiters[:i], f.waiters[i+1:]...)
			break
		}
	}
	f.waiting.Store(int32(len(f.waiters)))
}

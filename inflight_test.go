package rtcrelay

import (
	"context"
	"testing"
	"time"
)

func TestInflightWaitReturnsWhenDrained(t *testing.T) {
	f := &inflight{}
	f.begin()
	f.begin()

	done := make(chan error, 1)
	go func() {
		done <- f.wait(context.Background())
	}()

	f.end()
	select {
	case <-done:
		t.Fatal("wait returned with a forward in flight")
	case <-time.After(10 * time.Millisecond):
	}

	f.end()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("wait did not return")
	}
	if f.waiting.Load() != 0 {
		t.Errorf("expected no waiters, got %d", f.waiting.Load())
	}
}

func TestInflightWaitCanceledRemovesWaiter(t *testing.T) {
	f := &inflight{}
	f.begin()
	defer f.end()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.wait(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(f.waiters) != 0 {
		t.Errorf("expected waiter to be removed, got %d", len(f.waiters))
	}
}

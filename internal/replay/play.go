package replay

import (
	"context"
	"fmt"
	"time"
)

// Dispatcher relays an event by name. *rtcrelay.Relay implements it.
type Dispatcher interface {
	Dispatch(event string, args ...any) error
}

// Play dispatches the script's steps in order, waiting each step's delay
// first. It stops at the first failing step or when ctx is done.
func Play(ctx context.Context, dispatcher Dispatcher, script *Script) error {
	for i, step := range script.Steps {
		if err := wait(ctx, step.Delay); err != nil {
			return err
		}

		args, err := Decode(step.Event, step.Args)
		if err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i+1, err)
		}
		if err := dispatcher.Dispatch(step.Event, args...); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

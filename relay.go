package rtcrelay

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Relay implements the engine's event handler interface and forwards every
// callback to a Sink under the callback's name. Arguments are normalized
// before forwarding: nullable strings become strings, records are copied,
// enumerations become ints and native buffers become BorrowedBytes views.
//
// The relay holds a non-owning reference to its sink. While no sink is
// attached every callback is a silent no-op. Callbacks may arrive on any
// goroutine, concurrently, and the relay adds no ordering between them.
type Relay struct {
	sink         atomic.Pointer[sinkRef]
	observer     atomic.Pointer[observerRef]
	capabilities atomic.Uint32
	inflight     inflight
}

type sinkRef struct {
	sink Sink
}

type observerRef struct {
	observer Observer
}

var _ EventHandler = &Relay{}
var _ FaceDetectionHandler = &Relay{}

// NewRelay creates a relay forwarding to sink. sink may be nil, in which case
// events are dropped until SetSink is called. The relay starts with the
// capabilities of the build target.
func NewRelay(sink Sink) *Relay {
	r := &Relay{}
	r.capabilities.Store(uint32(DefaultCapabilities()))
	r.SetSink(sink)
	return r
}

// SetSink attaches sink, replacing any previous one. Passing nil is the same
// as ClearSink.
func (r *Relay) SetSink(sink Sink) {
	if sink == nil {
		r.sink.Store(nil)
		return
	}
	r.sink.Store(&sinkRef{sink: sink})
}

// ClearSink detaches the sink. Callbacks that start after ClearSink returns
// forward nothing. Callbacks already forwarding may still be running; use
// Detach to wait for them.
func (r *Relay) ClearSink() {
	r.sink.Store(nil)
}

// HasSink reports whether a sink is attached.
func (r *Relay) HasSink() bool {
	return r.sink.Load() != nil
}

// Detach clears the sink and blocks until every forward that may still be
// using it has returned, or until ctx is done. After a nil return the sink's
// owner may release it. Detach must not be called from inside the sink's
// Forward.
func (r *Relay) Detach(ctx context.Context) error {
	r.ClearSink()
	return r.inflight.wait(ctx)
}

// SetCapabilities replaces the enabled platform capabilities.
func (r *Relay) SetCapabilities(capabilities Capability) {
	r.capabilities.Store(uint32(capabilities))
}

// Capabilities returns the enabled platform capabilities.
func (r *Relay) Capabilities() Capability {
	return Capability(r.capabilities.Load())
}

// SetObserver installs an observer notified after each forwarded event.
// Passing nil removes it.
func (r *Relay) SetObserver(observer Observer) {
	if observer == nil {
		r.observer.Store(nil)
		return
	}
	r.observer.Store(&observerRef{observer: observer})
}

// Dispatch relays the named event with args given in their native shapes,
// exactly as the matching EventHandler method would. It is meant for
// table-driven callers such as native shims and scripts. With no sink
// attached it does nothing and returns nil. Errors are reserved for caller
// mistakes: ErrUnknownEvent and ErrInvalidArgument.
func (r *Relay) Dispatch(event string, args ...any) error {
	spec, ok := catalogueIndex[event]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return r.relay(spec, args)
}

// emit relays a typed callback. Every typed callback has a catalogue entry
// whose parameters match the method signature, so a failure here is a bug in
// the relay itself.
func (r *Relay) emit(event string, args ...any) {
	spec, ok := catalogueIndex[event]
	if !ok {
		panic(fmt.Sprintf("rtcrelay: callback %q has no catalogue entry", event))
	}
	if err := r.relay(spec, args); err != nil {
		panic(fmt.Sprintf("rtcrelay: callback %q does not match its catalogue entry: %v", event, err))
	}
}

func (r *Relay) relay(spec *EventSpec, args []any) error {
	r.inflight.begin()
	defer r.inflight.end()

	ref := r.sink.Load()
	if ref == nil {
		return nil
	}
	if spec.Requires != 0 && !r.Capabilities().Has(spec.Requires) {
		return nil
	}
	if spec.Guard != nil && !spec.Guard(args) {
		return nil
	}

	normalized, err := spec.normalize(args)
	if err != nil {
		return err
	}

	observer := r.observer.Load()
	if observer == nil {
		ref.sink.Forward(spec.Name, normalized...)
		return nil
	}

	start := time.Now()
	ref.sink.Forward(spec.Name, normalized...)
	observer.observer.Forwarded(spec.Name, time.Since(start))
	return nil
}

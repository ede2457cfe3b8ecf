package rtcrelay

// Sink receives forwarded events. It is usually a bridge into another
// runtime. Forward is called synchronously on the thread that delivered the
// native callback, possibly from several threads at once. Arguments of kind
// BufferParam are only valid until Forward returns.
type Sink interface {
	Forward(event string, args ...any)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(event string, args ...any)

var _ Sink = SinkFunc(nil)

// Forward calls f(event, args...).
func (f SinkFunc) Forward(event string, args ...any) {
	f(event, args...)
}

// Fanout returns a Sink forwarding every event to each of sinks, in order.
// nil sinks are skipped.
func Fanout(sinks ...Sink) Sink {
	targets := make([]Sink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			targets = append(targets, sink)
		}
	}
	return fanout(targets)
}

type fanout []Sink

func (f fanout) Forward(event string, args ...any) {
	for _, sink := range f {
		sink.Forward(event, args...)
	}
}

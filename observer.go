package rtcrelay

import "time"

// Observer is notified after each event the relay forwarded to its sink.
// Events dropped because no sink is attached are not reported.
type Observer interface {
	Forwarded(event string, elapsed time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event string, elapsed time.Duration)

// Forwarded calls f(event, elapsed).
func (f ObserverFunc) Forwarded(event string, elapsed time.Duration) {
	f(event, elapsed)
}

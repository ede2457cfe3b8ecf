package localsink

import (
	"sync"

	"github.com/RobertWHurst/rtcrelay"
)

// Handler receives a forwarded event. Buffer arguments are only valid until
// the handler returns.
type Handler func(event string, args []any)

// Sink delivers forwarded events to in-process handlers bound by event name
// or by pattern.
type Sink struct {
	mu              sync.RWMutex
	handlers        map[string][]Handler
	patternHandlers []patternHandler
}

type patternHandler struct {
	pattern *rtcrelay.Pattern
	handler Handler
}

var _ rtcrelay.Sink = &Sink{}

func New() *Sink {
	return &Sink{
		handlers:        map[string][]Handler{},
		patternHandlers: []patternHandler{},
	}
}

package rtcrelay

import (
	"time"

	"github.com/google/uuid"
)

// Event is the envelope bridges use to carry a forwarded event across a
// process or runtime boundary.
type Event struct {
	// ID uniquely identifies the event instance.
	ID string

	// Name is the forwarded event name, e.g. "onJoinChannelSuccess".
	Name string

	// Args are the normalized arguments. Events produced by NewEvent hold no
	// borrowed buffers. Events produced by a Codec hold generic values as the
	// wire format decodes them.
	Args []any

	// Time is when the event was captured.
	Time time.Time
}

// NewEvent captures a forwarded event into an envelope. Borrowed buffers are
// copied, so the envelope may outlive the callback.
func NewEvent(name string, args []any) *Event {
	return &Event{
		ID:   uuid.NewString(),
		Name: name,
		Args: OwnedArgs(args),
		Time: time.Now().UTC(),
	}
}

// OwnedArgs returns args with every BorrowedBytes replaced by an owned copy
// of its bytes. Other values are returned as is; the relay already copied
// them.
func OwnedArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	owned := make([]any, len(args))
	for i, arg := range args {
		if borrowed, ok := arg.(BorrowedBytes); ok {
			owned[i] = borrowed.Clone()
			continue
		}
		owned[i] = arg
	}
	return owned
}

// Codec serializes event envelopes for a wire format.
type Codec interface {
	// Name identifies the format, e.g. "json". Bridges derive subprotocol
	// names from it.
	Name() string

	// Binary reports whether the encoding is binary rather than UTF-8 text.
	Binary() bool

	Marshal(event *Event) ([]byte, error)
	Unmarshal(data []byte) (*Event, error)
}

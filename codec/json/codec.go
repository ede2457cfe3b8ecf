package json

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/RobertWHurst/rtcrelay"
)

// Codec encodes event envelopes as JSON text:
//
//	{
//	  "id": "0b7c4d1e-9f2a-4c55-8d1b-3e6f0a9c2b71",
//	  "event": "onJoinChannelSuccess",
//	  "args": ["room1", 42, 100],
//	  "time": "2024-05-01T12:00:00.123456789Z"
//	}
//
// Records encode as objects keyed by their camelCase field names and buffers
// as base64 strings. Decoded args hold the generic values encoding/json
// produces: float64, string, bool, []any and map[string]any.
type Codec struct{}

var _ rtcrelay.Codec = Codec{}

type envelope struct {
	ID    string    `json:"id"`
	Event string    `json:"event"`
	Args  []any     `json:"args"`
	Time  time.Time `json:"time"`
}

func New() rtcrelay.Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "json"
}

func (Codec) Binary() bool {
	return false
}

func (Codec) Marshal(event *rtcrelay.Event) ([]byte, error) {
	args := rtcrelay.OwnedArgs(event.Args)
	if args == nil {
		args = []any{}
	}
	return json.Marshal(envelope{
		ID:    event.ID,
		Event: event.Name,
		Args:  args,
		Time:  event.Time,
	})
}

func (Codec) Unmarshal(data []byte) (*rtcrelay.Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", rtcrelay.ErrMalformedEvent, err)
	}
	if env.Event == "" {
		return nil, fmt.Errorf("%w: missing event name", rtcrelay.ErrMalformedEvent)
	}
	return &rtcrelay.Event{
		ID:   env.ID,
		Name: env.Event,
		Args: env.Args,
		Time: env.Time,
	}, nil
}

package msgpack

import (
	"bytes"
	"fmt"
	"time"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes event envelopes as MessagePack maps with the keys id, event,
// args and time. Records are encoded as maps keyed by their json field names
// so both codecs agree on the shape of an event, time uses the MessagePack
// timestamp extension and buffers are binary strings. Decoded integers are
// int64 or uint64 and decoded records are map[string]any.
type Codec struct{}

var _ rtcrelay.Codec = Codec{}

type envelope struct {
	ID    string    `msgpack:"id"`
	Event string    `msgpack:"event"`
	Args  []any     `msgpack:"args"`
	Time  time.Time `msgpack:"time"`
}

func New() rtcrelay.Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "msgpack"
}

func (Codec) Binary() bool {
	return true
}

func (Codec) Marshal(event *rtcrelay.Event) ([]byte, error) {
	args := rtcrelay.OwnedArgs(event.Args)
	if args == nil {
		args = []any{}
	}

	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	encoder.SetCustomStructTag("json")
	encoder.UseCompactInts(true)
	if err := encoder.Encode(&envelope{
		ID:    event.ID,
		Event: event.Name,
		Args:  args,
		Time:  event.Time,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Codec) Unmarshal(data []byte) (*rtcrelay.Event, error) {
	decoder := msgpack.NewDecoder(bytes.NewReader(data))
	decoder.SetCustomStructTag("json")

	var env envelope
	if err := decoder.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", rtcrelay.ErrMalformedEvent, err)
	}
	if env.Event == "" {
		return nil, fmt.Errorf("%w: missing event name", rtcrelay.ErrMalformedEvent)
	}
	return &rtcrelay.Event{
		ID:   env.ID,
		Name: env.Event,
		Args: widenArgs(env.Args),
		Time: env.Time,
	}, nil
}

// widenArgs converts the sized numbers msgpack decodes into int64, uint64 and
// float64. Binary strings stay []byte.
func widenArgs(args []any) []any {
	for i, arg := range args {
		args[i] = widen(arg)
	}
	return args
}

func widen(value any) any {
	switch v := value.(type) {
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case float32:
		return float64(v)
	case []any:
		return widenArgs(v)
	case map[string]any:
		for key, item := range v {
			v[key] = widen(item)
		}
		return v
	}
	return value
}

package protobuf

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/RobertWHurst/rtcrelay"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Codec encodes event envelopes as a google.protobuf.Struct with the fields
// id, event, args and time, so clients only need the well-known types to
// decode them. Time is an RFC 3339 string with nanoseconds. Args become
// protobuf Values: records are Structs keyed by their json field names,
// numbers are doubles and buffers are base64 strings.
type Codec struct{}

var _ rtcrelay.Codec = Codec{}

func New() rtcrelay.Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "protobuf"
}

func (Codec) Binary() bool {
	return true
}

func (Codec) Marshal(event *rtcrelay.Event) ([]byte, error) {
	args := rtcrelay.OwnedArgs(event.Args)
	values := make([]*structpb.Value, 0, len(args))
	for i, arg := range args {
		value, err := toValue(arg)
		if err != nil {
			return nil, fmt.Errorf("encoding %s argument %d: %w", event.Name, i, err)
		}
		values = append(values, value)
	}

	envelope := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"id":    structpb.NewStringValue(event.ID),
			"event": structpb.NewStringValue(event.Name),
			"args":  structpb.NewListValue(&structpb.ListValue{Values: values}),
			"time":  structpb.NewStringValue(event.Time.Format(time.RFC3339Nano)),
		},
	}
	return proto.Marshal(envelope)
}

func (Codec) Unmarshal(data []byte) (*rtcrelay.Event, error) {
	envelope := &structpb.Struct{}
	if err := proto.Unmarshal(data, envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", rtcrelay.ErrMalformedEvent, err)
	}

	name := envelope.Fields["event"].GetStringValue()
	if name == "" {
		return nil, fmt.Errorf("%w: missing event name", rtcrelay.ErrMalformedEvent)
	}

	event := &rtcrelay.Event{
		ID:   envelope.Fields["id"].GetStringValue(),
		Name: name,
	}
	if timeStr := envelope.Fields["time"].GetStringValue(); timeStr != "" {
		eventTime, err := time.Parse(time.RFC3339Nano, timeStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rtcrelay.ErrMalformedEvent, err)
		}
		event.Time = eventTime
	}
	if list := envelope.Fields["args"].GetListValue(); list != nil {
		event.Args = list.AsSlice()
	}
	return event, nil
}

// toValue converts a forwarded argument to a protobuf Value. Values structpb
// cannot take directly, such as records, UIDs and typed slices, are passed
// through their JSON form first.
func toValue(arg any) (*structpb.Value, error) {
	switch arg.(type) {
	case nil, bool, int, int32, int64, uint, uint32, uint64, float32, float64, string, []byte:
		return structpb.NewValue(arg)
	}

	encoded, err := json.Marshal(arg)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		return nil, err
	}
	return structpb.NewValue(generic)
}

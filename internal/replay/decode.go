package replay

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/RobertWHurst/rtcrelay"
)

// Decode converts script values into the shapes the engine passes to its
// event handler, using the event's parameter list: strings become *string
// with null as a nil pointer, records become pointers decoded from maps by
// their json field names, and buffers become borrowed views of the string's
// bytes.
func Decode(event string, values []any) ([]any, error) {
	spec, ok := rtcrelay.LookupEvent(event)
	if !ok {
		return nil, fmt.Errorf("%w: %q", rtcrelay.ErrUnknownEvent, event)
	}
	if len(values) != len(spec.Params) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", event, len(spec.Params), len(values))
	}

	args := make([]any, len(values))
	for i, param := range spec.Params {
		arg, err := decodeParam(param, values[i])
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", event, param.Name, err)
		}
		args[i] = arg
	}
	return args, nil
}

func decodeParam(param rtcrelay.Param, value any) (any, error) {
	switch param.Kind {
	case rtcrelay.StringParam:
		switch v := value.(type) {
		case nil:
			return (*string)(nil), nil
		case string:
			return &v, nil
		}
		return nil, fmt.Errorf("expected string or null, got %T", value)

	case rtcrelay.UIDParam:
		n, err := integer(value, 0, math.MaxUint32)
		return rtcrelay.UID(n), err

	case rtcrelay.IntParam:
		n, err := integer(value, math.MinInt, math.MaxInt)
		return int(n), err

	case rtcrelay.Uint16Param:
		n, err := integer(value, 0, math.MaxUint16)
		return uint16(n), err

	case rtcrelay.UintParam:
		n, err := integer(value, 0, math.MaxInt64)
		return uint(n), err

	case rtcrelay.BoolParam:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("expected bool, got %T", value)

	case rtcrelay.RecordParam:
		if value == nil {
			return reflect.Zero(reflect.PointerTo(param.Type)).Interface(), nil
		}
		record := reflect.New(param.Type)
		if err := convert(value, record.Interface()); err != nil {
			return nil, err
		}
		return record.Interface(), nil

	case rtcrelay.RecordListParam:
		return decodeList(reflect.SliceOf(param.Type), value)

	case rtcrelay.IntListParam:
		return decodeList(reflect.TypeOf([]int(nil)), value)

	case rtcrelay.BufferParam:
		switch v := value.(type) {
		case nil:
			return rtcrelay.BorrowedBytes{}, nil
		case string:
			return rtcrelay.Borrow([]byte(v)), nil
		case []byte:
			return rtcrelay.Borrow(v), nil
		}
		return nil, fmt.Errorf("expected string buffer, got %T", value)
	}
	return nil, fmt.Errorf("unsupported parameter kind %s", param.Kind)
}

func decodeList(sliceType reflect.Type, value any) (any, error) {
	if value == nil {
		return reflect.Zero(sliceType).Interface(), nil
	}
	if _, ok := value.([]any); !ok {
		return nil, fmt.Errorf("expected list, got %T", value)
	}
	list := reflect.New(sliceType)
	if err := convert(value, list.Interface()); err != nil {
		return nil, err
	}
	return list.Elem().Interface(), nil
}

// convert decodes a generic YAML value into target through its JSON form so
// records are matched by their json field names.
func convert(value any, target any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(encoded, target); err != nil {
		return fmt.Errorf("expected %s: %v", reflect.TypeOf(target).Elem(), err)
	}
	return nil
}

func integer(value any, min int64, max int64) (int64, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d out of range", v)
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		n = int64(v)
	default:
		return 0, fmt.Errorf("expected integer, got %T", value)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("integer %d out of range", n)
	}
	return n, nil
}

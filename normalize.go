package rtcrelay

import (
	"fmt"
	"math"
	"reflect"
)

func (s *EventSpec) normalize(args []any) ([]any, error) {
	if len(args) != len(s.Params) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidArgument, s.Name, len(s.Params), len(args))
	}
	if len(args) == 0 {
		return nil, nil
	}

	normalized := make([]any, len(args))
	for i, param := range s.Params {
		value, err := param.normalize(args[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrInvalidArgument, s.Name, param.Name, err)
		}
		normalized[i] = value
	}
	return normalized, nil
}

func (p Param) normalize(arg any) (any, error) {
	switch p.Kind {
	case StringParam:
		return normalizeString(arg)
	case UIDParam:
		if uid, ok := arg.(UID); ok {
			return uid, nil
		}
		n, err := unsignedArg(arg, math.MaxUint32)
		return UID(n), err
	case IntParam:
		if n, ok := arg.(int); ok {
			return n, nil
		}
		return intArg(arg)
	case Uint16Param:
		if n, ok := arg.(uint16); ok {
			return n, nil
		}
		n, err := unsignedArg(arg, math.MaxUint16)
		return uint16(n), err
	case UintParam:
		if n, ok := arg.(uint); ok {
			return n, nil
		}
		n, err := unsignedArg(arg, math.MaxUint)
		return uint(n), err
	case BoolParam:
		if b, ok := arg.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("expected bool, got %T", arg)
	case RecordParam:
		return copyRecord(p.Type, arg)
	case RecordListParam:
		return copyList(reflect.SliceOf(p.Type), arg)
	case IntListParam:
		return copyList(reflect.TypeOf([]int(nil)), arg)
	case BufferParam:
		switch v := arg.(type) {
		case BorrowedBytes:
			return v, nil
		case []byte:
			return Borrow(v), nil
		case nil:
			return BorrowedBytes{}, nil
		}
		return nil, fmt.Errorf("expected buffer, got %T", arg)
	}
	return nil, fmt.Errorf("unsupported parameter kind %v", p.Kind)
}

func normalizeString(arg any) (string, error) {
	switch v := arg.(type) {
	case nil:
		return "", nil
	case *string:
		if v == nil {
			return "", nil
		}
		return *v, nil
	case string:
		return v, nil
	}
	return "", fmt.Errorf("expected string, got %T", arg)
}

func intArg(arg any) (int, error) {
	if arg == nil {
		return 0, fmt.Errorf("expected integer, got nil")
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("integer %d out of range", n)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		if n > math.MaxInt {
			return 0, fmt.Errorf("integer %d out of range", n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("expected integer, got %T", arg)
}

func unsignedArg(arg any, max uint64) (uint64, error) {
	if arg == nil {
		return 0, fmt.Errorf("expected unsigned integer, got nil")
	}
	v := reflect.ValueOf(arg)
	var n uint64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			return 0, fmt.Errorf("integer %d is negative", v.Int())
		}
		n = uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n = v.Uint()
	default:
		return 0, fmt.Errorf("expected unsigned integer, got %T", arg)
	}
	if n > max {
		return 0, fmt.Errorf("integer %d out of range", n)
	}
	return n, nil
}

// copyRecord returns a value copy of a record given either by value or by
// pointer. A nil pointer yields the zero record.
func copyRecord(recordType reflect.Type, arg any) (any, error) {
	if arg == nil {
		return reflect.Zero(recordType).Interface(), nil
	}
	v := reflect.ValueOf(arg)
	switch v.Type() {
	case recordType:
		return arg, nil
	case reflect.PointerTo(recordType):
		if v.IsNil() {
			return reflect.Zero(recordType).Interface(), nil
		}
		record := reflect.New(recordType).Elem()
		record.Set(v.Elem())
		return record.Interface(), nil
	}
	return nil, fmt.Errorf("expected %s, got %T", recordType, arg)
}

// copyList copies a slice into a newly allocated one of the same type. nil
// stays nil.
func copyList(sliceType reflect.Type, arg any) (any, error) {
	if arg == nil {
		return reflect.Zero(sliceType).Interface(), nil
	}
	v := reflect.ValueOf(arg)
	if v.Type() != sliceType {
		return nil, fmt.Errorf("expected %s, got %T", sliceType, arg)
	}
	if v.IsNil() {
		return arg, nil
	}
	owned := reflect.MakeSlice(sliceType, v.Len(), v.Len())
	reflect.Copy(owned, v)
	return owned.Interface(), nil
}

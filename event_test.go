package rtcrelay_test

import (
	"testing"
	"time"

	"github.com/RobertWHurst/rtcrelay"
)

func TestNewEventOwnsBuffers(t *testing.T) {
	buf := []byte("abc")
	event := rtcrelay.NewEvent(rtcrelay.EventStreamMessage, []any{rtcrelay.UID(1), 2, rtcrelay.Borrow(buf), uint(3)})
	buf[0] = 'x'

	if event.ID == "" {
		t.Error("expected event id")
	}
	if event.Name != "onStreamMessage" {
		t.Errorf("expected onStreamMessage, got %s", event.Name)
	}
	if time.Since(event.Time) > time.Minute || event.Time.Location() != time.UTC {
		t.Errorf("unexpected event time %v", event.Time)
	}
	data, ok := event.Args[2].([]byte)
	if !ok {
		t.Fatalf("expected owned bytes, got %T", event.Args[2])
	}
	if string(data) != "abc" {
		t.Errorf("expected abc, got %s", data)
	}
}

func TestNewEventUniqueIDs(t *testing.T) {
	first := rtcrelay.NewEvent(rtcrelay.EventCameraReady, nil)
	second := rtcrelay.NewEvent(rtcrelay.EventCameraReady, nil)
	if first.ID == second.ID {
		t.Error("expected unique event ids")
	}
	if first.Args != nil {
		t.Errorf("expected nil args, got %v", first.Args)
	}
}

func TestLookupEvent(t *testing.T) {
	spec, ok := rtcrelay.LookupEvent("onAudioVolumeIndication")
	if !ok {
		t.Fatal("expected onAudioVolumeIndication in catalogue")
	}
	if len(spec.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(spec.Params))
	}
	if spec.Params[0].Kind != rtcrelay.RecordListParam || spec.Params[0].Type.Name() != "AudioVolumeInfo" {
		t.Errorf("unexpected speakers param %#v", spec.Params[0])
	}

	face, ok := rtcrelay.LookupEvent(rtcrelay.EventFacePositionChanged)
	if !ok || face.Requires != rtcrelay.CapabilityFaceDetection {
		t.Errorf("expected face event to require face detection")
	}

	if _, ok := rtcrelay.LookupEvent("onNothing"); ok {
		t.Error("expected unknown event lookup to fail")
	}
}

func TestEventNamesSorted(t *testing.T) {
	names := rtcrelay.EventNames()
	if len(names) != len(rtcrelay.Events()) {
		t.Fatalf("expected %d names, got %d", len(rtcrelay.Events()), len(names))
	}
	for i := 1; i < len(names); i += 1 {
		if names[i-1] >= names[i] {
			t.Errorf("names out of order at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}

func TestParamKindString(t *testing.T) {
	if rtcrelay.BufferParam.String() != "buffer" {
		t.Errorf("unexpected kind name %s", rtcrelay.BufferParam)
	}
	if rtcrelay.ParamKind(99).String() != "unknown" {
		t.Errorf("unexpected kind name %s", rtcrelay.ParamKind(99))
	}
}

package rtcrelay

import (
	"reflect"
	"sort"
)

// Event names. Each equals the name of the engine callback it is delivered
// through, and is the name the relay forwards it under.
const (
	EventJoinChannelSuccess                 = "onJoinChannelSuccess"
	EventLeaveChannel                       = "onLeaveChannel"
	EventRejoinChannelSuccess               = "onRejoinChannelSuccess"
	EventUserJoined                         = "onUserJoined"
	EventClientRoleChanged                  = "onClientRoleChanged"
	EventUserOffline                        = "onUserOffline"
	EventUserMuteAudio                      = "onUserMuteAudio"
	EventFirstRemoteVideoDecoded            = "onFirstRemoteVideoDecoded"
	EventUserMuteVideo                      = "onUserMuteVideo"
	EventAudioRouteChanged                  = "onAudioRouteChanged"
	EventConnectionLost                     = "onConnectionLost"
	EventRequestToken                       = "onRequestToken"
	EventAudioVolumeIndication              = "onAudioVolumeIndication"
	EventWarning                            = "onWarning"
	EventError                              = "onError"
	EventRtcStats                           = "onRtcStats"
	EventAudioMixingFinished                = "onAudioMixingFinished"
	EventVideoSizeChanged                   = "onVideoSizeChanged"
	EventConnectionInterrupted              = "onConnectionInterrupted"
	EventMicrophoneEnabled                  = "onMicrophoneEnabled"
	EventFirstRemoteAudioFrame              = "onFirstRemoteAudioFrame"
	EventFirstLocalAudioFrame               = "onFirstLocalAudioFrame"
	EventAPICallExecuted                    = "onApiCallExecuted"
	EventLastmileQuality                    = "onLastmileQuality"
	EventLastmileProbeResult                = "onLastmileProbeResult"
	EventAudioQuality                       = "onAudioQuality"
	EventRemoteVideoTransportStats          = "onRemoteVideoTransportStats"
	EventRemoteAudioTransportStats          = "onRemoteAudioTransportStats"
	EventStreamInjectedStatus               = "onStreamInjectedStatus"
	EventTranscodingUpdated                 = "onTranscodingUpdated"
	EventStreamUnpublished                  = "onStreamUnpublished"
	EventStreamPublished                    = "onStreamPublished"
	EventAudioDeviceVolumeChanged           = "onAudioDeviceVolumeChanged"
	EventActiveSpeaker                      = "onActiveSpeaker"
	EventMediaEngineStartCallSuccess        = "onMediaEngineStartCallSuccess"
	EventMediaEngineLoadSuccess             = "onMediaEngineLoadSuccess"
	EventStreamMessageError                 = "onStreamMessageError"
	EventStreamMessage                      = "onStreamMessage"
	EventConnectionBanned                   = "onConnectionBanned"
	EventVideoStopped                       = "onVideoStopped"
	EventTokenPrivilegeWillExpire           = "onTokenPrivilegeWillExpire"
	EventNetworkQuality                     = "onNetworkQuality"
	EventLocalVideoStats                    = "onLocalVideoStats"
	EventRemoteVideoStats                   = "onRemoteVideoStats"
	EventRemoteAudioStats                   = "onRemoteAudioStats"
	EventFirstLocalVideoFrame               = "onFirstLocalVideoFrame"
	EventFirstRemoteVideoFrame              = "onFirstRemoteVideoFrame"
	EventUserEnableVideo                    = "onUserEnableVideo"
	EventAudioDeviceStateChanged            = "onAudioDeviceStateChanged"
	EventCameraReady                        = "onCameraReady"
	EventCameraFocusAreaChanged             = "onCameraFocusAreaChanged"
	EventCameraExposureAreaChanged          = "onCameraExposureAreaChanged"
	EventRemoteAudioMixingBegin             = "onRemoteAudioMixingBegin"
	EventRemoteAudioMixingEnd               = "onRemoteAudioMixingEnd"
	EventAudioEffectFinished                = "onAudioEffectFinished"
	EventVideoDeviceStateChanged            = "onVideoDeviceStateChanged"
	EventRemoteVideoStateChanged            = "onRemoteVideoStateChanged"
	EventUserEnableLocalVideo               = "onUserEnableLocalVideo"
	EventLocalPublishFallbackToAudioOnly    = "onLocalPublishFallbackToAudioOnly"
	EventRemoteSubscribeFallbackToAudioOnly = "onRemoteSubscribeFallbackToAudioOnly"
	EventConnectionStateChanged             = "onConnectionStateChanged"
	EventAudioMixingStateChanged            = "onAudioMixingStateChanged"
	EventFirstRemoteAudioDecoded            = "onFirstRemoteAudioDecoded"
	EventLocalVideoStateChanged             = "onLocalVideoStateChanged"
	EventRtmpStreamingStateChanged          = "onRtmpStreamingStateChanged"
	EventNetworkTypeChanged                 = "onNetworkTypeChanged"
	EventLocalUserRegistered                = "onLocalUserRegistered"
	EventUserInfoUpdated                    = "onUserInfoUpdated"
	EventLocalAudioStateChanged             = "onLocalAudioStateChanged"
	EventRemoteAudioStateChanged            = "onRemoteAudioStateChanged"
	EventLocalAudioStats                    = "onLocalAudioStats"
	EventChannelMediaRelayStateChanged      = "onChannelMediaRelayStateChanged"
	EventChannelMediaRelayEvent             = "onChannelMediaRelayEvent"

	// EventFacePositionChanged requires CapabilityFaceDetection.
	EventFacePositionChanged = "onFacePositionChanged"
)

// ParamKind selects the normalization rule applied to an event parameter.
type ParamKind int

const (
	// StringParam is a nullable native string. nil becomes "".
	StringParam ParamKind = iota + 1
	// UIDParam is a user id, forwarded as UID.
	UIDParam
	// IntParam is an int or an enumeration code, forwarded as int.
	IntParam
	// Uint16Param is a native unsigned short, forwarded as uint16.
	Uint16Param
	// UintParam is a native unsigned count, forwarded as uint.
	UintParam
	// BoolParam is forwarded as bool.
	BoolParam
	// RecordParam is a record passed by reference. It is copied by value.
	RecordParam
	// RecordListParam is an array of records. It is copied into an owned
	// slice.
	RecordListParam
	// IntListParam is an array of ints. It is copied into an owned slice.
	IntListParam
	// BufferParam is a native buffer. It is forwarded as a BorrowedBytes view
	// without copying.
	BufferParam
)

func (k ParamKind) String() string {
	switch k {
	case StringParam:
		return "string"
	case UIDParam:
		return "uid"
	case IntParam:
		return "int"
	case Uint16Param:
		return "uint16"
	case UintParam:
		return "uint"
	case BoolParam:
		return "bool"
	case RecordParam:
		return "record"
	case RecordListParam:
		return "record list"
	case IntListParam:
		return "int list"
	case BufferParam:
		return "buffer"
	}
	return "unknown"
}

// Param describes a single event parameter.
type Param struct {
	Name string
	Kind ParamKind

	// Type is the record type for RecordParam and RecordListParam.
	Type reflect.Type
}

// EventSpec describes an event of the engine's notification interface: its
// forwarded name, its parameters in order, the capability it needs and an
// optional guard that suppresses it for malformed native input.
type EventSpec struct {
	Name     string
	Params   []Param
	Requires Capability
	Guard    func(args []any) bool
}

var catalogue = []*EventSpec{
	{Name: EventJoinChannelSuccess, Params: []Param{stringParam("channel"), uidParam("uid"), intParam("elapsed")}},
	{Name: EventLeaveChannel, Params: []Param{recordParam[RtcStats]("stats")}},
	{Name: EventRejoinChannelSuccess, Params: []Param{stringParam("channel"), uidParam("uid"), intParam("elapsed")}},
	{Name: EventUserJoined, Params: []Param{uidParam("uid"), intParam("elapsed")}},
	{Name: EventClientRoleChanged, Params: []Param{intParam("oldRole"), intParam("newRole")}},
	{Name: EventUserOffline, Params: []Param{uidParam("uid"), intParam("reason")}},
	{Name: EventUserMuteAudio, Params: []Param{uidParam("uid"), boolParam("muted")}},
	{Name: EventFirstRemoteVideoDecoded, Params: []Param{uidParam("uid"), intParam("width"), intParam("height"), intParam("elapsed")}},
	{Name: EventUserMuteVideo, Params: []Param{uidParam("uid"), boolParam("muted")}},
	{Name: EventAudioRouteChanged, Params: []Param{intParam("routing")}},
	{Name: EventConnectionLost},
	{Name: EventRequestToken},
	{Name: EventAudioVolumeIndication, Params: []Param{recordListParam[AudioVolumeInfo]("speakers"), uintParam("speakerNumber"), intParam("totalVolume")}},
	{Name: EventWarning, Params: []Param{intParam("warn"), stringParam("msg")}},
	{Name: EventError, Params: []Param{intParam("err"), stringParam("msg")}},
	{Name: EventRtcStats, Params: []Param{recordParam[RtcStats]("stats")}},
	{Name: EventAudioMixingFinished},
	{Name: EventVideoSizeChanged, Params: []Param{uidParam("uid"), intParam("width"), intParam("height"), intParam("rotation")}},
	{Name: EventConnectionInterrupted},
	{Name: EventMicrophoneEnabled, Params: []Param{boolParam("enabled")}},
	{Name: EventFirstRemoteAudioFrame, Params: []Param{uidParam("uid"), intParam("elapsed")}},
	{Name: EventFirstLocalAudioFrame, Params: []Param{intParam("elapsed")}},
	{Name: EventAPICallExecuted, Params: []Param{intParam("err"), stringParam("api"), stringParam("result")}},
	{Name: EventLastmileQuality, Params: []Param{intParam("quality")}},
	{Name: EventLastmileProbeResult, Params: []Param{recordParam[LastmileProbeResult]("result")}},
	{Name: EventAudioQuality, Params: []Param{uidParam("uid"), intParam("quality"), uint16Param("delay"), uint16Param("lost")}},
	{Name: EventRemoteVideoTransportStats, Params: []Param{uidParam("uid"), uint16Param("delay"), uint16Param("lost"), uint16Param("rxKBitRate")}},
	{Name: EventRemoteAudioTransportStats, Params: []Param{uidParam("uid"), uint16Param("delay"), uint16Param("lost"), uint16Param("rxKBitRate")}},
	{Name: EventStreamInjectedStatus, Params: []Param{stringParam("url"), uidParam("uid"), intParam("status")}},
	{Name: EventTranscodingUpdated},
	{Name: EventStreamUnpublished, Params: []Param{stringParam("url")}},
	{Name: EventStreamPublished, Params: []Param{stringParam("url"), intParam("error")}},
	{Name: EventAudioDeviceVolumeChanged, Params: []Param{intParam("deviceType"), intParam("volume"), boolParam("muted")}},
	{Name: EventActiveSpeaker, Params: []Param{uidParam("uid")}},
	{Name: EventMediaEngineStartCallSuccess},
	{Name: EventMediaEngineLoadSuccess},
	{Name: EventStreamMessageError, Params: []Param{uidParam("uid"), intParam("streamId"), intParam("code"), intParam("missed"), intParam("cached")}},
	{Name: EventStreamMessage, Params: []Param{uidParam("uid"), intParam("streamId"), bufferParam("data"), uintParam("length")}},
	{Name: EventConnectionBanned},
	{Name: EventVideoStopped},
	{Name: EventTokenPrivilegeWillExpire, Params: []Param{stringParam("token")}},
	{Name: EventNetworkQuality, Params: []Param{uidParam("uid"), intParam("txQuality"), intParam("rxQuality")}},
	{Name: EventLocalVideoStats, Params: []Param{recordParam[LocalVideoStats]("stats")}},
	{Name: EventRemoteVideoStats, Params: []Param{recordParam[RemoteVideoStats]("stats")}},
	{Name: EventRemoteAudioStats, Params: []Param{recordParam[RemoteAudioStats]("stats")}},
	{Name: EventFirstLocalVideoFrame, Params: []Param{intParam("width"), intParam("height"), intParam("elapsed")}},
	{Name: EventFirstRemoteVideoFrame, Params: []Param{uidParam("uid"), intParam("width"), intParam("height"), intParam("elapsed")}},
	{Name: EventUserEnableVideo, Params: []Param{uidParam("uid"), boolParam("enabled")}},
	{Name: EventAudioDeviceStateChanged, Params: []Param{stringParam("deviceId"), intParam("deviceType"), intParam("deviceState")}},
	{Name: EventCameraReady},
	{Name: EventCameraFocusAreaChanged, Params: []Param{intParam("x"), intParam("y"), intParam("width"), intParam("height")}},
	{Name: EventCameraExposureAreaChanged, Params: []Param{intParam("x"), intParam("y"), intParam("width"), intParam("height")}},
	{Name: EventRemoteAudioMixingBegin},
	{Name: EventRemoteAudioMixingEnd},
	{Name: EventAudioEffectFinished, Params: []Param{intParam("soundId")}},
	{Name: EventVideoDeviceStateChanged, Params: []Param{stringParam("deviceId"), intParam("deviceType"), intParam("deviceState")}},
	{Name: EventRemoteVideoStateChanged, Params: []Param{uidParam("uid"), intParam("state"), intParam("reason"), intParam("elapsed")}},
	{Name: EventUserEnableLocalVideo, Params: []Param{uidParam("uid"), boolParam("enabled")}},
	{Name: EventLocalPublishFallbackToAudioOnly, Params: []Param{boolParam("isFallbackOrRecover")}},
	{Name: EventRemoteSubscribeFallbackToAudioOnly, Params: []Param{uidParam("uid"), boolParam("isFallbackOrRecover")}},
	{Name: EventConnectionStateChanged, Params: []Param{intParam("state"), intParam("reason")}},
	{Name: EventAudioMixingStateChanged, Params: []Param{intParam("state"), intParam("errorCode")}},
	{Name: EventFirstRemoteAudioDecoded, Params: []Param{uidParam("uid"), intParam("elapsed")}},
	{Name: EventLocalVideoStateChanged, Params: []Param{intParam("localVideoState"), intParam("error")}},
	{Name: EventRtmpStreamingStateChanged, Params: []Param{stringParam("url"), intParam("state"), intParam("errCode")}},
	{Name: EventNetworkTypeChanged, Params: []Param{intParam("type")}},
	{Name: EventLocalUserRegistered, Params: []Param{uidParam("uid"), stringParam("userAccount")}},
	{Name: EventUserInfoUpdated, Params: []Param{uidParam("uid"), recordParam[UserInfo]("info")}},
	{Name: EventLocalAudioStateChanged, Params: []Param{intParam("state"), intParam("error")}},
	{Name: EventRemoteAudioStateChanged, Params: []Param{uidParam("uid"), intParam("state"), intParam("reason"), intParam("elapsed")}},
	{Name: EventLocalAudioStats, Params: []Param{recordParam[LocalAudioStats]("stats")}},
	{Name: EventChannelMediaRelayStateChanged, Params: []Param{intParam("state"), intParam("code")}},
	{Name: EventChannelMediaRelayEvent, Params: []Param{intParam("code")}},
	{
		Name: EventFacePositionChanged,
		Params: []Param{
			intParam("imageWidth"),
			intParam("imageHeight"),
			recordListParam[Rectangle]("rectangles"),
			intListParam("distances"),
			intParam("numFaces"),
		},
		Requires: CapabilityFaceDetection,
		Guard:    argsPresent(2, 3),
	},
}

var catalogueIndex = indexCatalogue(catalogue)

func indexCatalogue(specs []*EventSpec) map[string]*EventSpec {
	index := make(map[string]*EventSpec, len(specs))
	for _, spec := range specs {
		if _, ok := index[spec.Name]; ok {
			panic("duplicate event in catalogue: " + spec.Name)
		}
		index[spec.Name] = spec
	}
	return index
}

// Events returns the specs of every event the relay knows, in the order the
// engine's interface declares them.
func Events() []*EventSpec {
	specs := make([]*EventSpec, len(catalogue))
	copy(specs, catalogue)
	return specs
}

// EventNames returns the names of every known event, sorted.
func EventNames() []string {
	names := make([]string, 0, len(catalogue))
	for _, spec := range catalogue {
		names = append(names, spec.Name)
	}
	sort.Strings(names)
	return names
}

// LookupEvent returns the EventSpec for the named event.
func LookupEvent(name string) (*EventSpec, bool) {
	spec, ok := catalogueIndex[name]
	return spec, ok
}

func stringParam(name string) Param { return Param{Name: name, Kind: StringParam} }
func uidParam(name string) Param { return Param{Name: name, Kind: UIDParam} }
func intParam(name string) Param { return Param{Name: name, Kind: IntParam} }
func uint16Param(name string) Param { return Param{Name: name, Kind: Uint16Param} }
func uintParam(name string) Param { return Param{Name: name, Kind: UintParam} }
func boolParam(name string) Param { return Param{Name: name, Kind: BoolParam} }
func bufferParam(name string) Param { return Param{Name: name, Kind: BufferParam} }
func intListParam(name string) Param { return Param{Name: name, Kind: IntListParam} }

func recordParam[T any](name string) Param {
	return Param{Name: name, Kind: RecordParam, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

func recordListParam[T any](name string) Param {
	return Param{Name: name, Kind: RecordListParam, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// argsPresent builds a guard that rejects the event when any of the arguments
// at the given positions is a nil pointer, slice or interface.
func argsPresent(positions ...int) func(args []any) bool {
	return func(args []any) bool {
		for _, i := range positions {
			if i >= len(args) || isNilArg(args[i]) {
				return false
			}
		}
		return true
	}
}

func isNilArg(arg any) bool {
	if arg == nil {
		return true
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	}
	return false
}

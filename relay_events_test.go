package rtcrelay_test

import "github.com/RobertWHurst/rtcrelay"

type eventCase struct {
	event string
	call  func(r *rtcrelay.Relay)
	args  []any
}

func stringPtr(s string) *string {
	return &s
}

// eventCases invokes every callback of the engine's event interface with
// representative arguments, paired with what the sink should receive.
var eventCases = []eventCase{
	{
		event: rtcrelay.EventJoinChannelSuccess,
		call:  func(r *rtcrelay.Relay) { r.OnJoinChannelSuccess(stringPtr("channel-value"), rtcrelay.UID(42), 33) },
		args:  []any{"channel-value", rtcrelay.UID(42), 33},
	},
	{
		event: rtcrelay.EventLeaveChannel,
		call:  func(r *rtcrelay.Relay) { r.OnLeaveChannel(&rtcrelay.RtcStats{Duration: 3, TxBytes: 1024}) },
		args:  []any{rtcrelay.RtcStats{Duration: 3, TxBytes: 1024}},
	},
	{
		event: rtcrelay.EventRejoinChannelSuccess,
		call:  func(r *rtcrelay.Relay) { r.OnRejoinChannelSuccess(stringPtr("channel-value"), rtcrelay.UID(42), 33) },
		args:  []any{"channel-value", rtcrelay.UID(42), 33},
	},
	{
		event: rtcrelay.EventUserJoined,
		call:  func(r *rtcrelay.Relay) { r.OnUserJoined(rtcrelay.UID(42), 22) },
		args:  []any{rtcrelay.UID(42), 22},
	},
	{
		event: rtcrelay.EventClientRoleChanged,
		call:  func(r *rtcrelay.Relay) { r.OnClientRoleChanged(rtcrelay.ClientRole(1), rtcrelay.ClientRole(2)) },
		args:  []any{1, 2},
	},
	{
		event: rtcrelay.EventUserOffline,
		call:  func(r *rtcrelay.Relay) { r.OnUserOffline(rtcrelay.UID(42), rtcrelay.UserOfflineReason(2)) },
		args:  []any{rtcrelay.UID(42), 2},
	},
	{
		event: rtcrelay.EventUserMuteAudio,
		call:  func(r *rtcrelay.Relay) { r.OnUserMuteAudio(rtcrelay.UID(42), true) },
		args:  []any{rtcrelay.UID(42), true},
	},
	{
		event: rtcrelay.EventFirstRemoteVideoDecoded,
		call:  func(r *rtcrelay.Relay) { r.OnFirstRemoteVideoDecoded(rtcrelay.UID(42), 22, 33, 44) },
		args:  []any{rtcrelay.UID(42), 22, 33, 44},
	},
	{
		event: rtcrelay.EventUserMuteVideo,
		call:  func(r *rtcrelay.Relay) { r.OnUserMuteVideo(rtcrelay.UID(42), true) },
		args:  []any{rtcrelay.UID(42), true},
	},
	{
		event: rtcrelay.EventAudioRouteChanged,
		call:  func(r *rtcrelay.Relay) { r.OnAudioRouteChanged(rtcrelay.AudioRoute(1)) },
		args:  []any{1},
	},
	{
		event: rtcrelay.EventConnectionLost,
		call:  func(r *rtcrelay.Relay) { r.OnConnectionLost() },
	},
	{
		event: rtcrelay.EventRequestToken,
		call:  func(r *rtcrelay.Relay) { r.OnRequestToken() },
	},
	{
		event: rtcrelay.EventAudioVolumeIndication,
		call:  func(r *rtcrelay.Relay) { r.OnAudioVolumeIndication([]rtcrelay.AudioVolumeInfo{{UID: 7, Volume: 200, VAD: 1}}, uint(14), 33) },
		args:  []any{[]rtcrelay.AudioVolumeInfo{{UID: 7, Volume: 200, VAD: 1}}, uint(14), 33},
	},
	{
		event: rtcrelay.EventWarning,
		call:  func(r *rtcrelay.Relay) { r.OnWarning(11, stringPtr("msg-value")) },
		args:  []any{11, "msg-value"},
	},
	{
		event: rtcrelay.EventError,
		call:  func(r *rtcrelay.Relay) { r.OnError(11, stringPtr("msg-value")) },
		args:  []any{11, "msg-value"},
	},
	{
		event: rtcrelay.EventRtcStats,
		call:  func(r *rtcrelay.Relay) { r.OnRtcStats(&rtcrelay.RtcStats{Duration: 3, TxBytes: 1024}) },
		args:  []any{rtcrelay.RtcStats{Duration: 3, TxBytes: 1024}},
	},
	{
		event: rtcrelay.EventAudioMixingFinished,
		call:  func(r *rtcrelay.Relay) { r.OnAudioMixingFinished() },
	},
	{
		event: rtcrelay.EventVideoSizeChanged,
		call:  func(r *rtcrelay.Relay) { r.OnVideoSizeChanged(rtcrelay.UID(42), 22, 33, 44) },
		args:  []any{rtcrelay.UID(42), 22, 33, 44},
	},
	{
		event: rtcrelay.EventConnectionInterrupted,
		call:  func(r *rtcrelay.Relay) { r.OnConnectionInterrupted() },
	},
	{
		event: rtcrelay.EventMicrophoneEnabled,
		call:  func(r *rtcrelay.Relay) { r.OnMicrophoneEnabled(true) },
		args:  []any{true},
	},
	{
		event: rtcrelay.EventFirstRemoteAudioFrame,
		call:  func(r *rtcrelay.Relay) { r.OnFirstRemoteAudioFrame(rtcrelay.UID(42), 22) },
		args:  []any{rtcrelay.UID(42), 22},
	},
	{
		event: rtcrelay.EventFirstLocalAudioFrame,
		call:  func(r *rtcrelay.Relay) { r.OnFirstLocalAudioFrame(11) },
		args:  []any{11},
	},
	{
		event: rtcrelay.EventAPICallExecuted,
		call:  func(r *rtcrelay.Relay) { r.OnAPICallExecuted(11, stringPtr("api-value"), stringPtr("result-value")) },
		args:  []any{11, "api-value", "result-value"},
	},
	{
		event: rtcrelay.EventLastmileQuality,
		call:  func(r *rtcrelay.Relay) { r.OnLastmileQuality(11) },
		args:  []any{11},
	},
	{
		event: rtcrelay.EventLastmileProbeResult,
		call:  func(r *rtcrelay.Relay) { r.OnLastmileProbeResult(&rtcrelay.LastmileProbeResult{State: 1, Rtt: 35, UplinkReport: rtcrelay.LastmileProbeOneWayResult{Jitter: 4}}) },
		args:  []any{rtcrelay.LastmileProbeResult{State: 1, Rtt: 35, UplinkReport: rtcrelay.LastmileProbeOneWayResult{Jitter: 4}}},
	},
	{
		event: rtcrelay.EventAudioQuality,
		call:  func(r *rtcrelay.Relay) { r.OnAudioQuality(rtcrelay.UID(42), 22, uint16(300), uint16(400)) },
		args:  []any{rtcrelay.UID(42), 22, uint16(300), uint16(400)},
	},
	{
		event: rtcrelay.EventRemoteVideoTransportStats,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteVideoTransportStats(rtcrelay.UID(42), uint16(200), uint16(300), uint16(400)) },
		args:  []any{rtcrelay.UID(42), uint16(200), uint16(300), uint16(400)},
	},
	{
		event: rtcrelay.EventRemoteAudioTransportStats,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteAudioTransportStats(rtcrelay.UID(42), uint16(200), uint16(300), uint16(400)) },
		args:  []any{rtcrelay.UID(42), uint16(200), uint16(300), uint16(400)},
	},
	{
		event: rtcrelay.EventStreamInjectedStatus,
		call:  func(r *rtcrelay.Relay) { r.OnStreamInjectedStatus(stringPtr("url-value"), rtcrelay.UID(42), 33) },
		args:  []any{"url-value", rtcrelay.UID(42), 33},
	},
	{
		event: rtcrelay.EventTranscodingUpdated,
		call:  func(r *rtcrelay.Relay) { r.OnTranscodingUpdated() },
	},
	{
		event: rtcrelay.EventStreamUnpublished,
		call:  func(r *rtcrelay.Relay) { r.OnStreamUnpublished(stringPtr("url-value")) },
		args:  []any{"url-value"},
	},
	{
		event: rtcrelay.EventStreamPublished,
		call:  func(r *rtcrelay.Relay) { r.OnStreamPublished(stringPtr("url-value"), 22) },
		args:  []any{"url-value", 22},
	},
	{
		event: rtcrelay.EventAudioDeviceVolumeChanged,
		call:  func(r *rtcrelay.Relay) { r.OnAudioDeviceVolumeChanged(rtcrelay.MediaDeviceType(1), 22, true) },
		args:  []any{1, 22, true},
	},
	{
		event: rtcrelay.EventActiveSpeaker,
		call:  func(r *rtcrelay.Relay) { r.OnActiveSpeaker(rtcrelay.UID(42)) },
		args:  []any{rtcrelay.UID(42)},
	},
	{
		event: rtcrelay.EventMediaEngineStartCallSuccess,
		call:  func(r *rtcrelay.Relay) { r.OnMediaEngineStartCallSuccess() },
	},
	{
		event: rtcrelay.EventMediaEngineLoadSuccess,
		call:  func(r *rtcrelay.Relay) { r.OnMediaEngineLoadSuccess() },
	},
	{
		event: rtcrelay.EventStreamMessageError,
		call:  func(r *rtcrelay.Relay) { r.OnStreamMessageError(rtcrelay.UID(42), 22, 33, 44, 55) },
		args:  []any{rtcrelay.UID(42), 22, 33, 44, 55},
	},
	{
		event: rtcrelay.EventStreamMessage,
		call:  func(r *rtcrelay.Relay) { r.OnStreamMessage(rtcrelay.UID(42), 22, rtcrelay.Borrow([]byte("payload")), uint(28)) },
		args:  []any{rtcrelay.UID(42), 22, rtcrelay.Borrow([]byte("payload")), uint(28)},
	},
	{
		event: rtcrelay.EventConnectionBanned,
		call:  func(r *rtcrelay.Relay) { r.OnConnectionBanned() },
	},
	{
		event: rtcrelay.EventVideoStopped,
		call:  func(r *rtcrelay.Relay) { r.OnVideoStopped() },
	},
	{
		event: rtcrelay.EventTokenPrivilegeWillExpire,
		call:  func(r *rtcrelay.Relay) { r.OnTokenPrivilegeWillExpire(stringPtr("token-value")) },
		args:  []any{"token-value"},
	},
	{
		event: rtcrelay.EventNetworkQuality,
		call:  func(r *rtcrelay.Relay) { r.OnNetworkQuality(rtcrelay.UID(42), 22, 33) },
		args:  []any{rtcrelay.UID(42), 22, 33},
	},
	{
		event: rtcrelay.EventLocalVideoStats,
		call:  func(r *rtcrelay.Relay) { r.OnLocalVideoStats(&rtcrelay.LocalVideoStats{SentBitrate: 800, SentFrameRate: 30}) },
		args:  []any{rtcrelay.LocalVideoStats{SentBitrate: 800, SentFrameRate: 30}},
	},
	{
		event: rtcrelay.EventRemoteVideoStats,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteVideoStats(&rtcrelay.RemoteVideoStats{UID: 42, Width: 640, Height: 480}) },
		args:  []any{rtcrelay.RemoteVideoStats{UID: 42, Width: 640, Height: 480}},
	},
	{
		event: rtcrelay.EventRemoteAudioStats,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteAudioStats(&rtcrelay.RemoteAudioStats{UID: 42, Quality: 1}) },
		args:  []any{rtcrelay.RemoteAudioStats{UID: 42, Quality: 1}},
	},
	{
		event: rtcrelay.EventFirstLocalVideoFrame,
		call:  func(r *rtcrelay.Relay) { r.OnFirstLocalVideoFrame(11, 22, 33) },
		args:  []any{11, 22, 33},
	},
	{
		event: rtcrelay.EventFirstRemoteVideoFrame,
		call:  func(r *rtcrelay.Relay) { r.OnFirstRemoteVideoFrame(rtcrelay.UID(42), 22, 33, 44) },
		args:  []any{rtcrelay.UID(42), 22, 33, 44},
	},
	{
		event: rtcrelay.EventUserEnableVideo,
		call:  func(r *rtcrelay.Relay) { r.OnUserEnableVideo(rtcrelay.UID(42), true) },
		args:  []any{rtcrelay.UID(42), true},
	},
	{
		event: rtcrelay.EventAudioDeviceStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnAudioDeviceStateChanged(stringPtr("deviceId-value"), 22, 33) },
		args:  []any{"deviceId-value", 22, 33},
	},
	{
		event: rtcrelay.EventCameraReady,
		call:  func(r *rtcrelay.Relay) { r.OnCameraReady() },
	},
	{
		event: rtcrelay.EventCameraFocusAreaChanged,
		call:  func(r *rtcrelay.Relay) { r.OnCameraFocusAreaChanged(11, 22, 33, 44) },
		args:  []any{11, 22, 33, 44},
	},
	{
		event: rtcrelay.EventCameraExposureAreaChanged,
		call:  func(r *rtcrelay.Relay) { r.OnCameraExposureAreaChanged(11, 22, 33, 44) },
		args:  []any{11, 22, 33, 44},
	},
	{
		event: rtcrelay.EventRemoteAudioMixingBegin,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteAudioMixingBegin() },
	},
	{
		event: rtcrelay.EventRemoteAudioMixingEnd,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteAudioMixingEnd() },
	},
	{
		event: rtcrelay.EventAudioEffectFinished,
		call:  func(r *rtcrelay.Relay) { r.OnAudioEffectFinished(11) },
		args:  []any{11},
	},
	{
		event: rtcrelay.EventVideoDeviceStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnVideoDeviceStateChanged(stringPtr("deviceId-value"), 22, 33) },
		args:  []any{"deviceId-value", 22, 33},
	},
	{
		event: rtcrelay.EventRemoteVideoStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteVideoStateChanged(rtcrelay.UID(42), rtcrelay.RemoteVideoState(2), rtcrelay.RemoteVideoStateReason(3), 44) },
		args:  []any{rtcrelay.UID(42), 2, 3, 44},
	},
	{
		event: rtcrelay.EventUserEnableLocalVideo,
		call:  func(r *rtcrelay.Relay) { r.OnUserEnableLocalVideo(rtcrelay.UID(42), true) },
		args:  []any{rtcrelay.UID(42), true},
	},
	{
		event: rtcrelay.EventLocalPublishFallbackToAudioOnly,
		call:  func(r *rtcrelay.Relay) { r.OnLocalPublishFallbackToAudioOnly(true) },
		args:  []any{true},
	},
	{
		event: rtcrelay.EventRemoteSubscribeFallbackToAudioOnly,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteSubscribeFallbackToAudioOnly(rtcrelay.UID(42), true) },
		args:  []any{rtcrelay.UID(42), true},
	},
	{
		event: rtcrelay.EventConnectionStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnConnectionStateChanged(rtcrelay.ConnectionState(1), rtcrelay.ConnectionChangedReason(2)) },
		args:  []any{1, 2},
	},
	{
		event: rtcrelay.EventAudioMixingStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnAudioMixingStateChanged(rtcrelay.AudioMixingState(1), rtcrelay.AudioMixingError(2)) },
		args:  []any{1, 2},
	},
	{
		event: rtcrelay.EventFirstRemoteAudioDecoded,
		call:  func(r *rtcrelay.Relay) { r.OnFirstRemoteAudioDecoded(rtcrelay.UID(42), 22) },
		args:  []any{rtcrelay.UID(42), 22},
	},
	{
		event: rtcrelay.EventLocalVideoStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnLocalVideoStateChanged(rtcrelay.LocalVideoStreamState(1), rtcrelay.LocalVideoStreamError(2)) },
		args:  []any{1, 2},
	},
	{
		event: rtcrelay.EventRtmpStreamingStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnRtmpStreamingStateChanged(stringPtr("url-value"), rtcrelay.RTMPStreamPublishState(2), rtcrelay.RTMPStreamPublishError(3)) },
		args:  []any{"url-value", 2, 3},
	},
	{
		event: rtcrelay.EventNetworkTypeChanged,
		call:  func(r *rtcrelay.Relay) { r.OnNetworkTypeChanged(rtcrelay.NetworkType(1)) },
		args:  []any{1},
	},
	{
		event: rtcrelay.EventLocalUserRegistered,
		call:  func(r *rtcrelay.Relay) { r.OnLocalUserRegistered(rtcrelay.UID(42), stringPtr("userAccount-value")) },
		args:  []any{rtcrelay.UID(42), "userAccount-value"},
	},
	{
		event: rtcrelay.EventUserInfoUpdated,
		call:  func(r *rtcrelay.Relay) { r.OnUserInfoUpdated(rtcrelay.UID(42), &rtcrelay.UserInfo{UID: 42, UserAccount: "alice"}) },
		args:  []any{rtcrelay.UID(42), rtcrelay.UserInfo{UID: 42, UserAccount: "alice"}},
	},
	{
		event: rtcrelay.EventLocalAudioStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnLocalAudioStateChanged(rtcrelay.LocalAudioStreamState(1), rtcrelay.LocalAudioStreamError(2)) },
		args:  []any{1, 2},
	},
	{
		event: rtcrelay.EventRemoteAudioStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnRemoteAudioStateChanged(rtcrelay.UID(42), rtcrelay.RemoteAudioState(2), rtcrelay.RemoteAudioStateReason(3), 44) },
		args:  []any{rtcrelay.UID(42), 2, 3, 44},
	},
	{
		event: rtcrelay.EventLocalAudioStats,
		call:  func(r *rtcrelay.Relay) { r.OnLocalAudioStats(&rtcrelay.LocalAudioStats{NumChannels: 2, SentSampleRate: 48000}) },
		args:  []any{rtcrelay.LocalAudioStats{NumChannels: 2, SentSampleRate: 48000}},
	},
	{
		event: rtcrelay.EventChannelMediaRelayStateChanged,
		call:  func(r *rtcrelay.Relay) { r.OnChannelMediaRelayStateChanged(rtcrelay.ChannelMediaRelayState(1), rtcrelay.ChannelMediaRelayError(2)) },
		args:  []any{1, 2},
	},
	{
		event: rtcrelay.EventChannelMediaRelayEvent,
		call:  func(r *rtcrelay.Relay) { r.OnChannelMediaRelayEvent(rtcrelay.ChannelMediaRelayEvent(1)) },
		args:  []any{1},
	},
	{
		event: rtcrelay.EventFacePositionChanged,
		call:  func(r *rtcrelay.Relay) { r.OnFacePositionChanged(11, 22, []rtcrelay.Rectangle{{X: 10, Y: 20, Width: 64, Height: 64}}, []int{120, 80}, 55) },
		args:  []any{11, 22, []rtcrelay.Rectangle{{X: 10, Y: 20, Width: 64, Height: 64}}, []int{120, 80}, 55},
	},
}

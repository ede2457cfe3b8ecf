package rtcrelay

func (r *Relay) OnJoinChannelSuccess(channel *string, uid UID, elapsed int) {
	r.emit(EventJoinChannelSuccess, channel, uid, elapsed)
}

func (r *Relay) OnLeaveChannel(stats *RtcStats) {
	r.emit(EventLeaveChannel, stats)
}

func (r *Relay) OnRejoinChannelSuccess(channel *string, uid UID, elapsed int) {
	r.emit(EventRejoinChannelSuccess, channel, uid, elapsed)
}

func (r *Relay) OnUserJoined(uid UID, elapsed int) {
	r.emit(EventUserJoined, uid, elapsed)
}

func (r *Relay) OnClientRoleChanged(oldRole ClientRole, newRole ClientRole) {
	r.emit(EventClientRoleChanged, oldRole, newRole)
}

func (r *Relay) OnUserOffline(uid UID, reason UserOfflineReason) {
	r.emit(EventUserOffline, uid, reason)
}

func (r *Relay) OnUserMuteAudio(uid UID, muted bool) {
	r.emit(EventUserMuteAudio, uid, muted)
}

func (r *Relay) OnFirstRemoteVideoDecoded(uid UID, width int, height int, elapsed int) {
	r.emit(EventFirstRemoteVideoDecoded, uid, width, height, elapsed)
}

func (r *Relay) OnUserMuteVideo(uid UID, muted bool) {
	r.emit(EventUserMuteVideo, uid, muted)
}

func (r *Relay) OnAudioRouteChanged(routing AudioRoute) {
	r.emit(EventAudioRouteChanged, routing)
}

func (r *Relay) OnConnectionLost() {
	r.emit(EventConnectionLost)
}

func (r *Relay) OnRequestToken() {
	r.emit(EventRequestToken)
}

func (r *Relay) OnAudioVolumeIndication(speakers []AudioVolumeInfo, speakerNumber uint, totalVolume int) {
	r.emit(EventAudioVolumeIndication, speakers, speakerNumber, totalVolume)
}

func (r *Relay) OnWarning(warn int, msg *string) {
	r.emit(EventWarning, warn, msg)
}

func (r *Relay) OnError(err int, msg *string) {
	r.emit(EventError, err, msg)
}

func (r *Relay) OnRtcStats(stats *RtcStats) {
	r.emit(EventRtcStats, stats)
}

func (r *Relay) OnAudioMixingFinished() {
	r.emit(EventAudioMixingFinished)
}

func (r *Relay) OnVideoSizeChanged(uid UID, width int, height int, rotation int) {
	r.emit(EventVideoSizeChanged, uid, width, height, rotation)
}

func (r *Relay) OnConnectionInterrupted() {
	r.emit(EventConnectionInterrupted)
}

func (r *Relay) OnMicrophoneEnabled(enabled bool) {
	r.emit(EventMicrophoneEnabled, enabled)
}

func (r *Relay) OnFirstRemoteAudioFrame(uid UID, elapsed int) {
	r.emit(EventFirstRemoteAudioFrame, uid, elapsed)
}

func (r *Relay) OnFirstLocalAudioFrame(elapsed int) {
	r.emit(EventFirstLocalAudioFrame, elapsed)
}

func (r *Relay) OnAPICallExecuted(err int, api *string, result *string) {
	r.emit(EventAPICallExecuted, err, api, result)
}

func (r *Relay) OnLastmileQuality(quality int) {
	r.emit(EventLastmileQuality, quality)
}

func (r *Relay) OnLastmileProbeResult(result *LastmileProbeResult) {
	r.emit(EventLastmileProbeResult, result)
}

func (r *Relay) OnAudioQuality(uid UID, quality int, delay uint16, lost uint16) {
	r.emit(EventAudioQuality, uid, quality, delay, lost)
}

func (r *Relay) OnRemoteVideoTransportStats(uid UID, delay uint16, lost uint16, rxKBitRate uint16) {
	r.emit(EventRemoteVideoTransportStats, uid, delay, lost, rxKBitRate)
}

func (r *Relay) OnRemoteAudioTransportStats(uid UID, delay uint16, lost uint16, rxKBitRate uint16) {
	r.emit(EventRemoteAudioTransportStats, uid, delay, lost, rxKBitRate)
}

func (r *Relay) OnStreamInjectedStatus(url *string, uid UID, status int) {
	r.emit(EventStreamInjectedStatus, url, uid, status)
}

func (r *Relay) OnTranscodingUpdated() {
	r.emit(EventTranscodingUpdated)
}

func (r *Relay) OnStreamUnpublished(url *string) {
	r.emit(EventStreamUnpublished, url)
}

func (r *Relay) OnStreamPublished(url *string, errorCode int) {
	r.emit(EventStreamPublished, url, errorCode)
}

func (r *Relay) OnAudioDeviceVolumeChanged(deviceType MediaDeviceType, volume int, muted bool) {
	r.emit(EventAudioDeviceVolumeChanged, deviceType, volume, muted)
}

func (r *Relay) OnActiveSpeaker(uid UID) {
	r.emit(EventActiveSpeaker, uid)
}

func (r *Relay) OnMediaEngineStartCallSuccess() {
	r.emit(EventMediaEngineStartCallSuccess)
}

func (r *Relay) OnMediaEngineLoadSuccess() {
	r.emit(EventMediaEngineLoadSuccess)
}

func (r *Relay) OnStreamMessageError(uid UID, streamID int, code int, missed int, cached int) {
	r.emit(EventStreamMessageError, uid, streamID, code, missed, cached)
}

func (r *Relay) OnStreamMessage(uid UID, streamID int, data BorrowedBytes, length uint) {
	r.emit(EventStreamMessage, uid, streamID, data, length)
}

func (r *Relay) OnConnectionBanned() {
	r.emit(EventConnectionBanned)
}

func (r *Relay) OnVideoStopped() {
	r.emit(EventVideoStopped)
}

func (r *Relay) OnTokenPrivilegeWillExpire(token *string) {
	r.emit(EventTokenPrivilegeWillExpire, token)
}

func (r *Relay) OnNetworkQuality(uid UID, txQuality int, rxQuality int) {
	r.emit(EventNetworkQuality, uid, txQuality, rxQuality)
}

func (r *Relay) OnLocalVideoStats(stats *LocalVideoStats) {
	r.emit(EventLocalVideoStats, stats)
}

func (r *Relay) OnRemoteVideoStats(stats *RemoteVideoStats) {
	r.emit(EventRemoteVideoStats, stats)
}

func (r *Relay) OnRemoteAudioStats(stats *RemoteAudioStats) {
	r.emit(EventRemoteAudioStats, stats)
}

func (r *Relay) OnFirstLocalVideoFrame(width int, height int, elapsed int) {
	r.emit(EventFirstLocalVideoFrame, width, height, elapsed)
}

func (r *Relay) OnFirstRemoteVideoFrame(uid UID, width int, height int, elapsed int) {
	r.emit(EventFirstRemoteVideoFrame, uid, width, height, elapsed)
}

func (r *Relay) OnUserEnableVideo(uid UID, enabled bool) {
	r.emit(EventUserEnableVideo, uid, enabled)
}

func (r *Relay) OnAudioDeviceStateChanged(deviceID *string, deviceType int, deviceState int) {
	r.emit(EventAudioDeviceStateChanged, deviceID, deviceType, deviceState)
}

func (r *Relay) OnCameraReady() {
	r.emit(EventCameraReady)
}

func (r *Relay) OnCameraFocusAreaChanged(x int, y int, width int, height int) {
	r.emit(EventCameraFocusAreaChanged, x, y, width, height)
}

func (r *Relay) OnCameraExposureAreaChanged(x int, y int, width int, height int) {
	r.emit(EventCameraExposureAreaChanged, x, y, width, height)
}

func (r *Relay) OnRemoteAudioMixingBegin() {
	r.emit(EventRemoteAudioMixingBegin)
}

func (r *Relay) OnRemoteAudioMixingEnd() {
	r.emit(EventRemoteAudioMixingEnd)
}

func (r *Relay) OnAudioEffectFinished(soundID int) {
	r.emit(EventAudioEffectFinished, soundID)
}

func (r *Relay) OnVideoDeviceStateChanged(deviceID *string, deviceType int, deviceState int) {
	r.emit(EventVideoDeviceStateChanged, deviceID, deviceType, deviceState)
}

func (r *Relay) OnRemoteVideoStateChanged(uid UID, state RemoteVideoState, reason RemoteVideoStateReason, elapsed int) {
	r.emit(EventRemoteVideoStateChanged, uid, state, reason, elapsed)
}

func (r *Relay) OnUserEnableLocalVideo(uid UID, enabled bool) {
	r.emit(EventUserEnableLocalVideo, uid, enabled)
}

func (r *Relay) OnLocalPublishFallbackToAudioOnly(isFallbackOrRecover bool) {
	r.emit(EventLocalPublishFallbackToAudioOnly, isFallbackOrRecover)
}

func (r *Relay) OnRemoteSubscribeFallbackToAudioOnly(uid UID, isFallbackOrRecover bool) {
	r.emit(EventRemoteSubscribeFallbackToAudioOnly, uid, isFallbackOrRecover)
}

func (r *Relay) OnConnectionStateChanged(state ConnectionState, reason ConnectionChangedReason) {
	r.emit(EventConnectionStateChanged, state, reason)
}

func (r *Relay) OnAudioMixingStateChanged(state AudioMixingState, errorCode AudioMixingError) {
	r.emit(EventAudioMixingStateChanged, state, errorCode)
}

func (r *Relay) OnFirstRemoteAudioDecoded(uid UID, elapsed int) {
	r.emit(EventFirstRemoteAudioDecoded, uid, elapsed)
}

func (r *Relay) OnLocalVideoStateChanged(localVideoState LocalVideoStreamState, errorCode LocalVideoStreamError) {
	r.emit(EventLocalVideoStateChanged, localVideoState, errorCode)
}

func (r *Relay) OnRtmpStreamingStateChanged(url *string, state RTMPStreamPublishState, errCode RTMPStreamPublishError) {
	r.emit(EventRtmpStreamingStateChanged, url, state, errCode)
}

func (r *Relay) OnNetworkTypeChanged(networkType NetworkType) {
	r.emit(EventNetworkTypeChanged, networkType)
}

func (r *Relay) OnLocalUserRegistered(uid UID, userAccount *string) {
	r.emit(EventLocalUserRegistered, uid, userAccount)
}

func (r *Relay) OnUserInfoUpdated(uid UID, info *UserInfo) {
	r.emit(EventUserInfoUpdated, uid, info)
}

func (r *Relay) OnLocalAudioStateChanged(state LocalAudioStreamState, errorCode LocalAudioStreamError) {
	r.emit(EventLocalAudioStateChanged, state, errorCode)
}

func (r *Relay) OnRemoteAudioStateChanged(uid UID, state RemoteAudioState, reason RemoteAudioStateReason, elapsed int) {
	r.emit(EventRemoteAudioStateChanged, uid, state, reason, elapsed)
}

func (r *Relay) OnLocalAudioStats(stats *LocalAudioStats) {
	r.emit(EventLocalAudioStats, stats)
}

func (r *Relay) OnChannelMediaRelayStateChanged(state ChannelMediaRelayState, code ChannelMediaRelayError) {
	r.emit(EventChannelMediaRelayStateChanged, state, code)
}

func (r *Relay) OnChannelMediaRelayEvent(code ChannelMediaRelayEvent) {
	r.emit(EventChannelMediaRelayEvent, code)
}

func (r *Relay) OnFacePositionChanged(imageWidth int, imageHeight int, rectangles []Rectangle, distances []int, numFaces int) {
	r.emit(EventFacePositionChanged, imageWidth, imageHeight, rectangles, distances, numFaces)
}

package rtcrelay

// EventHandler is the engine's event notification interface. The engine
// calls these methods on its own threads. Nullable native strings arrive as
// *string, records by pointer and buffers as BorrowedBytes views valid only
// for the duration of the call.
type EventHandler interface {
	OnJoinChannelSuccess(channel *string, uid UID, elapsed int)
	OnLeaveChannel(stats *RtcStats)
	OnRejoinChannelSuccess(channel *string, uid UID, elapsed int)
	OnUserJoined(uid UID, elapsed int)
	OnClientRoleChanged(oldRole ClientRole, newRole ClientRole)
	OnUserOffline(uid UID, reason UserOfflineReason)
	OnUserMuteAudio(uid UID, muted bool)
	OnFirstRemoteVideoDecoded(uid UID, width int, height int, elapsed int)
	OnUserMuteVideo(uid UID, muted bool)
	OnAudioRouteChanged(routing AudioRoute)
	OnConnectionLost()
	OnRequestToken()
	OnAudioVolumeIndication(speakers []AudioVolumeInfo, speakerNumber uint, totalVolume int)
	OnWarning(warn int, msg *string)
	OnError(err int, msg *string)
	OnRtcStats(stats *RtcStats)
	OnAudioMixingFinished()
	OnVideoSizeChanged(uid UID, width int, height int, rotation int)
	OnConnectionInterrupted()
	OnMicrophoneEnabled(enabled bool)
	OnFirstRemoteAudioFrame(uid UID, elapsed int)
	OnFirstLocalAudioFrame(elapsed int)
	OnAPICallExecuted(err int, api *string, result *string)
	OnLastmileQuality(quality int)
	OnLastmileProbeResult(result *LastmileProbeResult)
	OnAudioQuality(uid UID, quality int, delay uint16, lost uint16)
	OnRemoteVideoTransportStats(uid UID, delay uint16, lost uint16, rxKBitRate uint16)
	OnRemoteAudioTransportStats(uid UID, delay uint16, lost uint16, rxKBitRate uint16)
	OnStreamInjectedStatus(url *string, uid UID, status int)
	OnTranscodingUpdated()
	OnStreamUnpublished(url *string)
	OnStreamPublished(url *string, errorCode int)
	OnAudioDeviceVolumeChanged(deviceType MediaDeviceType, volume int, muted bool)
	OnActiveSpeaker(uid UID)
	OnMediaEngineStartCallSuccess()
	OnMediaEngineLoadSuccess()
	OnStreamMessageError(uid UID, streamID int, code int, missed int, cached int)
	OnStreamMessage(uid UID, streamID int, data BorrowedBytes, length uint)
	OnConnectionBanned()
	OnVideoStopped()
	OnTokenPrivilegeWillExpire(token *string)
	OnNetworkQuality(uid UID, txQuality int, rxQuality int)
	OnLocalVideoStats(stats *LocalVideoStats)
	OnRemoteVideoStats(stats *RemoteVideoStats)
	OnRemoteAudioStats(stats *RemoteAudioStats)
	OnFirstLocalVideoFrame(width int, height int, elapsed int)
	OnFirstRemoteVideoFrame(uid UID, width int, height int, elapsed int)
	OnUserEnableVideo(uid UID, enabled bool)
	OnAudioDeviceStateChanged(deviceID *string, deviceType int, deviceState int)
	OnCameraReady()
	OnCameraFocusAreaChanged(x int, y int, width int, height int)
	OnCameraExposureAreaChanged(x int, y int, width int, height int)
	OnRemoteAudioMixingBegin()
	OnRemoteAudioMixingEnd()
	OnAudioEffectFinished(soundID int)
	OnVideoDeviceStateChanged(deviceID *string, deviceType int, deviceState int)
	OnRemoteVideoStateChanged(uid UID, state RemoteVideoState, reason RemoteVideoStateReason, elapsed int)
	OnUserEnableLocalVideo(uid UID, enabled bool)
	OnLocalPublishFallbackToAudioOnly(isFallbackOrRecover bool)
	OnRemoteSubscribeFallbackToAudioOnly(uid UID, isFallbackOrRecover bool)
	OnConnectionStateChanged(state ConnectionState, reason ConnectionChangedReason)
	OnAudioMixingStateChanged(state AudioMixingState, errorCode AudioMixingError)
	OnFirstRemoteAudioDecoded(uid UID, elapsed int)
	OnLocalVideoStateChanged(localVideoState LocalVideoStreamState, errorCode LocalVideoStreamError)
	OnRtmpStreamingStateChanged(url *string, state RTMPStreamPublishState, errCode RTMPStreamPublishError)
	OnNetworkTypeChanged(networkType NetworkType)
	OnLocalUserRegistered(uid UID, userAccount *string)
	OnUserInfoUpdated(uid UID, info *UserInfo)
	OnLocalAudioStateChanged(state LocalAudioStreamState, errorCode LocalAudioStreamError)
	OnRemoteAudioStateChanged(uid UID, state RemoteAudioState, reason RemoteAudioStateReason, elapsed int)
	OnLocalAudioStats(stats *LocalAudioStats)
	OnChannelMediaRelayStateChanged(state ChannelMediaRelayState, code ChannelMediaRelayError)
	OnChannelMediaRelayEvent(code ChannelMediaRelayEvent)
}

// FaceDetectionHandler holds the callbacks that only exist on targets with
// CapabilityFaceDetection.
type FaceDetectionHandler interface {
	OnFacePositionChanged(imageWidth int, imageHeight int, rectangles []Rectangle, distances []int, numFaces int)
}

package rtcrelay

// UID identifies a user within a channel.
type UID uint32

// ClientRole is the role of the local user in a live broadcast channel.
type ClientRole int

const (
	ClientRoleBroadcaster ClientRole = 1
	ClientRoleAudience    ClientRole = 2
)

// UserOfflineReason explains why a remote user left the channel.
type UserOfflineReason int

const (
	UserOfflineQuit           UserOfflineReason = 0
	UserOfflineDropped        UserOfflineReason = 1
	UserOfflineBecomeAudience UserOfflineReason = 2
)

// AudioRoute is the audio output route reported by the engine.
type AudioRoute int

const (
	AudioRouteDefault      AudioRoute = -1
	AudioRouteHeadset      AudioRoute = 0
	AudioRouteEarpiece     AudioRoute = 1
	AudioRouteHeadsetNoMic AudioRoute = 2
	AudioRouteSpeakerphone AudioRoute = 3
	AudioRouteLoudspeaker  AudioRoute = 4
	AudioRouteHeadsetBT    AudioRoute = 5
)

// MediaDeviceType identifies a local media device class.
type MediaDeviceType int

const (
	UnknownAudioDevice      MediaDeviceType = -1
	AudioPlayoutDevice      MediaDeviceType = 0
	AudioRecordingDevice    MediaDeviceType = 1
	VideoRenderDevice       MediaDeviceType = 2
	VideoCaptureDevice      MediaDeviceType = 3
	AudioApplicationPlayout MediaDeviceType = 4
)

// ConnectionState is the engine's connection state to the channel.
type ConnectionState int

const (
	ConnectionStateDisconnected ConnectionState = 1
	ConnectionStateConnecting   ConnectionState = 2
	ConnectionStateConnected    ConnectionState = 3
	ConnectionStateReconnecting ConnectionState = 4
	ConnectionStateFailed       ConnectionState = 5
)

// ConnectionChangedReason explains a ConnectionState transition.
type ConnectionChangedReason int

const (
	ConnectionChangedConnecting         ConnectionChangedReason = 0
	ConnectionChangedJoinSuccess        ConnectionChangedReason = 1
	ConnectionChangedInterrupted        ConnectionChangedReason = 2
	ConnectionChangedBannedByServer     ConnectionChangedReason = 3
	ConnectionChangedJoinFailed         ConnectionChangedReason = 4
	ConnectionChangedLeaveChannel       ConnectionChangedReason = 5
	ConnectionChangedInvalidAppID       ConnectionChangedReason = 6
	ConnectionChangedInvalidChannelName ConnectionChangedReason = 7
	ConnectionChangedInvalidToken       ConnectionChangedReason = 8
	ConnectionChangedTokenExpired       ConnectionChangedReason = 9
)

// NetworkType is the local network type.
type NetworkType int

const (
	NetworkTypeUnknown      NetworkType = -1
	NetworkTypeDisconnected NetworkType = 0
	NetworkTypeLAN          NetworkType = 1
	NetworkTypeWiFi         NetworkType = 2
	NetworkTypeMobile2G     NetworkType = 3
	NetworkTypeMobile3G     NetworkType = 4
	NetworkTypeMobile4G     NetworkType = 5
)

// The remaining engine enumerations are carried as plain codes. The relay
// forwards every enumeration as an int.
type (
	AudioMixingState         int
	AudioMixingError         int
	RemoteVideoState         int
	RemoteVideoStateReason   int
	RemoteAudioState         int
	RemoteAudioStateReason   int
	LocalVideoStreamState    int
	LocalVideoStreamError    int
	LocalAudioStreamState    int
	LocalAudioStreamError    int
	RTMPStreamPublishState   int
	RTMPStreamPublishError   int
	ChannelMediaRelayState   int
	ChannelMediaRelayError   int
	ChannelMediaRelayEvent   int
	LastmileProbeResultState int
)

// RtcStats are the call statistics reported once every two seconds and when
// leaving a channel.
type RtcStats struct {
	Duration               uint    `json:"duration"`
	TxBytes                uint    `json:"txBytes"`
	RxBytes                uint    `json:"rxBytes"`
	TxAudioBytes           uint    `json:"txAudioBytes"`
	TxVideoBytes           uint    `json:"txVideoBytes"`
	RxAudioBytes           uint    `json:"rxAudioBytes"`
	RxVideoBytes           uint    `json:"rxVideoBytes"`
	TxKBitRate             uint16  `json:"txKBitRate"`
	RxKBitRate             uint16  `json:"rxKBitRate"`
	RxAudioKBitRate        uint16  `json:"rxAudioKBitRate"`
	TxAudioKBitRate        uint16  `json:"txAudioKBitRate"`
	RxVideoKBitRate        uint16  `json:"rxVideoKBitRate"`
	TxVideoKBitRate        uint16  `json:"txVideoKBitRate"`
	LastmileDelay          uint16  `json:"lastmileDelay"`
	TxPacketLossRate       uint16  `json:"txPacketLossRate"`
	RxPacketLossRate       uint16  `json:"rxPacketLossRate"`
	UserCount              uint    `json:"userCount"`
	CPUAppUsage            float64 `json:"cpuAppUsage"`
	CPUTotalUsage          float64 `json:"cpuTotalUsage"`
	GatewayRtt             int     `json:"gatewayRtt"`
	MemoryAppUsageRatio    float64 `json:"memoryAppUsageRatio"`
	MemoryTotalUsageRatio  float64 `json:"memoryTotalUsageRatio"`
	MemoryAppUsageInKbytes int     `json:"memoryAppUsageInKbytes"`
}

// LocalVideoStats describe the local video stream.
type LocalVideoStats struct {
	SentBitrate             int `json:"sentBitrate"`
	SentFrameRate           int `json:"sentFrameRate"`
	EncoderOutputFrameRate  int `json:"encoderOutputFrameRate"`
	RendererOutputFrameRate int `json:"rendererOutputFrameRate"`
	TargetBitrate           int `json:"targetBitrate"`
	TargetFrameRate         int `json:"targetFrameRate"`
	QualityAdaptIndication  int `json:"qualityAdaptIndication"`
	EncodedBitrate          int `json:"encodedBitrate"`
	EncodedFrameWidth       int `json:"encodedFrameWidth"`
	EncodedFrameHeight      int `json:"encodedFrameHeight"`
	EncodedFrameCount       int `json:"encodedFrameCount"`
	CodecType               int `json:"codecType"`
}

// RemoteVideoStats describe the video stream received from one remote user.
type RemoteVideoStats struct {
	UID                     UID `json:"uid"`
	Delay                   int `json:"delay"`
	Width                   int `json:"width"`
	Height                  int `json:"height"`
	ReceivedBitrate         int `json:"receivedBitrate"`
	DecoderOutputFrameRate  int `json:"decoderOutputFrameRate"`
	RendererOutputFrameRate int `json:"rendererOutputFrameRate"`
	PacketLossRate          int `json:"packetLossRate"`
	RxStreamType            int `json:"rxStreamType"`
	TotalFrozenTime         int `json:"totalFrozenTime"`
	FrozenRate              int `json:"frozenRate"`
}

// RemoteAudioStats describe the audio stream received from one remote user.
type RemoteAudioStats struct {
	UID                   UID `json:"uid"`
	Quality               int `json:"quality"`
	NetworkTransportDelay int `json:"networkTransportDelay"`
	JitterBufferDelay     int `json:"jitterBufferDelay"`
	AudioLossRate         int `json:"audioLossRate"`
	NumChannels           int `json:"numChannels"`
	ReceivedSampleRate    int `json:"receivedSampleRate"`
	ReceivedBitrate       int `json:"receivedBitrate"`
	TotalFrozenTime       int `json:"totalFrozenTime"`
	FrozenRate            int `json:"frozenRate"`
}

// LocalAudioStats describe the local audio stream.
type LocalAudioStats struct {
	NumChannels    int `json:"numChannels"`
	SentSampleRate int `json:"sentSampleRate"`
	SentBitrate    int `json:"sentBitrate"`
}

// LastmileProbeOneWayResult is one direction of a last-mile probe.
type LastmileProbeOneWayResult struct {
	PacketLossRate     uint `json:"packetLossRate"`
	Jitter             uint `json:"jitter"`
	AvailableBandwidth uint `json:"availableBandwidth"`
}

// LastmileProbeResult is the outcome of a last-mile network probe.
type LastmileProbeResult struct {
	State          LastmileProbeResultState  `json:"state"`
	UplinkReport   LastmileProbeOneWayResult `json:"uplinkReport"`
	DownlinkReport LastmileProbeOneWayResult `json:"downlinkReport"`
	Rtt            uint                      `json:"rtt"`
}

// UserInfo maps a uid to a registered user account.
type UserInfo struct {
	UID         UID    `json:"uid"`
	UserAccount string `json:"userAccount"`
}

// AudioVolumeInfo is the volume of a single speaker.
type AudioVolumeInfo struct {
	UID       UID    `json:"uid"`
	Volume    uint   `json:"volume"`
	VAD       uint   `json:"vad"`
	ChannelID string `json:"channelId"`
}

// Rectangle is a face bounding box in image coordinates.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

//go:build android || ios

package rtcrelay

const platformCapabilities = CapabilityFaceDetection

package rtcrelay

// Capability is a set of platform features. Events that only exist on some
// targets declare the capability they require, and the relay suppresses them
// unless that capability is enabled.
type Capability uint32

const (
	// CapabilityFaceDetection enables onFacePositionChanged. The engine only
	// delivers it on Android and iOS.
	CapabilityFaceDetection Capability = 1 << iota
)

// Has reports whether every capability in other is present in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// DefaultCapabilities returns the capabilities of the build target.
func DefaultCapabilities() Capability {
	return platformCapabilities
}

//go:build !android && !ios

package rtcrelay

const platformCapabilities Capability = 0

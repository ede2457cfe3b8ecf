// Command rtcrelay-replay drives scripted engine events through a relay and
// out to the configured bridges.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

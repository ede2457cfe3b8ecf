package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/RobertWHurst/rtcrelay"
	jsoncodec "github.com/RobertWHurst/rtcrelay/codec/json"
	websocketsink "github.com/RobertWHurst/rtcrelay/websocket-sink"
)

// Simulates an engine in a call and pushes its events to WebSocket clients
// connected to :8167. Connect with ?events=onNetwork* to see a subset.
func main() {
	hub := websocketsink.NewHub(jsoncodec.New())
	relay := rtcrelay.NewRelay(hub)

	go simulateCall(relay)

	http.Handle("/", hub)
	fmt.Println("Starting server on port 8167")
	err := http.ListenAndServe(":8167", nil)
	if err != nil {
		fmt.Println("Error starting server:", err)
	}
}

func simulateCall(relay *rtcrelay.Relay) {
	channel := "lobby"
	relay.OnJoinChannelSuccess(&channel, 1, 120)

	start := time.Now()
	for tick := 0; ; tick++ {
		time.Sleep(1 * time.Second)

		remote := rtcrelay.UID(2 + rand.Intn(3))
		relay.OnNetworkQuality(remote, 1+rand.Intn(3), 1+rand.Intn(3))
		relay.OnAudioVolumeIndication([]rtcrelay.AudioVolumeInfo{
			{UID: remote, Volume: uint(rand.Intn(255)), VAD: 1},
		}, 1, rand.Intn(255))

		if tick%2 == 1 {
			relay.OnRtcStats(&rtcrelay.RtcStats{
				Duration:  uint(time.Since(start).Seconds()),
				UserCount: 4,
			})
		}
	}
}

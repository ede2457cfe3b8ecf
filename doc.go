// Package rtcrelay forwards the event callbacks of a real-time audio/video
// engine to a single downstream Sink.
//
// A Relay implements the engine's EventHandler interface. Each callback is
// forwarded to the sink as Forward(name, args...) where name is the
// callback's stable name, e.g. "onJoinChannelSuccess", and args are the
// callback's parameters in declaration order after normalization.
//
// # Quick Start
//
// Attach a sink and hand the relay to the engine as its event handler:
//
//	relay := rtcrelay.NewRelay(rtcrelay.SinkFunc(func(event string, args ...any) {
//	    log.Printf("%s %v", event, args)
//	}))
//	engine.SetEventHandler(relay)
//
// When no sink is attached every callback is a silent no-op. Use ClearSink
// to stop forwarding, or Detach to also wait for forwards in progress:
//
//	if err := relay.Detach(ctx); err != nil {
//	    return err
//	}
//
// # Normalization
//
// Arguments are converted into values the sink may keep:
//
//   - nullable strings (*string) become string, with nil mapped to ""
//   - records passed by pointer are copied by value, nil becomes the zero record
//   - record and int arrays are copied into owned slices
//   - enumerations become int, user ids stay UID
//   - native buffers become a BorrowedBytes view that is only valid until
//     Forward returns
//
// # Catalogue
//
// Every event is described by an EventSpec. Events and LookupEvent expose the
// catalogue, and Dispatch relays an event by name, which is how scripts and
// native shims drive the relay without the typed interface.
//
// # Bridges
//
// The localsink, natssink and websocketsink packages provide sinks that
// deliver events to in-process handlers, a NATS subject space and WebSocket
// clients. Bridges encode events with one of the codecs under codec/.
//
// For more examples and documentation, see https://github.com/RobertWHurst/rtcrelay
package rtcrelay

package rtcrelay

import "errors"

var (
	// ErrUnknownEvent is returned by Dispatch for names outside the catalogue.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrInvalidArgument is returned by Dispatch when the arguments do not
	// match the event's parameters.
	ErrInvalidArgument = errors.New("invalid event argument")
)

// ErrMalformedEvent is returned by codecs for payloads that do not hold an
// event envelope.
var ErrMalformedEvent = errors.New("malformed event envelope")

package natssink

import (
	"fmt"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// SubscribeOptions configure a Subscription.
type SubscribeOptions struct {
	// SubjectPrefix must match the publishing Sink's prefix. Defaults to
	// DefaultSubjectPrefix.
	SubjectPrefix string

	// Events restricts delivery to matching event names. Empty delivers
	// every event.
	Events []*rtcrelay.Pattern

	Logger logrus.FieldLogger
}

// Subscription receives events published by a Sink and forwards them into
// a target sink on the receiving side.
type Subscription struct {
	sub    *nats.Subscription
	target rtcrelay.Sink
	codec  rtcrelay.Codec
	events []*rtcrelay.Pattern
	logger logrus.FieldLogger
}

// Subscribe forwards every event published under DefaultSubjectPrefix into
// target. Args arrive as the codec decodes them.
func Subscribe(conn *nats.Conn, codec rtcrelay.Codec, target rtcrelay.Sink) (*Subscription, error) {
	return SubscribeWithOptions(conn, codec, target, SubscribeOptions{})
}

func SubscribeWithOptions(conn *nats.Conn, codec rtcrelay.Codec, target rtcrelay.Sink, options SubscribeOptions) (*Subscription, error) {
	if options.SubjectPrefix == "" {
		options.SubjectPrefix = DefaultSubjectPrefix
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger().WithField("component", "natssink")
	}

	s := &Subscription{
		target: target,
		codec:  codec,
		events: options.Events,
		logger: options.Logger,
	}

	subject := namespace(options.SubjectPrefix, "event", "*")
	sub, err := conn.Subscribe(subject, s.handle)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	s.sub = sub

	return s, nil
}

func (s *Subscription) handle(msg *nats.Msg) {
	event, err := s.codec.Unmarshal(msg.Data)
	if err != nil {
		s.logger.WithError(err).WithField("subject", msg.Subject).Warn("skipping malformed event")
		return
	}
	if !rtcrelay.MatchAny(s.events, event.Name) {
		return
	}
	s.target.Forward(event.Name, event.Args...)
}

// Unsubscribe stops delivery. Messages already being handled may still
// reach the target.
func (s *Subscription) Unsubscribe() error {
	return s.sub.Unsubscribe()
}

package natssink

import (
	"strings"
	"sync/atomic"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// DefaultSubjectPrefix is the subject prefix events are published under.
// An event is published to "<prefix>.event.<name>".
const DefaultSubjectPrefix = "rtcrelay"

// Sink publishes every forwarded event to NATS, encoded with a codec.
type Sink struct {
	NatsConnection *nats.Conn
	codec          rtcrelay.Codec
	subjectPrefix  string
	logger         logrus.FieldLogger
	published      atomic.Uint64
	failed         atomic.Uint64
}

var _ rtcrelay.Sink = &Sink{}

func New(conn *nats.Conn, codec rtcrelay.Codec) *Sink {
	return &Sink{
		NatsConnection: conn,
		codec:          codec,
		subjectPrefix:  DefaultSubjectPrefix,
		logger:         logrus.StandardLogger().WithField("component", "natssink"),
	}
}

// SetSubjectPrefix changes the subject prefix. It must be called before the
// sink is attached to a relay.
func (s *Sink) SetSubjectPrefix(prefix string) {
	s.subjectPrefix = prefix
}

// SetLogger replaces the logger publish failures are reported to. It must be
// called before the sink is attached to a relay.
func (s *Sink) SetLogger(logger logrus.FieldLogger) {
	s.logger = logger
}

// Stats returns how many events were published and how many failed to
// encode or publish.
func (s *Sink) Stats() (published uint64, failed uint64) {
	return s.published.Load(), s.failed.Load()
}

// Subject returns the subject the named event is published to.
func (s *Sink) Subject(event string) string {
	return namespace(s.subjectPrefix, "event", event)
}

func namespace(parts ...string) string {
	return strings.Join(parts, ".")
}

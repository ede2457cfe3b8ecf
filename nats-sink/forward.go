package natssink

import (
	"github.com/RobertWHurst/rtcrelay"
	"github.com/sirupsen/logrus"
)

// Forward encodes the event and publishes it. Failures are logged and
// counted; the caller is a native callback and has no way to handle them.
func (s *Sink) Forward(event string, args ...any) {
	envelope := rtcrelay.NewEvent(event, args)

	messageBytes, err := s.codec.Marshal(envelope)
	if err != nil {
		s.failed.Add(1)
		s.logger.WithError(err).WithField("event", event).Error("failed to encode event")
		return
	}

	subject := s.Subject(event)
	if err := s.NatsConnection.Publish(subject, messageBytes); err != nil {
		s.failed.Add(1)
		s.logger.WithError(err).WithFields(logrus.Fields{
			"event":   event,
			"subject": subject,
		}).Error("failed to publish event")
		return
	}
	s.published.Add(1)
}

package websocketsink

import (
	"github.com/RobertWHurst/rtcrelay"
	"github.com/sirupsen/logrus"
)

// Forward encodes the event once and queues it for every client subscribed
// to it. It does not block. Clients whose queue is full miss the event.
func (h *Hub) Forward(event string, args ...any) {
	h.mu.Lock()
	logger := h.logger
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		if c.wants(event) {
			targets = append(targets, c)
		}
	}
	h.mu.Unlock()

	if len(targets) == 0 {
		return
	}

	message, err := h.codec.Marshal(rtcrelay.NewEvent(event, args))
	if err != nil {
		logger.WithError(err).WithField("event", event).Error("failed to encode event")
		return
	}

	for _, c := range targets {
		if !c.enqueue(message) {
			h.dropped.Add(1)
			logger.WithFields(logrus.Fields{
				"event":  event,
				"client": c.id,
			}).Warn("client queue full, dropping event")
		}
	}
}

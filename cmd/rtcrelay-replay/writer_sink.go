package main

import (
	"encoding/base64"
	"io"
	"sync"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/sirupsen/logrus"
)

// writerSink writes each event as one encoded line. Binary encodings are
// base64 encoded so the output stays line oriented.
type writerSink struct {
	mu     sync.Mutex
	w      io.Writer
	codec  rtcrelay.Codec
	logger logrus.FieldLogger
}

var _ rtcrelay.Sink = &writerSink{}

func newWriterSink(w io.Writer, codec rtcrelay.Codec, logger logrus.FieldLogger) *writerSink {
	return &writerSink{w: w, codec: codec, logger: logger}
}

func (s *writerSink) Forward(event string, args ...any) {
	data, err := s.codec.Marshal(rtcrelay.NewEvent(event, args))
	if err != nil {
		s.logger.WithError(err).WithField("event", event).Error("failed to encode event")
		return
	}
	if s.codec.Binary() {
		data = []byte(base64.StdEncoding.EncodeToString(data))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(append(data, '\n')); err != nil {
		s.logger.WithError(err).Error("failed to write event")
	}
}

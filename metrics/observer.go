package metrics

import (
	"errors"
	"time"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/prometheus/client_golang/prometheus"
)

// Observer records forwarded events as Prometheus metrics. Install it with
// Relay.SetObserver.
type Observer struct {
	forwarded *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ rtcrelay.Observer = &Observer{}

// NewObserver creates the relay metrics and registers them with registerer:
//
//	rtcrelay_events_forwarded_total{event}
//	rtcrelay_forward_duration_seconds{event}
//
// If the metrics are already registered the existing collectors are reused,
// so several relays may share one registry.
func NewObserver(registerer prometheus.Registerer) (*Observer, error) {
	forwarded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rtcrelay",
		Name:      "events_forwarded_total",
		Help:      "Number of engine events forwarded to the sink.",
	}, []string{"event"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rtcrelay",
		Name:      "forward_duration_seconds",
		Help:      "Time the sink spent handling a forwarded event.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"event"})

	var err error
	if forwarded, err = register(registerer, forwarded); err != nil {
		return nil, err
	}
	if duration, err = register(registerer, duration); err != nil {
		return nil, err
	}

	return &Observer{
		forwarded: forwarded,
		duration:  duration,
	}, nil
}

func (o *Observer) Forwarded(event string, elapsed time.Duration) {
	o.forwarded.WithLabelValues(event).Inc()
	o.duration.WithLabelValues(event).Observe(elapsed.Seconds())
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) (C, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}
	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return collector, err
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/RobertWHurst/rtcrelay/internal/replay"
	"github.com/RobertWHurst/rtcrelay/metrics"
	natssink "github.com/RobertWHurst/rtcrelay/nats-sink"
	websocketsink "github.com/RobertWHurst/rtcrelay/websocket-sink"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 5 * time.Second

func newRunCmd(v *viper.Viper) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay a script of engine events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, cfg.LogLevel)
			if err != nil {
				return err
			}

			options := runOptions{
				loop:        v.GetInt("loop"),
				quiet:       v.GetBool("quiet"),
				waitClients: v.GetInt("wait-clients"),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return run(ctx, cmd, cfg, options, args[0], logger)
		},
	}

	runCmd.Flags().Int("loop", 1, "number of times to play the script, 0 plays forever")
	runCmd.Flags().Bool("quiet", false, "do not write events to stdout")
	runCmd.Flags().Int("wait-clients", 0, "wait for this many WebSocket clients before playing")

	return runCmd
}

type runOptions struct {
	loop        int
	quiet       bool
	waitClients int
}

func run(ctx context.Context, cmd *cobra.Command, cfg *config, options runOptions, scriptPath string, logger *logrus.Logger) error {
	script, err := replay.Load(scriptPath)
	if err != nil {
		return err
	}

	var sinks []rtcrelay.Sink
	if !options.quiet {
		sinks = append(sinks, newWriterSink(cmd.OutOrStdout(), cfg.Codec, logger))
	}

	if cfg.NatsURL != "" {
		conn, err := nats.Connect(cfg.NatsURL, nats.Name("rtcrelay-replay"))
		if err != nil {
			return err
		}
		defer func() {
			if err := conn.Drain(); err != nil {
				logger.WithError(err).Warn("failed to drain NATS connection")
			}
		}()

		sink := natssink.New(conn, cfg.Codec)
		sink.SetSubjectPrefix(cfg.SubjectPrefix)
		sink.SetLogger(logger.WithField("component", "natssink"))
		sinks = append(sinks, sink)
		logger.WithField("url", cfg.NatsURL).Info("publishing events to NATS")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	observer, err := metrics.NewObserver(registry)
	if err != nil {
		return err
	}

	var hub *websocketsink.Hub
	if cfg.Listen != "" {
		hub = websocketsink.NewHub(cfg.Codec)
		hub.SetOrigins(cfg.Origins)
		hub.SetLogger(logger.WithField("component", "websocketsink"))
		sinks = append(sinks, hub)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		mux.Handle("/", hub)
		server := &http.Server{Addr: cfg.Listen, Handler: mux}

		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Error("server stopped")
			}
		}()
		defer func() {
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
		logger.WithField("address", cfg.Listen).Info("serving WebSocket clients and /metrics")

		if err := waitForClients(ctx, hub, options.waitClients); err != nil {
			return err
		}
	}

	relay := rtcrelay.NewRelay(rtcrelay.Fanout(sinks...))
	relay.SetObserver(observer)

	logger.WithFields(logrus.Fields{
		"script": script.String(),
		"steps":  len(script.Steps),
	}).Info("playing script")

	var playErr error
	for i := 0; options.loop <= 0 || i < options.loop; i += 1 {
		if playErr = replay.Play(ctx, relay, script); playErr != nil {
			break
		}
	}

	detachCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := relay.Detach(detachCtx); err != nil {
		logger.WithError(err).Warn("timed out waiting for forwards to finish")
	}

	if errors.Is(playErr, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return playErr
}

func waitForClients(ctx context.Context, hub *websocketsink.Hub, count int) error {
	if count <= 0 {
		return nil
	}
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for hub.ClientCount() < count {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

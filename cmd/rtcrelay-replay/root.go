package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree. Each call gets its own viper instance
// so commands can be constructed repeatedly in tests.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "rtcrelay-replay",
		Short: "Replay scripted RTC engine events through the event relay",
		Long: `rtcrelay-replay feeds a YAML script of engine callbacks into an event relay
and forwards every event to stdout, a NATS subject space and WebSocket clients.

Settings are read from flags, RTCRELAY_* environment variables, an optional
.env file and an optional config file, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("env-file", ".env", "dotenv file to load if present")
	flags.String("codec", "json", "wire codec for bridges: json, msgpack or protobuf")
	flags.String("nats-url", "", "publish events to this NATS server")
	flags.String("subject-prefix", "rtcrelay", "NATS subject prefix")
	flags.String("listen", "", "serve WebSocket clients and /metrics on this address, e.g. :8080")
	flags.StringSlice("origins", nil, "allowed WebSocket origin patterns")
	flags.String("log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newRunCmd(v))
	rootCmd.AddCommand(newEventsCmd())

	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return err
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix("RTCRELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	return nil
}

func newLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(parsedLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}

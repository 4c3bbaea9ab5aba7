package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/bitvec/life"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "BITVEC"

// loadConfig layers an optional config file, BITVEC_* environment variables
// and command-line flags, flags taking precedence.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*life.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "", "text":
		return life.NewTextLogger(w, lvl), nil
	case "json":
		return life.NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}

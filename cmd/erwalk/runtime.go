package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hantao-zhou/random-walk/internal/config"
	"github.com/hantao-zhou/random-walk/internal/logging"
)

// loadConfig resolves the layered configuration for cmd: defaults, the
// --config file, ERWALK_* variables, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("strength") {
		cfg.Walk.Strength, _ = flags.GetFloat64("strength")
	}
	if flags.Changed("delay") {
		cfg.Walk.Delay, _ = flags.GetInt("delay")
	}
	if flags.Changed("memory") {
		cfg.Walk.Memory, _ = flags.GetInt("memory")
	}
	return cfg, nil
}

// newRunLogger returns a stderr logger tagged with a fresh run id.
func newRunLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()).With(
		"run_id", uuid.NewString(),
		"cmd", cmd.Name(),
	)
}

// seedAttr renders the seed for logs; 0 means the run is not reproducible.
func seedAttr(seed int64) slog.Attr {
	if seed == 0 {
		return slog.String("seed", "fresh")
	}
	return slog.String("seed", fmt.Sprint(seed))
}

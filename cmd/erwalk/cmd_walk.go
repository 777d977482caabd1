package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hantao-zhou/random-walk/internal/config"
	"github.com/hantao-zhou/random-walk/walk"
)

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Generate one walk trajectory as JSON",
		Long: `Generate a single trajectory starting at the origin.

Examples:
  erwalk walk --kind simple --steps 500
  erwalk walk --steps 2000 --strength 1.5 --delay 10 --memory 50 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("kind") {
				cfg.Walk.Kind, _ = cmd.Flags().GetString("kind")
			}
			if cmd.Flags().Changed("steps") {
				cfg.Walk.Steps, _ = cmd.Flags().GetInt("steps")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := newRunLogger(cmd, cfg)

			var opts []walk.Option
			if cfg.Seed != 0 {
				opts = append(opts, walk.WithSeed(cfg.Seed))
			}

			start := time.Now()
			var tr walk.Trajectory
			switch cfg.Walk.Kind {
			case config.KindSimple:
				tr = walk.Simple(cfg.Walk.Steps, opts...)
			default:
				tr = walk.Reinforced(cfg.Walk.Steps, cfg.Walk.Params, opts...)
			}
			log.Info("walk generated",
				"kind", cfg.Walk.Kind,
				"steps", cfg.Walk.Steps,
				"params", cfg.Walk.Params.String(),
				seedAttr(cfg.Seed),
				"elapsed", time.Since(start),
			)

			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(tr); err != nil {
				return fmt.Errorf("writing trajectory: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("kind", config.KindReinforced, "Walk kind: simple or reinforced")
	cmd.Flags().Int("steps", 0, "Number of steps (>= 0)")
	return cmd
}

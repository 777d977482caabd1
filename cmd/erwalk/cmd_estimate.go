package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hantao-zhou/random-walk/internal/config"
	"github.com/hantao-zhou/random-walk/montecarlo"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the mean first-return time to the origin",
		Long: `Run independent trials and average the step of first return to the
origin. Trials that never return contribute the full step budget.

Examples:
  erwalk estimate --kind simple --trials 10000 --budget 1000
  erwalk estimate --trials 5000 --budget 500 --strength 2 --memory 10 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("kind") {
				cfg.Walk.Kind, _ = flags.GetString("kind")
			}
			if flags.Changed("trials") {
				cfg.Estimate.Trials, _ = flags.GetInt("trials")
			}
			if flags.Changed("budget") {
				cfg.Estimate.Steps, _ = flags.GetInt("budget")
			}
			if err := cfg.ValidateEstimate(); err != nil {
				return err
			}
			log := newRunLogger(cmd, cfg)

			var opts []montecarlo.Option
			if cfg.Seed != 0 {
				opts = append(opts, montecarlo.WithSeed(cfg.Seed))
			}

			start := time.Now()
			var sum montecarlo.Summary
			switch cfg.Walk.Kind {
			case config.KindSimple:
				sum = montecarlo.SimpleSummary(cfg.Estimate.Trials, cfg.Estimate.Steps, opts...)
			default:
				sum = montecarlo.ReinforcedSummary(cfg.Estimate.Trials, cfg.Estimate.Steps, cfg.Walk.Params, opts...)
			}
			log.Info("estimate finished",
				"kind", cfg.Walk.Kind,
				"params", cfg.Walk.Params.String(),
				"summary", sum.String(),
				seedAttr(cfg.Seed),
				"elapsed", time.Since(start),
			)

			out := cmd.OutOrStdout()
			if jsonOut, _ := flags.GetBool("json"); jsonOut {
				if err := json.NewEncoder(out).Encode(sum); err != nil {
					return fmt.Errorf("writing summary: %w", err)
				}
				return nil
			}
			fmt.Fprintf(out, "%.6f\n", sum.Mean)
			return nil
		},
	}

	cmd.Flags().String("kind", config.KindReinforced, "Walk kind: simple or reinforced")
	cmd.Flags().Int("trials", 0, "Number of independent trials (> 0)")
	cmd.Flags().Int("budget", 0, "Maximum steps per trial (> 0)")
	cmd.Flags().Bool("json", false, "Print the full summary as JSON")
	return cmd
}

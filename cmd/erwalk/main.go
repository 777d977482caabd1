// Command erwalk generates lattice random walks and estimates their mean
// first-return time from the command line. It is a thin front end over the
// walk and montecarlo packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "erwalk",
		Short: "Edge-reinforced random walks on the square lattice",
		Long: `erwalk simulates simple and edge-reinforced random walks on Z².

Trajectories are printed as JSON {"x": [...], "y": [...]} for plotting;
return-time estimates are Monte Carlo means censored at the step budget.

Settings come from defaults, then --config (YAML), then ERWALK_* environment
variables, then command-line flags.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (0 = fresh entropy)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace")
	rootCmd.PersistentFlags().Float64("strength", 0, "Reinforcement strength (>= 0)")
	rootCmd.PersistentFlags().Int("delay", 0, "Steps before reinforcement activates (>= 0)")
	rootCmd.PersistentFlags().Int("memory", 0, "Remembered traversals (0 = unbounded)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newWalkCmd(),
		newEstimateCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the erwalk version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "erwalk %s\n", version)
		},
	}
}

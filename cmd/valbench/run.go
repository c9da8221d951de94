package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-valarray/internal/bench"
	"github.com/ajroetker/go-valarray/internal/config"
)

func newRunCmd() *cobra.Command {
	defaults := config.LoadDefaults()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark",
		Long: `Run times every selected implementation on every selected scenario and
size. Settings come from built-in defaults, then the --config file, then
VALBENCH_* environment variables, then flags.`,
		RunE: runBench,
	}
	cmd.Flags().String("config", "", "YAML configuration file")
	cmd.Flags().IntSlice("sizes", defaults.Sizes, "Array sizes")
	cmd.Flags().Int("trials", defaults.Trials, "Timed repetitions per size and implementation")
	cmd.Flags().StringSlice("impl", defaults.Impls, "Implementations: naive, loop, lanes/<backend>, expr/<backend>")
	cmd.Flags().StringSlice("scenario", defaults.Scenarios, "Scenarios: dot, length")
	cmd.Flags().String("format", defaults.Format, "Report format: table, yaml, json")
	cmd.Flags().Bool("verify", defaults.Verify, "Check results against a float64 reference")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	return cmd
}

// loadConfig layers the config file, environment variables and explicitly
// set flags over the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg := config.LoadDefaults()
	if path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	config.ApplyEnvVars(cfg)

	if flags.Changed("sizes") {
		cfg.Sizes, _ = flags.GetIntSlice("sizes")
	}
	if flags.Changed("trials") {
		cfg.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("impl") {
		cfg.Impls, _ = flags.GetStringSlice("impl")
	}
	if flags.Changed("scenario") {
		cfg.Scenarios, _ = flags.GetStringSlice("scenario")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("verify") {
		cfg.Verify, _ = flags.GetBool("verify")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := setupLogging(cmd.ErrOrStderr(), verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, err := runner.Run(ctx)
	if err != nil {
		if ctx.Err() == context.Canceled {
			return fmt.Errorf("benchmark interrupted: %w", err)
		}
		return fmt.Errorf("benchmark failed: %w", err)
	}
	return writeReport(cmd.OutOrStdout(), report, cfg.Format)
}

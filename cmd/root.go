package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/intelligrit/travel-optimizer/internal/config"
	"github.com/intelligrit/travel-optimizer/internal/planner"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:          "travel-optimizer",
	Short:        "Collect trip preferences and render plans from the planning service",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("config loaded", "path", configPath, "planner", cfg.Planner.BaseURL)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func Execute() error {
	return rootCmd.Execute()
}

// newPlanner builds the planning service client from config.
func newPlanner() *planner.Client {
	return planner.New(cfg.Planner.BaseURL,
		planner.WithTimeout(time.Duration(cfg.Planner.TimeoutSeconds)*time.Second),
		planner.WithRateLimit(cfg.Planner.RateLimit),
		planner.WithLogger(logger),
	)
}

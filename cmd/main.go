package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"imdb-top100/internal/app"
	"imdb-top100/internal/browser"
	"imdb-top100/internal/config"
	"imdb-top100/internal/scraper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
	)

	cmd := &cobra.Command{
		Use:          "imdb-top100",
		Short:        "Scrape the IMDb Top 100 chart into a spreadsheet and a JSON file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			zc := zap.NewProductionConfig()
			if verbose || cfg.Debug {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			open := func(ctx context.Context, cfg *config.Config) (app.Session, error) {
				bctx, cancel, err := browser.NewChrome(ctx, cfg, logger)
				if err != nil {
					return nil, err
				}
				return scraper.New(bctx, cancel, cfg, logger), nil
			}

			if err := app.Run(cmd.Context(), cfg, open, cmd.OutOrStdout(), logger); err != nil {
				logger.Error("Scraping failed", zap.Error(err))
				return err
			}
			logger.Info("Scraping completed successfully")
			return nil
		},
	}

	cfg.BindFlags(cmd.Flags())
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

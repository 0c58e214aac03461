// Package app sequences a single scrape run.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"imdb-top100/internal/config"
	"imdb-top100/internal/movie"
	"imdb-top100/internal/output"
	"imdb-top100/internal/report"
)

// Session is an open browser the run navigates and reads from.
type Session interface {
	Navigate(url string) error
	Movies(limit int) ([]movie.Record, error)
	Close()
}

// Opener starts a Session.
type Opener func(ctx context.Context, cfg *config.Config) (Session, error)

// Run opens a session, extracts movies from cfg.URL and persists them. The
// session is closed on every path once it has been opened. An empty
// extraction writes nothing and is not an error.
func Run(ctx context.Context, cfg *config.Config, open Opener, out io.Writer, logger *zap.Logger) error {
	logger.Info("Initializing browser...")
	session, err := open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	defer session.Close()

	if err := session.Navigate(cfg.URL); err != nil {
		return err
	}

	movies, err := session.Movies(cfg.Limit)
	if err != nil {
		return fmt.Errorf("extract movies: %w", err)
	}
	if len(movies) == 0 {
		report.NoMovies(out)
		return nil
	}

	if err := output.WriteExcel(movies, cfg.ExcelFile); err != nil {
		return err
	}
	logger.Info("Wrote spreadsheet", zap.String("file", cfg.ExcelFile), zap.Int("rows", len(movies)))

	if err := output.WriteJSON(movies, cfg.JSONFile); err != nil {
		return err
	}
	logger.Info("Wrote JSON", zap.String("file", cfg.JSONFile), zap.Int("movies", len(movies)))

	report.Print(out, movies)
	report.Saved(out, cfg.ExcelFile, cfg.JSONFile)
	return nil
}

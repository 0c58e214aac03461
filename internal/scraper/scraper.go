package scraper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"imdb-top100/internal/config"
	"imdb-top100/internal/extract"
	"imdb-top100/internal/movie"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const navigationTimeout = 30 * time.Second

// Scraper drives one browser session over the chart page.
type Scraper struct {
	ctx           context.Context
	cancel        context.CancelFunc
	closeOnce     sync.Once
	actionTimeout time.Duration
	logger        *zap.Logger
}

// New wraps a browser context. cancel is released by Close.
func New(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, logger *zap.Logger) *Scraper {
	return &Scraper{
		ctx:           ctx,
		cancel:        cancel,
		actionTimeout: cfg.ActionTimeout,
		logger:        logger,
	}
}

// runWithTimeout runs an action with a specific timeout
func (s *Scraper) runWithTimeout(timeout time.Duration, actions ...chromedp.Action) error {
	select {
	case <-s.ctx.Done():
		return fmt.Errorf("parent context canceled: %w", s.ctx.Err())
	default:
		timeoutCtx, cancel := context.WithTimeout(s.ctx, timeout)
		defer cancel()

		err := chromedp.Run(timeoutCtx, actions...)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return fmt.Errorf("action context canceled during execution")
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("action timed out after %v", timeout)
			}
			return err
		}
		return nil
	}
}

// Navigate loads url and waits for the body. The response status is not
// inspected; a bad page shows up as an empty extraction.
func (s *Scraper) Navigate(url string) error {
	s.logger.Info("Starting navigation", zap.String("url", url))

	if err := s.runWithTimeout(navigationTimeout,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	s.logger.Info("Navigation complete")
	return nil
}

// Movies captures the rendered document and extracts up to limit records.
func (s *Scraper) Movies(limit int) ([]movie.Record, error) {
	var html string
	if err := s.runWithTimeout(s.actionTimeout,
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("capture page: %w", err)
	}
	s.logger.Debug("Captured page", zap.Int("bytes", len(html)))

	movies, err := extract.Parse([]byte(html), limit, s.logger)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Extracted movies", zap.Int("count", len(movies)))
	return movies, nil
}

// Close tears the browser down. Further calls do nothing.
func (s *Scraper) Close() {
	s.closeOnce.Do(func() {
		s.logger.Info("Cleaning up browser")
		if s.cancel != nil {
			s.cancel()
		}
	})
}

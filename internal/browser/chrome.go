package browser

import (
	"context"
	"fmt"

	"imdb-top100/internal/config"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// AllocatorOptions returns the exec allocator options for cfg. The window
// always opens maximized.
func AllocatorOptions(cfg *config.Config) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,

		// Disable updates and popups
		chromedp.Flag("disable-popup-blocking", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-component-update", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-default-apps", true),

		// Basic settings
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", cfg.Headless),
		chromedp.Flag("window-size", "1920,1080"),
		chromedp.Flag("start-maximized", true),

		// Stability flags
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("no-sandbox", true),
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	return opts
}

// NewChrome launches a browser and returns its context together with a
// single cancel that tears down every layer.
func NewChrome(ctx context.Context, cfg *config.Config, logger *zap.Logger) (context.Context, context.CancelFunc, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, AllocatorOptions(cfg)...)

	chromeLog := logger.Named("chrome").Sugar()
	ctxOpts := []chromedp.ContextOption{
		chromedp.WithLogf(chromeLog.Infof),
		chromedp.WithErrorf(chromeLog.Errorf),
	}
	if cfg.Debug {
		ctxOpts = append(ctxOpts, chromedp.WithDebugf(chromeLog.Debugf))
	}
	browserCtx, browserCancel := chromedp.NewContext(allocCtx, ctxOpts...)

	timeoutCtx, timeoutCancel := context.WithTimeout(browserCtx, cfg.GlobalTimeout)

	cancelFunc := func() {
		logger.Debug("Canceling browser contexts")
		timeoutCancel()
		browserCancel()
		allocCancel()
	}

	// The first Run starts the browser process.
	if err := chromedp.Run(timeoutCtx); err != nil {
		cancelFunc()
		return nil, nil, fmt.Errorf("start browser: %w", err)
	}
	logger.Info("Browser started", zap.Bool("headless", cfg.Headless))

	return timeoutCtx, cancelFunc, nil
}

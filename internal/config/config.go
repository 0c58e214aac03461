package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultURL       = "https://www.imdb.com/chart/top/"
	DefaultExcelFile = "IMDb_Top_100.xlsx"
	DefaultJSONFile  = "IMDb_Top_100.json"
	DefaultLimit     = 100
)

type Config struct {
	URL           string
	ExcelFile     string
	JSONFile      string
	Limit         int // Maximum number of movies kept
	Headless      bool
	Debug         bool
	UserAgent     string
	GlobalTimeout time.Duration // Overall timeout
	ActionTimeout time.Duration // Timeout for individual actions
}

func Default() *Config {
	return &Config{
		URL:           DefaultURL,
		ExcelFile:     DefaultExcelFile,
		JSONFile:      DefaultJSONFile,
		Limit:         DefaultLimit,
		GlobalTimeout: 30 * time.Minute,
		ActionTimeout: 1 * time.Minute,
	}
}

// Load returns the defaults overridden by an optional .env file and the
// process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.URL = getEnv("IMDB_URL", cfg.URL)
	cfg.ExcelFile = getEnv("IMDB_EXCEL_FILE", cfg.ExcelFile)
	cfg.JSONFile = getEnv("IMDB_JSON_FILE", cfg.JSONFile)

	if v, ok := os.LookupEnv("IMDB_HEADLESS"); ok {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("IMDB_HEADLESS: %w", err)
		}
		cfg.Headless = headless
	}

	return cfg, nil
}

// BindFlags registers flags whose defaults are the current field values.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.URL, "url", c.URL, "Chart URL to scrape")
	fs.StringVar(&c.ExcelFile, "excel", c.ExcelFile, "Spreadsheet output file")
	fs.StringVar(&c.JSONFile, "json", c.JSONFile, "JSON output file")
	fs.IntVar(&c.Limit, "limit", c.Limit, "Maximum number of movies to extract")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "Run in headless mode")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug mode")
	fs.StringVar(&c.UserAgent, "user-agent", c.UserAgent, "Override the browser user agent")
	fs.DurationVar(&c.GlobalTimeout, "timeout", c.GlobalTimeout, "Global timeout")
	fs.DurationVar(&c.ActionTimeout, "action-timeout", c.ActionTimeout, "Individual action timeout")
}

func (c *Config) Validate() error {
	var errs []error
	if c.URL == "" {
		errs = append(errs, errors.New("url is required"))
	}
	if c.ExcelFile == "" {
		errs = append(errs, errors.New("excel filename is required"))
	}
	if c.JSONFile == "" {
		errs = append(errs, errors.New("json filename is required"))
	}
	if c.Limit < 1 {
		errs = append(errs, fmt.Errorf("limit must be at least 1, got %d", c.Limit))
	}
	if c.GlobalTimeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %v", c.GlobalTimeout))
	}
	if c.ActionTimeout <= 0 {
		errs = append(errs, fmt.Errorf("action timeout must be positive, got %v", c.ActionTimeout))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

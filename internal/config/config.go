package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const (
	LedgerGviz   = "gviz"
	LedgerSheets = "sheets"
	LedgerXLSX   = "xlsx"
)

type Config struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s" validate:"gt=0"`
	FetchRetries int           `envconfig:"FETCH_RETRIES" default:"0" validate:"gte=0,lte=5"`
	FetchBackoff time.Duration `envconfig:"FETCH_BACKOFF" default:"200ms"`
	Timezone     string        `envconfig:"TIMEZONE" default:"Asia/Bangkok"`
	AdsURL       string        `envconfig:"ADS_API_URL" default:"https://backend-api-ram.vercel.app/api" validate:"required,url"`
	Ledger       LedgerConfig
	RedisURL     string `envconfig:"REDIS_URL"`
	SinkURL      string `envconfig:"SINK_URL" validate:"omitempty,url"`
	SinkSecret   string `envconfig:"SINK_SECRET"`
}

type LedgerConfig struct {
	Source     string        `envconfig:"LEDGER_SOURCE" default:"gviz" validate:"oneof=gviz sheets xlsx"`
	SheetID    string        `envconfig:"LEDGER_SHEET_ID" default:"1LFoETe4YdPIxxj27bXxNRip9dKJ-sL7bbDv820ExEtk" validate:"required_unless=Source xlsx"`
	SheetName  string        `envconfig:"LEDGER_SHEET_NAME" default:"SUM" validate:"required"`
	GvizURL    string        `envconfig:"LEDGER_GVIZ_URL" validate:"omitempty,url"`
	APIKey     string        `envconfig:"LEDGER_SHEETS_API_KEY" validate:"required_if=Source sheets"`
	XLSXPath   string        `envconfig:"LEDGER_XLSX_PATH" validate:"required_if=Source xlsx"`
	CacheTTL   time.Duration `envconfig:"LEDGER_CACHE_TTL" default:"0s"`
	SheetRange string        `envconfig:"LEDGER_SHEETS_RANGE"`
}

// GvizEndpoint is the spreadsheet's gviz JSON export URL.
func (l LedgerConfig) GvizEndpoint() string {
	if l.GvizURL != "" {
		return l.GvizURL
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s", url.PathEscape(l.SheetID), url.QueryEscape(l.SheetName))
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	return cfg, nil
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

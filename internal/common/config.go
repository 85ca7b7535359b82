package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"

	"github.com/ternarybob/radar/internal/format"
	"github.com/ternarybob/radar/internal/metrics"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment" env:"RADAR_ENV"` // "development" or "production"
	Logging     LoggingConfig   `toml:"logging"`
	Display     DisplayConfig   `toml:"display"`
	Dashboard   DashboardConfig `toml:"dashboard"`
	Refresh     RefreshConfig   `toml:"refresh"`
}

type LoggingConfig struct {
	Level      string   `toml:"level" env:"RADAR_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Output     []string `toml:"output" env:"RADAR_LOG_OUTPUT" validate:"dive,oneof=stdout console file"`
	TimeFormat string   `toml:"time_format" env:"RADAR_LOG_TIME_FORMAT"`
	Dir        string   `toml:"dir" env:"RADAR_LOG_DIR"` // Log directory (default: <executable dir>/logs)
}

// DisplayConfig controls how values are rendered
type DisplayConfig struct {
	Locale string `toml:"locale" env:"RADAR_LOCALE" validate:"required"` // BCP 47 tag, e.g. "es-AR"
}

// DashboardConfig selects the metrics shown and how trends are read
type DashboardConfig struct {
	Metrics      []string `toml:"metrics" env:"RADAR_DASHBOARD_METRICS" validate:"dive,required"`
	TrendEpsilon float64  `toml:"trend_epsilon" env:"RADAR_TREND_EPSILON" validate:"gt=0"`
}

// RefreshConfig controls re-evaluation in watch mode
type RefreshConfig struct {
	Schedule string `toml:"schedule" env:"RADAR_REFRESH_SCHEDULE"` // Cron schedule (5 fields)
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Display: DisplayConfig{
			Locale: format.DefaultLocale,
		},
		Dashboard: DashboardConfig{
			Metrics:      append([]string(nil), metrics.DefaultDashboardMetrics...),
			TrendEpsilon: metrics.DefaultTrendEpsilon,
		},
		Refresh: RefreshConfig{
			Schedule: "*/15 * * * *", // Every 15 minutes
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority: default -> file1 -> file2 -> ... -> env -> CLI
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal into config (merges with existing values, later values override)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies RADAR_* environment variables. GO_ENV is honoured
// when RADAR_ENV is unset.
func applyEnvOverrides(config *Config) error {
	if os.Getenv("RADAR_ENV") == "" {
		if goEnv := os.Getenv("GO_ENV"); goEnv != "" {
			config.Environment = goEnv
		}
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, logLevel, locale string) {
	if logLevel != "" {
		config.Logging.Level = logLevel
	}
	if locale != "" {
		config.Display.Locale = locale
	}
}

// Validate checks struct constraints, the locale tag and the refresh schedule
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := format.NewFormatter(c.Display.Locale); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Refresh.Schedule != "" {
		if err := ValidateRefreshSchedule(c.Refresh.Schedule); err != nil {
			return fmt.Errorf("invalid refresh schedule %q: %w", c.Refresh.Schedule, err)
		}
	}
	return nil
}

// ValidateRefreshSchedule validates a cron schedule expression and ensures minimum 5-minute interval
func ValidateRefreshSchedule(schedule string) error {
	if _, err := ParseSchedule(schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	minuteField := strings.Fields(schedule)[0]

	if minuteField == "*" {
		return fmt.Errorf("schedule must have minimum 5-minute interval (every minute is not allowed)")
	}

	// Check for */n patterns where n < 5
	if strings.HasPrefix(minuteField, "*/") {
		interval, err := strconv.Atoi(strings.TrimPrefix(minuteField, "*/"))
		if err == nil && interval < 5 {
			return fmt.Errorf("schedule interval must be at least 5 minutes, got %d", interval)
		}
	}

	return nil
}

// ParseSchedule parses a standard 5-field cron expression
func ParseSchedule(schedule string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	return parser.Parse(schedule)
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

package common

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner and logs the active settings
func PrintBanner(config *Config, logger arbor.ILogger) {
	banner.PrintSimple("Radar", GetVersion())

	logger.Info().
		Str("version", GetFullVersion()).
		Str("environment", config.Environment).
		Bool("production", config.IsProduction()).
		Str("locale", config.Display.Locale).
		Int("metrics", len(config.Dashboard.Metrics)).
		Msg("Radar starting")
}

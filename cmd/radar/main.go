package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/radar/internal/common"
	"github.com/ternarybob/radar/internal/format"
	"github.com/ternarybob/radar/internal/insights"
	"github.com/ternarybob/radar/internal/metrics"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	inputFile    = flag.String("input", "", "Observations file (.json, .toml or .yaml)")
	inputFileI   = flag.String("i", "", "Observations file (shorthand)")
	jsonOutput   = flag.Bool("json", false, "Write the report as JSON")
	watchMode    = flag.Bool("watch", false, "Re-evaluate on the refresh schedule until interrupted")
	logLevel     = flag.String("log-level", "", "Log level (overrides config)")
	locale       = flag.String("locale", "", "Display locale, e.g. es-AR (overrides config)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	defer common.RecoverWithCrashFile()

	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Radar version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	input := *inputFile
	if *inputFileI != "" {
		input = *inputFileI
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("radar.toml"); err == nil {
			configFiles = append(configFiles, "radar.toml")
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		common.GetLogger().Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	common.ApplyFlagOverrides(config, *logLevel, *locale)

	if err := config.Validate(); err != nil {
		common.GetLogger().Fatal().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	// Keep stdout clean for machine-readable output
	if *jsonOutput {
		config.Logging.Output = withoutConsole(config.Logging.Output)
	}

	common.InstallCrashHandler(config.Logging.Dir)
	logger := common.InitLogger(config)

	if !*jsonOutput {
		common.PrintBanner(config, logger)
	}

	logger.Debug().
		Str("log_level", config.Logging.Level).
		Strs("log_output", config.Logging.Output).
		Strs("dashboard", config.Dashboard.Metrics).
		Str("refresh_schedule", config.Refresh.Schedule).
		Msg("Resolved configuration")

	if input == "" {
		logger.Fatal().Msg("No observations file given (use -input)")
		os.Exit(1)
	}

	formatter, err := format.NewFormatter(config.Display.Locale)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create formatter")
		os.Exit(1)
	}

	reporter := NewReporter(insights.NewEngine(logger), formatter, metrics.DefaultCatalog(), config.Dashboard.Metrics, config.Dashboard.TrendEpsilon)

	run := func() {
		if err := evaluate(reporter, input, *jsonOutput, os.Stdout, logger); err != nil {
			logger.Error().Str("input", input).Err(err).Msg("Evaluation failed")
		}
	}

	if !*watchMode {
		if err := evaluate(reporter, input, *jsonOutput, os.Stdout, logger); err != nil {
			logger.Fatal().Str("input", input).Err(err).Msg("Evaluation failed")
			os.Exit(1)
		}
		return
	}

	if config.Refresh.Schedule == "" {
		logger.Fatal().Msg("Watch mode requires refresh.schedule")
		os.Exit(1)
	}

	scheduler := common.NewScheduler(logger)
	if _, err := scheduler.AddFunc(config.Refresh.Schedule, run); err != nil {
		logger.Fatal().Str("schedule", config.Refresh.Schedule).Err(err).Msg("Failed to schedule refresh")
		os.Exit(1)
	}

	run()
	scheduler.Start()

	logger.Info().
		Str("schedule", config.Refresh.Schedule).
		Str("input", input).
		Msg("Watching observations - Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Interrupt signal received")
	<-scheduler.Stop().Done()
	logger.Info().Msg("Radar stopped")
}

// evaluate reads the observations file and writes one report
func evaluate(reporter *Reporter, path string, asJSON bool, w io.Writer, logger arbor.ILogger) error {
	set, err := metrics.LoadObservationSet(path)
	if err != nil {
		return err
	}

	now := time.Now()
	report := reporter.Build(set.ToReadings(now, metrics.DefaultCalendar()), now)

	logger.Info().
		Str("report_id", report.ID).
		Int("metrics", len(report.Metrics)).
		Int("watch_items", len(report.Watch)).
		Int("missing", len(report.Missing)).
		Msg("Report generated")

	if asJSON {
		return WriteJSON(w, report)
	}
	return WriteText(w, report)
}

func withoutConsole(outputs []string) []string {
	kept := make([]string, 0, len(outputs))
	for _, output := range outputs {
		if output != "stdout" && output != "console" {
			kept = append(kept, output)
		}
	}
	return kept
}

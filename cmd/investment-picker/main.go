package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iwvelando/investment-picker/internal/config"
	"github.com/iwvelando/investment-picker/internal/runner"
	"github.com/iwvelando/investment-picker/pkg/constants"
	"github.com/iwvelando/investment-picker/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zc zap.Config
	switch format {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		zc.OutputPaths = []string{loggingConfig.OutputFile}
		zc.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zc.Build()
}

// resolveConfigPath returns "" when the default config file is absent so
// that built-in defaults apply. An explicitly named file must exist.
func resolveConfigPath(path string) string {
	if path != constants.DefaultConfigFile {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

// applyOverrides copies explicitly set CLI flags over the loaded configuration.
func applyOverrides(conf *config.Configuration, set map[string]bool, input, strategy string, budget float64, outputFormat string) {
	if set["input"] {
		conf.Input.File = input
	}
	if set["strategy"] {
		conf.Solver.Strategy = strategy
	}
	if set["budget"] {
		conf.Solver.Budget = budget
	}
	if set["output-format"] {
		conf.Output.Format = outputFormat
	}
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	inputFile := flag.String("input", "", "path to the CSV stock sheet")
	strategy := flag.String("strategy", "", "solver strategy override: exhaustive, greedy, dynamic, all")
	budget := flag.Float64("budget", constants.DefaultBudget, "maximum budget override")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, yaml")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	verbose := flag.Bool("v", false, "verbose mode, same as -log-level debug")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	conf, err := config.LoadConfiguration(resolveConfigPath(*configLocation))
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	applyOverrides(conf, set, *inputFile, *strategy, *budget, *outputFormatFlag)

	level := *logLevel
	if *verbose && level == "" {
		level = "debug"
	}
	logger, err := initializeLogger(conf.Logging, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	r, err := runner.NewRunner(logger, conf)
	if err != nil {
		logger.Fatal("failed to create runner",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	items, err := r.LoadCatalog()
	if err != nil {
		logger.Fatal("failed to load catalog",
			zap.String("op", "main"),
			zap.String("file", conf.Input.File),
			zap.Error(err),
		)
	}

	results, err := r.Run(items)
	if err != nil {
		logger.Fatal("failed to select investments",
			zap.String("op", "main"),
			zap.String("runId", r.RunID()),
			zap.Error(err),
		)
	}

	if err := output.Write(os.Stdout, conf.Output.Format, results); err != nil {
		logger.Fatal("failed to write results",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

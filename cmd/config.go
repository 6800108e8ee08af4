package cmd

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"minipress/internal/config"
	"minipress/internal/minifier"
	"minipress/internal/ui"
)

var (
	globalLogger *slog.Logger
	setupOnce    sync.Once
)

// setupViper registers config search paths, env handling and defaults on the
// global viper instance. Flags read their defaults from viper, so this runs
// before any command is built.
func setupViper() {
	setupOnce.Do(func() {
		config.Setup(viper.GetViper())
	})
}

// loadConfig reads the config file. An explicit --config path must exist;
// the search path lookup may come up empty.
func loadConfig(path string) error {
	if strings.TrimSpace(path) != "" {
		viper.SetConfigFile(path)
	}
	return config.Read(viper.GetViper())
}

func currentSettings() config.Settings {
	return config.FromViper(viper.GetViper())
}

func currentTheme() ui.Theme {
	return ui.ThemeOrDefault(viper.GetString(config.ThemeKey))
}

func newPrinter(w io.Writer) *ui.Printer {
	return ui.NewPrinter(currentTheme(), w)
}

func logger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}

func newEngine(s config.Settings) (*minifier.Engine, error) {
	collab, err := minifier.NewCollaborators(s.Engine)
	if err != nil {
		return nil, err
	}
	return minifier.New(
		minifier.WithCollaborators(collab),
		minifier.WithLogger(logger()),
	), nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(s config.LogSettings) {
	logPath := s.Filename
	if strings.TrimSpace(logPath) == "" {
		logPath = config.DefaultLogFile()
	}

	var logLevel slog.Level
	if s.Verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(s.Level, slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    s.MaxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAge,
		Compress:   s.Compress,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

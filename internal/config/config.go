// Package config holds the configuration keys, defaults and typed settings of
// minipress. Values are read through viper so a config file, MINIPRESS_* env
// vars and command line flags all feed the same keys.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"minipress/internal/minifier"
)

// AppName names the config and state directories.
const AppName = "minipress"

const (
	BaseName  = AppName
	FileName  = BaseName + ".yaml"
	EnvPrefix = "MINIPRESS"

	VersionKey     = "version"
	CurrentVersion = 1

	EngineKey         = "engine"
	ThemeKey          = "theme"
	CSSRestructureKey = "css.restructure"
	CSSCommentsKey    = "css.comments"
	GzipKey           = "gzip"
	AuditWorkersKey   = "audit.workers"
	AuditExcludeKey   = "audit.exclude"
	WatchIntervalKey  = "watch.interval"

	LogFilenameKey   = "log.filename"
	LogLevelKey      = "log.level"
	LogVerboseKey    = "log.verbose"
	LogMaxSizeKey    = "log.max_size"
	LogMaxBackupsKey = "log.max_backups"
	LogMaxAgeKey     = "log.max_age"
	LogCompressKey   = "log.compress"
)

const (
	DefaultEngine         = minifier.EngineTdewolff
	DefaultTheme          = "white"
	DefaultCSSRestructure = true
	DefaultCSSComments    = false
	DefaultGzip           = false
	DefaultAuditWorkers   = 4
	DefaultWatchInterval  = "500ms"

	DefaultLogLevel      = "info"
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
	DefaultLogCompress   = true
)

// Settings is a typed snapshot of the configuration.
type Settings struct {
	Engine string
	Theme  string
	CSS    minifier.CSSOptions
	Gzip   bool
	Audit  AuditSettings
	Log    LogSettings
}

// AuditSettings configures the audit command.
type AuditSettings struct {
	Workers int
	Exclude []string
}

// LogSettings configures the rotating log file.
type LogSettings struct {
	Filename   string
	Level      string
	Verbose    bool
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Dir returns the per-user configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// UserFile returns the per-user configuration file path.
func UserFile() string {
	return filepath.Join(Dir(), FileName)
}

// DefaultLogFile returns the default log location under the XDG state directory.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// Setup registers search paths, env handling and defaults on v.
// Config files are looked up in the working directory first, then in Dir().
func Setup(v *viper.Viper) {
	v.SetConfigName(BaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(Dir())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
}

// SetDefaults installs the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(VersionKey, CurrentVersion)
	v.SetDefault(EngineKey, DefaultEngine)
	v.SetDefault(ThemeKey, DefaultTheme)
	v.SetDefault(CSSRestructureKey, DefaultCSSRestructure)
	v.SetDefault(CSSCommentsKey, DefaultCSSComments)
	v.SetDefault(GzipKey, DefaultGzip)
	v.SetDefault(AuditWorkersKey, DefaultAuditWorkers)
	v.SetDefault(AuditExcludeKey, []string{})
	v.SetDefault(WatchIntervalKey, DefaultWatchInterval)

	v.SetDefault(LogFilenameKey, DefaultLogFile())
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(LogVerboseKey, false)
	v.SetDefault(LogMaxSizeKey, DefaultLogMaxSize)
	v.SetDefault(LogMaxBackupsKey, DefaultLogMaxBackups)
	v.SetDefault(LogMaxAgeKey, DefaultLogMaxAge)
	v.SetDefault(LogCompressKey, DefaultLogCompress)
}

// Read loads the config file if there is one. A missing file is not an error.
func Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// FromViper builds Settings from v.
func FromViper(v *viper.Viper) Settings {
	workers := v.GetInt(AuditWorkersKey)
	if workers < 1 {
		workers = 1
	}

	return Settings{
		Engine: v.GetString(EngineKey),
		Theme:  v.GetString(ThemeKey),
		CSS: minifier.CSSOptions{
			Restructure: v.GetBool(CSSRestructureKey),
			Comments:    v.GetBool(CSSCommentsKey),
		},
		Gzip: v.GetBool(GzipKey),
		Audit: AuditSettings{
			Workers: workers,
			Exclude: v.GetStringSlice(AuditExcludeKey),
		},
		Log: LogSettings{
			Filename:   v.GetString(LogFilenameKey),
			Level:      v.GetString(LogLevelKey),
			Verbose:    v.GetBool(LogVerboseKey),
			MaxSize:    v.GetInt(LogMaxSizeKey),
			MaxBackups: v.GetInt(LogMaxBackupsKey),
			MaxAge:     v.GetInt(LogMaxAgeKey),
			Compress:   v.GetBool(LogCompressKey),
		},
	}
}

// WriteFile writes the current configuration of v to path, creating parent
// directories. With force false an existing file is left alone and an error
// is returned.
func WriteFile(v *viper.Viper, path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if force {
		return v.WriteConfigAs(path)
	}
	return v.SafeWriteConfigAs(path)
}

// SaveTheme persists the theme preference. It writes to the config file in
// use, or to UserFile() when none was loaded.
func SaveTheme(v *viper.Viper, theme string) (string, error) {
	v.Set(ThemeKey, theme)

	path := v.ConfigFileUsed()
	if path == "" {
		path = UserFile()
	}
	if err := WriteFile(v, path, true); err != nil {
		return "", err
	}
	return path, nil
}

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/freewrite/pkg/entry"
)

const (
	DefaultPath     = "~/.freewrite.db"
	DefaultDebounce = 300 * time.Millisecond
	DefaultLogLevel = "info"
	logFileName     = "freewrite.log"
)

// Config locates the store on disk.
type Config interface {
	BasePath() string
}

// Settings is the resolved configuration of a freewrite installation.
type Settings struct {
	Path     string
	Debounce time.Duration
	// Prefs seed the editor on first launch, before any preference has been
	// stored.
	Prefs entry.Prefs
	// ThemeSet records whether the theme came from configuration rather than
	// the built-in default.
	ThemeSet bool
	LogFile  string
	LogLevel string
	// ConfigFile is the file that was read, if any.
	ConfigFile string
}

func (s *Settings) BasePath() string {
	return s.Path
}

// LoadConfig reads .freewrite.yaml from $FREEWRITE_CONFIG_PATH, the working
// directory or the home directory, overlaid with FREEWRITE_* environment
// variables. A missing config file is not an error.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("debounce", DefaultDebounce.String())
	v.SetDefault("font", string(entry.DefaultFont))
	v.SetDefault("size", entry.DefaultFontSize)
	v.SetDefault("theme", string(entry.DefaultTheme))
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetConfigName(".freewrite") // .yaml is implicit
	v.SetEnvPrefix("FREEWRITE")
	v.AutomaticEnv()
	_ = v.BindEnv("log.file", "FREEWRITE_LOG_FILE")
	_ = v.BindEnv("log.level", "FREEWRITE_LOG_LEVEL")

	if override := os.Getenv("FREEWRITE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	debounce := v.GetDuration("debounce")
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	defaults := entry.DefaultPrefs()
	prefs := entry.Prefs{
		Font:     entry.Font(v.GetString("font")),
		FontSize: v.GetString("size"),
		Theme:    entry.Theme(v.GetString("theme")),
	}.Normalize(defaults)

	logFile := v.GetString("log.file")
	if logFile == "" {
		logFile = filepath.Join(path, "logs", logFileName)
	}
	if logFile, err = homedir.Expand(logFile); err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	return &Settings{
		Path:       path,
		Debounce:   debounce,
		Prefs:      prefs,
		ThemeSet:   v.InConfig("theme") || os.Getenv("FREEWRITE_THEME") != "",
		LogFile:    logFile,
		LogLevel:   v.GetString("log.level"),
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

// Package config provides configuration loading and management for Open
// Stitch Studio. Supports YAML configuration files with environment variable
// overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
)

// Config represents the top-level application configuration.
// All settings can be overridden via environment variables (e.g., OSS_APP_LOG_LEVEL).
type Config struct {
	// Version for config migration tracking
	Version int `mapstructure:"version"`

	// Application-level settings
	App AppConfig `mapstructure:"app"`

	// Thread-color catalog settings
	Catalog CatalogConfig `mapstructure:"catalog"`

	// Font discovery settings
	Fonts FontsConfig `mapstructure:"fonts"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name         string `mapstructure:"name"`          // Application name
	Version      string `mapstructure:"version"`       // Version string
	DocumentsDir string `mapstructure:"documents_dir"` // Pattern documents directory
	SamplesDir   string `mapstructure:"samples_dir"`   // Bundled sample patterns directory
	LogLevel     string `mapstructure:"log_level"`     // Log level (debug, info, warn, error)
}

// CatalogConfig contains thread-color catalog settings.
type CatalogConfig struct {
	Path string `mapstructure:"path"` // Catalog database file path
}

// FontsConfig contains font discovery settings.
type FontsConfig struct {
	Dirs []string `mapstructure:"dirs"` // Directories scanned for symbol fonts
}

// Loader handles configuration loading from files with environment variable
// overrides. Uses Viper for flexible configuration management.
type Loader struct {
	configPath string // Directory containing config file
	configName string // Config file name (without extension)
	v          *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader(configPath, configName string) *Loader {
	return &Loader{
		configPath: configPath,
		configName: configName,
	}
}

// Load loads the configuration from file
func (l *Loader) Load() (*Config, error) {
	l.v = viper.New()

	l.setDefaults()

	l.v.AddConfigPath(l.configPath)
	l.v.SetConfigName(l.configName)
	l.v.SetConfigType("yaml")

	// Enable environment variable override
	l.v.SetEnvPrefix("OSS")
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Debug("Config file not found, using defaults")
		} else {
			return nil, errors.Wrap(err, errors.ErrParse.Code, "failed to read config file")
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse.Code, "failed to unmarshal config")
	}

	resolvePaths(&cfg)
	return &cfg, nil
}

// setDefaults sets the default configuration values
func (l *Loader) setDefaults() {
	l.v.SetDefault("version", 1)

	l.v.SetDefault("app.name", "Open Stitch Studio")
	l.v.SetDefault("app.version", "dev")
	l.v.SetDefault("app.documents_dir", "$HOME/Documents/Open Stitch Studio")
	l.v.SetDefault("app.samples_dir", "")
	l.v.SetDefault("app.log_level", "info")

	l.v.SetDefault("catalog.path", "$HOME/.open-stitch-studio/catalog.db")

	l.v.SetDefault("fonts.dirs", defaultFontDirs())
}

// resolvePaths expands $HOME in the configured paths.
func resolvePaths(cfg *Config) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	expand := func(path string) string {
		return strings.ReplaceAll(path, "$HOME", home)
	}
	cfg.App.DocumentsDir = expand(cfg.App.DocumentsDir)
	cfg.App.SamplesDir = expand(cfg.App.SamplesDir)
	cfg.Catalog.Path = expand(cfg.Catalog.Path)
	for i, dir := range cfg.Fonts.Dirs {
		cfg.Fonts.Dirs[i] = expand(dir)
	}
}

// defaultFontDirs lists the platform font directories scanned for symbol
// fonts.
func defaultFontDirs() []string {
	home, _ := os.UserHomeDir()
	return []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		filepath.Join(home, ".local", "share", "fonts"),
		filepath.Join(home, "Library", "Fonts"),
		"C:\\Windows\\Fonts",
	}
}

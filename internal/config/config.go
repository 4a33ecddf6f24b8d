// Package config loads themekit configuration from file, environment and flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/careportal/themekit/internal/colorscheme"
	"github.com/careportal/themekit/internal/logging"
	"github.com/careportal/themekit/internal/models"
)

const (
	KeyThemeMode           = "theme.mode"
	KeyThemeFollowSystem   = "theme.follow_system"
	KeyThemeRememberManual = "theme.remember_manual_mode"
	KeyHostColorScheme     = "host.color_scheme"
	KeyHostEnvVar          = "host.env_var"
	KeyDatabasePath        = "database.path"
	KeyDatabaseRetain      = "database.history_retain"
	KeyProfile             = "profile"
	KeyLoggingLevel        = "logging.level"
	KeyLoggingFormat       = "logging.format"
)

const envPrefix = "THEMEKIT"

// Config is the decoded configuration.
type Config struct {
	Theme    ThemeConfig    `mapstructure:"theme"`
	Host     HostConfig     `mapstructure:"host"`
	Database DatabaseConfig `mapstructure:"database"`
	Profile  string         `mapstructure:"profile"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ThemeConfig seeds the theme manager.
type ThemeConfig struct {
	// Mode is the starting manual mode.
	Mode string `mapstructure:"mode"`
	// FollowSystem starts the manager in system-follow.
	FollowSystem bool `mapstructure:"follow_system"`
	// RememberManualMode restores the last manual mode when system-follow is turned off.
	RememberManualMode bool `mapstructure:"remember_manual_mode"`
}

// HostConfig controls host color scheme detection.
type HostConfig struct {
	// ColorScheme forces the host answer ("dark" or "light"). Empty or "system" detects.
	ColorScheme string `mapstructure:"color_scheme"`
	EnvVar      string `mapstructure:"env_var"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
	// HistoryRetain caps the stored transitions per profile. 0 keeps everything.
	HistoryRetain int `mapstructure:"history_retain"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Mode: models.ModeLight.String(),
		},
		Host: HostConfig{
			EnvVar: colorscheme.DefaultEnvVar,
		},
		Database: DatabaseConfig{
			Path:          defaultDatabasePath(),
			HistoryRetain: 500,
		},
		Profile: models.DefaultProfile,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Mode parses Theme.Mode.
func (c *Config) Mode() (models.Mode, error) {
	return models.ParseMode(c.Theme.Mode)
}

// Validate checks the decoded values.
func (c *Config) Validate() error {
	validation := &models.ValidationErrors{}
	if _, err := c.Mode(); err != nil {
		validation.AddMessage(KeyThemeMode, err.Error())
	}
	switch strings.ToLower(strings.TrimSpace(c.Host.ColorScheme)) {
	case "", "system", "dark", "light", "prefer-dark", "prefer-light":
	default:
		validation.AddMessage(KeyHostColorScheme, "must be system, dark or light")
	}
	if c.Database.HistoryRetain < 0 {
		validation.AddMessage(KeyDatabaseRetain, "must not be negative")
	}
	if strings.TrimSpace(c.Profile) == "" {
		validation.AddMessage(KeyProfile, "profile is required")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		validation.AddMessage(KeyLoggingLevel, err.Error())
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		validation.AddMessage(KeyLoggingFormat, "must be console or json")
	}
	return validation.Err()
}

type loadSettings struct {
	configFile string
}

// Option configures Load.
type Option func(*loadSettings)

// WithConfigFile reads path instead of the default user config file.
func WithConfigFile(path string) Option {
	return func(s *loadSettings) {
		s.configFile = path
	}
}

// Store owns the viper instance behind a loaded configuration.
type Store struct {
	mu      sync.RWMutex
	v       *viper.Viper
	path    string
	current *Config
}

// Load builds the configuration with the precedence:
// defaults < config file < environment variables < Set overrides.
func Load(opts ...Option) (*Store, error) {
	settings := loadSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	path := strings.TrimSpace(settings.configFile)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	found, err := readConfigFile(v, path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if explicit && !found {
		return nil, fmt.Errorf("load config: %s: %w", path, fs.ErrNotExist)
	}
	if found {
		v.SetConfigFile(path)
	} else {
		path = ""
	}

	s := &Store{v: v, path: path}
	cfg, err := s.decode()
	if err != nil {
		return nil, err
	}
	s.current = cfg
	return s, nil
}

// Config returns the most recently decoded configuration.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Path returns the config file in use, or "" when running on defaults.
func (s *Store) Path() string {
	return s.path
}

// Set applies an override, typically from a CLI flag, and re-decodes.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	s.v.Set(key, value)
	s.mu.Unlock()

	cfg, err := s.decode()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return nil
}

// Watch reloads the file when it changes and reports each reload to fn.
// An invalid file leaves the previous configuration in place and passes the error.
func (s *Store) Watch(fn func(*Config, error)) error {
	if s.path == "" {
		return errors.New("watch config: no config file loaded")
	}
	s.v.OnConfigChange(func(fsnotify.Event) {
		fn(s.reload())
	})
	s.v.WatchConfig()
	return nil
}

func (s *Store) reload() (*Config, error) {
	cfg, err := s.decode()
	if err != nil {
		return s.Config(), err
	}
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return cfg, nil
}

func (s *Store) decode() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := &Config{}
	if err := s.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: reading the user's config file is the point
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return true, nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault(KeyThemeMode, def.Theme.Mode)
	v.SetDefault(KeyThemeFollowSystem, def.Theme.FollowSystem)
	v.SetDefault(KeyThemeRememberManual, def.Theme.RememberManualMode)
	v.SetDefault(KeyHostColorScheme, def.Host.ColorScheme)
	v.SetDefault(KeyHostEnvVar, def.Host.EnvVar)
	v.SetDefault(KeyDatabasePath, def.Database.Path)
	v.SetDefault(KeyDatabaseRetain, def.Database.HistoryRetain)
	v.SetDefault(KeyProfile, def.Profile)
	v.SetDefault(KeyLoggingLevel, def.Logging.Level)
	v.SetDefault(KeyLoggingFormat, def.Logging.Format)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/themekit/config.yaml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "themekit", "config.yaml")
}

func defaultDatabasePath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "themekit", "themekit.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "themekit.db"
	}
	return filepath.Join(home, ".local", "share", "themekit", "themekit.db")
}

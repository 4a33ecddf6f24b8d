package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careportal/themekit/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	store, err := Load()
	require.NoError(t, err)
	assert.Empty(t, store.Path())

	cfg := store.Config()
	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, models.ModeLight, mode)
	assert.False(t, cfg.Theme.FollowSystem)
	assert.Equal(t, models.DefaultProfile, cfg.Profile)
	assert.Equal(t, "THEMEKIT_COLOR_SCHEME", cfg.Host.EnvVar)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 500, cfg.Database.HistoryRetain)
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	path := writeConfig(t, `
theme:
  mode: high-contrast
  follow_system: true
host:
  color_scheme: dark
profile: kiosk
database:
  history_retain: 25
logging:
  level: debug
  format: json
`)
	t.Setenv("THEMEKIT_PROFILE", "ward-3")

	store, err := Load(WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	cfg := store.Config()
	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, models.ModeHighContrast, mode)
	assert.True(t, cfg.Theme.FollowSystem)
	assert.Equal(t, "dark", cfg.Host.ColorScheme)
	assert.Equal(t, "ward-3", cfg.Profile)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 25, cfg.Database.HistoryRetain)
}

func TestLoadDefaultUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "themekit"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "themekit", "config.yaml"), []byte("theme:\n  mode: dark\n"), 0o644))

	store, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", store.Config().Theme.Mode)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = Load(WithConfigFile(writeConfig(t, "theme: [unclosed")))
	assert.Error(t, err)

	_, err = Load(WithConfigFile(writeConfig(t, "theme:\n  mode: sepia\nlogging:\n  format: xml\n")))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), KeyThemeMode)
	assert.Contains(t, err.Error(), KeyLoggingFormat)
}

func TestSetOverrides(t *testing.T) {
	store, err := Load(WithConfigFile(writeConfig(t, "theme:\n  mode: dark\n")))
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyLoggingLevel, "info"))
	assert.Equal(t, "info", store.Config().Logging.Level)
	assert.Equal(t, "dark", store.Config().Theme.Mode)

	assert.Error(t, store.Set(KeyLoggingLevel, "loud"))
	assert.Equal(t, "info", store.Config().Logging.Level)
}

func TestValidateHostScheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host.ColorScheme = "System"
	assert.NoError(t, cfg.Validate())

	cfg.Host.ColorScheme = "sepia"
	assert.ErrorIs(t, cfg.Validate(), models.ErrValidation)
}

func TestValidateHistoryRetain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.HistoryRetain = 0
	assert.NoError(t, cfg.Validate())

	cfg.Database.HistoryRetain = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyDatabaseRetain)
}

func TestWatchRequiresFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	store, err := Load()
	require.NoError(t, err)
	assert.Error(t, store.Watch(func(*Config, error) {}))
}

func TestWatchReloads(t *testing.T) {
	path := writeConfig(t, "theme:\n  mode: light\n")
	store, err := Load(WithConfigFile(path))
	require.NoError(t, err)

	reloaded := make(chan *Config, 8)
	require.NoError(t, store.Watch(func(cfg *Config, err error) {
		if err != nil {
			return
		}
		select {
		case reloaded <- cfg:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("theme:\n  mode: dark\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for observed := false; !observed; {
		select {
		case cfg := <-reloaded:
			observed = cfg.Theme.Mode == "dark"
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
	assert.Equal(t, "dark", store.Config().Theme.Mode)
}

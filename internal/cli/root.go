// Package cli implements the themekit command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/careportal/themekit/internal/config"
	"github.com/careportal/themekit/internal/db"
	"github.com/careportal/themekit/internal/logging"
)

var (
	cfgFile        string
	dbPath         string
	logLevel       string
	jsonOutput     bool
	nonInteractive bool

	configStore *config.Store
	logger      = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/themekit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "preference database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the interactive UI")
}

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "Theme tokens, mode selection and contrast checks",
	Long: `themekit resolves the design tokens for light, dark and high-contrast modes,
tracks which mode is active, and checks color pairs against WCAG 2.x contrast levels.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(logging.WithContext(ctx, logger))
		return nil
	},
}

// SetVersion sets the string printed by --version.
func SetVersion(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initApp() error {
	var opts []config.Option
	if strings.TrimSpace(cfgFile) != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	store, err := config.Load(opts...)
	if err != nil {
		return err
	}

	overrides := map[string]string{
		config.KeyDatabasePath: dbPath,
		config.KeyLoggingLevel: logLevel,
	}
	for key, value := range overrides {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if err := store.Set(key, value); err != nil {
			return err
		}
	}

	cfg := store.Config()
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Out:    os.Stderr,
	})
	logger = logging.Component("cli")
	configStore = store

	logger.Debug().
		Str("config", store.Path()).
		Str("database", cfg.Database.Path).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or nil before the root command ran.
func GetConfig() *config.Config {
	if configStore == nil {
		return nil
	}
	return configStore.Config()
}

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}

func openDatabase() (*db.DB, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}

	database, err := db.Open(cfg.Database.Path, db.WithLogger(logging.Component("db")))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := database.MigrateUp(context.Background()); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

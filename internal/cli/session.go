package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careportal/themekit/internal/colorscheme"
	"github.com/careportal/themekit/internal/config"
	"github.com/careportal/themekit/internal/db"
	"github.com/careportal/themekit/internal/events"
	"github.com/careportal/themekit/internal/logging"
	"github.com/careportal/themekit/internal/theme"
)

// themeSession is everything a command needs to read or change the active mode.
type themeSession struct {
	cfg        *config.Config
	database   *db.DB
	prefs      *db.PreferenceRepository
	history    *db.TransitionRepository
	resolver   *colorscheme.Resolver
	detachSave func()
	cmd        *cobra.Command
	parentCtx  context.Context
}

// openThemeSession builds the manager from config and the stored preference,
// records later transitions, and installs it as the process theme context and
// on cmd's context.
func openThemeSession(cmd *cobra.Command) (*themeSession, error) {
	ctx := cmd.Context()
	cfg := GetConfig()
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}

	database, err := openDatabase()
	if err != nil {
		return nil, err
	}

	s := &themeSession{
		cfg:      cfg,
		database: database,
		prefs:    db.NewPreferenceRepository(database),
		history:  db.NewTransitionRepository(database),
		resolver: colorscheme.NewDefaultResolver(logging.Component("colorscheme"), cfg.Host.ColorScheme, cfg.Host.EnvVar),
	}

	mode, err := cfg.Mode()
	if err != nil {
		_ = database.Close()
		return nil, err
	}
	follow := cfg.Theme.FollowSystem

	stored, err := s.prefs.Get(ctx, cfg.Profile)
	switch {
	case err == nil:
		mode, follow = stored.Mode, stored.FollowSystem
	case errors.Is(err, db.ErrPreferenceNotFound):
	default:
		_ = database.Close()
		return nil, fmt.Errorf("load preference: %w", err)
	}

	opts := []theme.Option{
		theme.WithLogger(logging.Component("theme")),
		theme.WithInitialState(mode, follow),
	}
	if cfg.Theme.RememberManualMode {
		opts = append(opts, theme.WithRememberManualMode())
	}
	manager := theme.NewManager(s.resolver, opts...)

	if err := theme.Init(manager); err != nil {
		_ = database.Close()
		return nil, err
	}
	s.cmd, s.parentCtx = cmd, ctx
	cmd.SetContext(theme.WithManager(ctx, manager))

	ctx = logging.WithMode(logging.WithComponent(ctx, "session"), manager.Mode().String())
	logging.FromContext(ctx).Debug().
		Str("profile", cfg.Profile).
		Bool("following", manager.IsFollowingSystem()).
		Msg("theme session opened")

	recorder := events.NewRecorder(s.history, s.prefs, cfg.Profile, logging.Component("events"),
		events.WithRetention(cfg.Database.HistoryRetain))
	s.detachSave = recorder.Attach(ctx, manager)
	return s, nil
}

func (s *themeSession) Close() error {
	if s.detachSave != nil {
		s.detachSave()
	}
	if s.cmd != nil {
		s.cmd.SetContext(s.parentCtx)
	}
	theme.Teardown()
	return s.database.Close()
}

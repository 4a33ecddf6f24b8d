package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/careportal/themekit/internal/config"
	"github.com/careportal/themekit/internal/theme"
)

// ThemeChangedMsg carries a manager transition into the program.
type ThemeChangedMsg struct {
	Change theme.Change
}

// ConfigReloadedMsg reports a reload of the config file.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// sender is the subset of *tea.Program used to deliver messages.
type sender interface {
	Send(msg tea.Msg)
}

// themeSubscriber bridges manager notifications to the program. Listeners can
// fire inside Update, so delivery happens on its own goroutine.
type themeSubscriber struct {
	program sender
}

func (s *themeSubscriber) onChange(change theme.Change) {
	if s.program == nil {
		return
	}
	go s.program.Send(ThemeChangedMsg{Change: change})
}

// subscribeTheme forwards manager changes to program and returns the unsubscribe function.
func subscribeTheme(manager *theme.Manager, program sender) func() {
	if manager == nil {
		return func() {}
	}
	subscriber := &themeSubscriber{program: program}
	return manager.OnChange(subscriber.onChange)
}

// watchConfig forwards config file reloads to program.
func watchConfig(store *config.Store, program sender) error {
	if store == nil || store.Path() == "" {
		return nil
	}
	return store.Watch(func(cfg *config.Config, err error) {
		program.Send(ConfigReloadedMsg{Config: cfg, Err: err})
	})
}

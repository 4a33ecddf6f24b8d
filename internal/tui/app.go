// Package tui implements the themekit diagnostics screen.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/careportal/themekit/internal/audit"
	"github.com/careportal/themekit/internal/colorscheme"
	"github.com/careportal/themekit/internal/config"
	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/theme"
	"github.com/careportal/themekit/internal/tui/components"
	"github.com/careportal/themekit/internal/tui/styles"
)

// Config wires the screen to a running theme session.
type Config struct {
	Manager  *theme.Manager
	Resolver *colorscheme.Resolver
	// ConfigStore is watched for changes when it was loaded from a file.
	ConfigStore *config.Store
	Logger      zerolog.Logger
}

// RunWithConfig launches the diagnostics program and blocks until it exits.
func RunWithConfig(cfg Config) error {
	if cfg.Manager == nil {
		manager, err := theme.Current()
		if err != nil {
			return fmt.Errorf("theme manager is required: %w", err)
		}
		cfg.Manager = manager
	}

	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())

	unsubscribe := subscribeTheme(cfg.Manager, program)
	defer unsubscribe()
	stopWatch := cfg.Manager.WatchSystem(cfg.Resolver)
	defer stopWatch()

	if err := watchConfig(cfg.ConfigStore, program); err != nil {
		cfg.Logger.Warn().Err(err).Msg("config watch unavailable")
	}

	_, err := program.Run()
	return err
}

type model struct {
	width       int
	height      int
	manager     *theme.Manager
	resolver    *colorscheme.Resolver
	logger      zerolog.Logger
	themeConfig config.ThemeConfig
	snapshot    theme.Snapshot
	styles      styles.Styles
	view        viewID
	status      string
	lastChanged time.Time
	now         time.Time
}

const (
	minWidth     = 60
	minHeight    = 15
	hostInterval = 2 * time.Second
)

func newModel(cfg Config) model {
	now := time.Now()
	m := model{
		manager:     cfg.Manager,
		resolver:    cfg.Resolver,
		logger:      cfg.Logger,
		themeConfig: config.DefaultConfig().Theme,
		view:        viewTokens,
		now:         now,
	}
	if cfg.ConfigStore != nil {
		m.themeConfig = cfg.ConfigStore.Config().Theme
	}
	return m.refreshSnapshot()
}

// refreshSnapshot re-reads the manager and rebuilds styles from its tokens.
func (m model) refreshSnapshot() model {
	snap := m.manager.Snapshot()
	if m.lastChanged.IsZero() || snap.Mode != m.snapshot.Mode || snap.FollowingSystem != m.snapshot.FollowingSystem {
		m.lastChanged = m.now
	}
	m.snapshot = snap
	m.styles = styles.BuildStyles(snap.Mode, snap.Tokens)
	return m
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "l":
			return m.setMode(models.ModeLight), nil
		case "d":
			return m.setMode(models.ModeDark), nil
		case "h":
			return m.setMode(models.ModeHighContrast), nil
		case "s":
			if m.manager.IsFollowingSystem() {
				m.manager.DisableSystemFollow()
				m.status = "Stopped following the host."
			} else {
				m.manager.EnableSystemFollow()
				m.status = "Following the host color scheme."
			}
			return m.refreshSnapshot(), nil
		case "r":
			m.refreshHost()
			m.status = "Host color scheme re-checked."
			return m.refreshSnapshot(), nil
		case "1":
			m.view = viewTokens
		case "2":
			m.view = viewAudit
		case "tab", "g":
			m.view = nextView(m.view)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ThemeChangedMsg:
		return m.refreshSnapshot(), nil
	case ConfigReloadedMsg:
		return m.applyConfig(msg), nil
	case tickMsg:
		m.now = time.Time(msg)
		m.refreshHost()
		return m.refreshSnapshot(), tickCmd()
	}
	return m, nil
}

func (m model) setMode(mode models.Mode) model {
	if err := m.manager.SetMode(mode); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = fmt.Sprintf("Switched to %s.", mode)
	return m.refreshSnapshot()
}

func (m model) refreshHost() {
	if m.resolver != nil {
		m.resolver.Refresh()
	}
	m.manager.Refresh()
}

func (m model) applyConfig(msg ConfigReloadedMsg) model {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg("config reload rejected")
		m.status = "Config not reloaded: " + msg.Err.Error()
		return m
	}
	if msg.Config == nil {
		return m
	}

	// Only theme edits move the mode; the choice made on screen survives
	// unrelated config changes.
	next := msg.Config.Theme
	prev := m.themeConfig
	m.themeConfig = next
	m.status = "Config reloaded."
	if next.FollowSystem == prev.FollowSystem && sameMode(next.Mode, prev.Mode) {
		return m
	}

	if next.FollowSystem {
		m.manager.EnableSystemFollow()
	} else if mode, err := msg.Config.Mode(); err == nil {
		_ = m.manager.SetMode(mode)
	}
	return m.refreshSnapshot()
}

func sameMode(a, b string) bool {
	ma, errA := models.ParseMode(a)
	mb, errB := models.ParseMode(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ma == mb
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return components.TerminalTooSmall(m.width, m.height, minWidth, minHeight).Render(m.styles) + "\n"
		}
	}

	lines := []string{
		m.styles.Title.Render("themekit") + "  " + components.RenderModeBadge(m.styles, m.snapshot.Mode, m.snapshot.FollowingSystem),
		m.styles.Muted.Render(m.hostLine()),
		"",
	}

	lines = append(lines, m.styles.Panel.Render(strings.Join(m.viewLines(), "\n")))

	if m.status != "" {
		lines = append(lines, "", m.styles.Focus.Render(m.status))
	}
	lines = append(lines, "", m.styles.Muted.Render(m.lastChangedLine()))
	lines = append(lines, "", m.styles.Muted.Render("Keys: l/d/h mode | s follow system | r re-check host | 1/2 views | q quit"))

	return strings.Join(lines, "\n") + "\n"
}

func (m model) hostLine() string {
	if m.resolver == nil {
		return "Host: unknown"
	}
	pref := m.resolver.Resolve()
	scheme := "light"
	if pref.PrefersDark {
		scheme = "dark"
	}
	return fmt.Sprintf("Host: %s (%s)", scheme, pref.Source)
}

type viewID int

const (
	viewTokens viewID = iota
	viewAudit
)

func nextView(current viewID) viewID {
	switch current {
	case viewTokens:
		return viewAudit
	default:
		return viewTokens
	}
}

func (m model) viewLines() []string {
	switch m.view {
	case viewAudit:
		return m.auditLines()
	default:
		return m.tokenLines()
	}
}

func (m model) tokenLines() []string {
	lines := []string{m.styles.Accent.Render("Color tokens")}
	if m.snapshot.FollowingSystem && m.resolver != nil && m.resolver.Resolve().Source == colorscheme.SourceFallback {
		lines = append(lines, components.HostUnknown().RenderCompact(m.styles))
	}
	for _, entry := range m.snapshot.Tokens.ColorEntries() {
		if strings.HasPrefix(entry.Path, "shadows.") {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %-36s %s",
			styles.Swatch(entry.Value),
			m.styles.Text.Render(entry.Path),
			m.styles.Muted.Render(entry.Value),
		))
	}
	return lines
}

func (m model) auditLines() []string {
	report, err := audit.Run(m.snapshot.Mode, m.snapshot.Tokens)
	if err != nil {
		return []string{m.styles.Error.Render(err.Error())}
	}

	lines := []string{m.styles.Accent.Render("Accessibility audit")}
	for _, f := range report.Findings {
		mark := m.styles.Pass.Render("PASS")
		if !f.Passed {
			mark = m.styles.Fail.Render("FAIL")
		}
		ratio := ""
		if f.Contrast != nil {
			ratio = fmt.Sprintf("%5.2f %-4s", f.Contrast.Ratio, f.Contrast.Level)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", mark, ratio, m.styles.Text.Render(f.Subject)))
	}
	if report.Passed() {
		lines = append(lines, "", components.AuditPassed(report.Mode).RenderCompact(m.styles))
	}
	return lines
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(hostInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) lastChangedLine() string {
	if m.lastChanged.IsZero() {
		return "Mode since: --"
	}
	return fmt.Sprintf("Mode since: %s", m.lastChanged.Format("15:04:05"))
}

// Package theme owns the active theme mode for an application session.
package theme

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/careportal/themekit/internal/colorscheme"
	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tokens"
)

// ErrInvalidMode is returned by SetMode for values outside the declared modes.
var ErrInvalidMode = models.ErrInvalidMode

// SystemSignal reports the host's light/dark preference.
type SystemSignal interface {
	Resolve() colorscheme.Preference
}

// Snapshot is a consistent view of the manager: the effective mode and the
// tokens for that mode are always read together.
type Snapshot struct {
	Mode            models.Mode
	FollowingSystem bool
	// ManualMode is the user's own choice. It equals Mode unless following
	// the system, and is what a preference store should persist.
	ManualMode models.Mode
	Tokens     tokens.TokenSet
}

// Cause names the transition that produced a Change.
type Cause string

const (
	CauseSetMode        Cause = "set_mode"
	CauseFollowEnabled  Cause = "follow_enabled"
	CauseFollowDisabled Cause = "follow_disabled"
	CauseSystemChanged  Cause = "system_changed"
)

// Change is delivered to listeners after a transition moved the mode or the
// follow flag. Seq increases with every transition of a manager, so a
// listener can tell a late delivery from the latest state.
type Change struct {
	Seq    uint64
	Cause  Cause
	Before Snapshot
	After  Snapshot
}

type listener struct {
	fn func(Change)
}

// Manager holds {currentMode, isFollowingSystem}. Both fields only change
// together, through SetMode, EnableSystemFollow and DisableSystemFollow.
type Manager struct {
	mu             sync.RWMutex
	mode           models.Mode
	following      bool
	lastManual     models.Mode
	observed       models.Mode
	rememberManual bool
	seq            uint64
	system         SystemSignal
	logger         zerolog.Logger
	listeners      []*listener
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for transition logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithRememberManualMode makes DisableSystemFollow restore the last manual
// mode instead of falling back to light.
func WithRememberManualMode() Option {
	return func(m *Manager) {
		m.rememberManual = true
	}
}

// WithInitialState seeds the starting state, e.g. from a persisted preference.
func WithInitialState(mode models.Mode, followSystem bool) Option {
	return func(m *Manager) {
		if mode.Valid() {
			m.mode = mode
			m.lastManual = mode
		}
		m.following = followSystem
		if followSystem {
			m.mode = models.ModeLight
		}
	}
}

// NewManager creates a manager in Manual(light). A nil system signal is
// treated as a host that always prefers light.
func NewManager(system SystemSignal, opts ...Option) *Manager {
	m := &Manager{
		mode:       models.ModeLight,
		lastManual: models.ModeLight,
		system:     system,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.observed = m.effectiveLocked()
	return m
}

// Mode returns the effective mode.
func (m *Manager) Mode() models.Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.effectiveLocked()
}

// IsFollowingSystem reports whether the host preference drives the mode.
func (m *Manager) IsFollowingSystem() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.following
}

// Tokens returns the token set for the effective mode.
func (m *Manager) Tokens() tokens.TokenSet {
	return m.Snapshot().Tokens
}

// Snapshot returns the effective mode, follow flag and tokens in one read.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// SetMode switches to Manual(mode).
func (m *Manager) SetMode(mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("set mode: %w: %d", ErrInvalidMode, uint8(mode))
	}

	m.mu.Lock()
	before := m.snapshotLocked()
	m.mode = mode
	m.lastManual = mode
	m.following = false
	after := m.snapshotLocked()
	m.observed = after.Mode
	seq := m.nextSeqLocked()
	m.mu.Unlock()

	m.logger.Info().
		Str("from", before.Mode.String()).
		Str("to", after.Mode.String()).
		Msg("theme mode set")
	m.notify(seq, CauseSetMode, before, after)
	return nil
}

// EnableSystemFollow switches to FollowingSystem and clears the manual mode.
func (m *Manager) EnableSystemFollow() {
	m.mu.Lock()
	before := m.snapshotLocked()
	m.following = true
	m.mode = models.ModeLight
	after := m.snapshotLocked()
	m.observed = after.Mode
	seq := m.nextSeqLocked()
	m.mu.Unlock()

	m.logger.Info().
		Str("effective", after.Mode.String()).
		Msg("theme following system")
	m.notify(seq, CauseFollowEnabled, before, after)
}

// DisableSystemFollow leaves FollowingSystem. Without WithRememberManualMode
// the manager falls back to Manual(light); a previously chosen manual mode is
// not restored. Calling it while already manual keeps the current mode.
func (m *Manager) DisableSystemFollow() {
	m.mu.Lock()
	if !m.following {
		m.mu.Unlock()
		return
	}
	before := m.snapshotLocked()
	m.following = false
	m.mode = models.ModeLight
	if m.rememberManual {
		m.mode = m.lastManual
	}
	m.lastManual = m.mode
	after := m.snapshotLocked()
	m.observed = after.Mode
	seq := m.nextSeqLocked()
	m.mu.Unlock()

	m.logger.Info().
		Str("mode", after.Mode.String()).
		Bool("restored", m.rememberManual).
		Msg("theme stopped following system")
	m.notify(seq, CauseFollowDisabled, before, after)
}

// Refresh re-reads the host signal. Listeners are told if the effective
// mode moved, which only happens while following the system.
func (m *Manager) Refresh() Snapshot {
	m.mu.Lock()
	snap := m.snapshotLocked()
	before := snap
	before.Mode = m.observed
	before.Tokens = tokens.Resolve(m.observed)
	changed := snap.Mode != m.observed
	m.observed = snap.Mode
	var seq uint64
	if changed {
		seq = m.nextSeqLocked()
	}
	m.mu.Unlock()

	if changed {
		m.logger.Info().
			Str("mode", snap.Mode.String()).
			Msg("theme mode changed with host")
		m.broadcast(Change{Seq: seq, Cause: CauseSystemChanged, Before: before, After: snap})
	}
	return snap
}

// OnChange registers fn for state changes and returns an unregister function.
// Callbacks run outside the lock and may call back into the manager.
func (m *Manager) OnChange(fn func(Change)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := &listener{fn: fn}
	m.listeners = append(m.listeners, l)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, existing := range m.listeners {
			if existing == l {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// WatchSystem subscribes to a resolver's change notifications so a
// following manager reacts to host changes. It returns the unsubscribe function.
func (m *Manager) WatchSystem(resolver *colorscheme.Resolver) func() {
	if resolver == nil {
		return func() {}
	}
	return resolver.OnChange(func(colorscheme.Preference) {
		m.Refresh()
	})
}

func (m *Manager) effectiveLocked() models.Mode {
	if !m.following {
		return m.mode
	}
	if m.system != nil && m.system.Resolve().PrefersDark {
		return models.ModeDark
	}
	return models.ModeLight
}

func (m *Manager) snapshotLocked() Snapshot {
	mode := m.effectiveLocked()
	return Snapshot{
		Mode:            mode,
		FollowingSystem: m.following,
		ManualMode:      m.lastManual,
		Tokens:          tokens.Resolve(mode),
	}
}

func (m *Manager) nextSeqLocked() uint64 {
	m.seq++
	return m.seq
}

func (m *Manager) notify(seq uint64, cause Cause, before, after Snapshot) {
	if before.Mode == after.Mode && before.FollowingSystem == after.FollowingSystem {
		return
	}
	m.broadcast(Change{Seq: seq, Cause: cause, Before: before, After: after})
}

func (m *Manager) broadcast(change Change) {
	m.mu.RLock()
	listeners := make([]*listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()

	for _, l := range listeners {
		l.fn(change)
	}
}

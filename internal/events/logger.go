// Package events records theme transitions to the mode history and the
// preference store.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/theme"
)

// Repository is the minimal interface needed to write the mode history.
type Repository interface {
	Append(ctx context.Context, t *models.Transition) error
}

// Pruner trims a profile's history to its newest keep entries.
type Pruner interface {
	Prune(ctx context.Context, profile string, keep int) (int64, error)
}

// PreferenceStore persists the current choice of a profile.
type PreferenceStore interface {
	Save(ctx context.Context, pref *models.Preference) error
}

var causeKinds = map[theme.Cause]models.TransitionKind{
	theme.CauseSetMode:        models.TransitionModeSet,
	theme.CauseFollowEnabled:  models.TransitionFollowEnabled,
	theme.CauseFollowDisabled: models.TransitionFollowDisabled,
	theme.CauseSystemChanged:  models.TransitionSystemChanged,
}

// TransitionFor converts a manager change into a history entry for profile.
func TransitionFor(profile string, change theme.Change) (*models.Transition, error) {
	kind, ok := causeKinds[change.Cause]
	if !ok {
		return nil, fmt.Errorf("unknown theme change cause %q", change.Cause)
	}
	return &models.Transition{
		Profile:         profile,
		Kind:            kind,
		From:            change.Before.Mode,
		To:              change.After.Mode,
		FollowingSystem: change.After.FollowingSystem,
	}, nil
}

// LogTransition appends change to the history of profile.
func LogTransition(ctx context.Context, repo Repository, profile string, change theme.Change) error {
	if repo == nil {
		return errors.New("transition repository is required")
	}
	if profile == "" {
		return errors.New("profile is required")
	}
	t, err := TransitionFor(profile, change)
	if err != nil {
		return err
	}
	return repo.Append(ctx, t)
}

// Recorder writes every manager change to the history and, for user-driven
// changes, the preference store.
type Recorder struct {
	history Repository
	prefs   PreferenceStore
	profile string
	retain  int
	logger  zerolog.Logger

	mu      sync.Mutex
	lastSeq uint64
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithRetention prunes the history to keep entries after each write when the
// repository supports it. keep <= 0 disables pruning.
func WithRetention(keep int) RecorderOption {
	return func(r *Recorder) {
		r.retain = keep
	}
}

// NewRecorder creates a Recorder for profile. prefs may be nil.
func NewRecorder(history Repository, prefs PreferenceStore, profile string, logger zerolog.Logger, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		history: history,
		prefs:   prefs,
		profile: profile,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record persists one change. Host-driven changes are logged but do not
// overwrite the stored preference. The preference keeps the manual mode, so a
// profile that follows the host still remembers its own choice. A change older
// than one already saved is not written.
func (r *Recorder) Record(ctx context.Context, change theme.Change) error {
	if err := LogTransition(ctx, r.history, r.profile, change); err != nil {
		return err
	}
	r.prune(ctx)

	if r.prefs == nil || change.Cause == theme.CauseSystemChanged {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if change.Seq != 0 && change.Seq <= r.lastSeq {
		r.logger.Debug().
			Uint64("seq", change.Seq).
			Uint64("saved_seq", r.lastSeq).
			Msg("skipping stale theme change")
		return nil
	}
	r.lastSeq = change.Seq

	pref := &models.Preference{
		Profile:      r.profile,
		Mode:         change.After.ManualMode,
		FollowSystem: change.After.FollowingSystem,
	}
	if err := r.prefs.Save(ctx, pref); err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}

func (r *Recorder) prune(ctx context.Context) {
	pruner, ok := r.history.(Pruner)
	if !ok || r.retain <= 0 {
		return
	}
	deleted, err := pruner.Prune(ctx, r.profile, r.retain)
	if err != nil {
		r.logger.Warn().Err(err).Str("profile", r.profile).Msg("failed to prune mode history")
		return
	}
	if deleted > 0 {
		r.logger.Debug().Int64("deleted", deleted).Int("retain", r.retain).Msg("pruned mode history")
	}
}

// Attach subscribes the recorder to m and returns the unsubscribe function.
// Write failures are logged; they never block a transition.
func (r *Recorder) Attach(ctx context.Context, m *theme.Manager) func() {
	return m.OnChange(func(change theme.Change) {
		if err := r.Record(ctx, change); err != nil {
			r.logger.Warn().
				Err(err).
				Str("cause", string(change.Cause)).
				Str("profile", r.profile).
				Msg("failed to record theme change")
		}
	})
}

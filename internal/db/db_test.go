package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/careportal/themekit/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if _, err := database.MigrateUp(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	database, err := Open(filepath.Join(t.TempDir(), "nested", "themekit.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer database.Close()

	applied, err := database.MigrateUp(ctx)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied, got %d", applied)
	}

	applied, err = database.MigrateUp(ctx)
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected no migrations on second run, got %d", applied)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(openTestDB(t))

	if _, err := repo.Get(ctx, "default"); !errors.Is(err, ErrPreferenceNotFound) {
		t.Fatalf("expected ErrPreferenceNotFound, got %v", err)
	}

	pref := &models.Preference{Profile: "default", Mode: models.ModeHighContrast}
	if err := repo.Save(ctx, pref); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if pref.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}

	got, err := repo.Get(ctx, "default")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Mode != models.ModeHighContrast || got.FollowSystem {
		t.Errorf("unexpected preference: %+v", got)
	}
	if !got.UpdatedAt.Equal(pref.UpdatedAt) {
		t.Errorf("expected UpdatedAt %v, got %v", pref.UpdatedAt, got.UpdatedAt)
	}

	pref.FollowSystem = true
	pref.Mode = models.ModeLight
	if err := repo.Save(ctx, pref); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	got, err = repo.Get(ctx, "default")
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if !got.FollowSystem || got.Mode != models.ModeLight {
		t.Errorf("update not applied: %+v", got)
	}

	if err := repo.Delete(ctx, "default"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "default"); !errors.Is(err, ErrPreferenceNotFound) {
		t.Errorf("expected ErrPreferenceNotFound on second delete, got %v", err)
	}
}

func TestPreferenceRepositoryRejectsInvalid(t *testing.T) {
	repo := NewPreferenceRepository(openTestDB(t))

	err := repo.Save(context.Background(), &models.Preference{Profile: "", Mode: models.Mode(9)})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransitionRepositoryAppendAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewTransitionRepository(openTestDB(t))

	tr := &models.Transition{
		Profile:         "default",
		Kind:            models.TransitionFollowEnabled,
		From:            models.ModeHighContrast,
		To:              models.ModeDark,
		FollowingSystem: true,
	}
	if err := repo.Append(ctx, tr); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if tr.ID == "" || tr.At.IsZero() {
		t.Fatalf("expected ID and time to be set: %+v", tr)
	}

	got, err := repo.byID(ctx, tr.ID)
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if got.Kind != models.TransitionFollowEnabled || got.From != models.ModeHighContrast || got.To != models.ModeDark {
		t.Errorf("unexpected transition: %+v", got)
	}
	if !got.FollowingSystem {
		t.Error("expected following_system to round-trip")
	}
	if !got.At.Equal(tr.At) {
		t.Errorf("time mismatch: got %v want %v", got.At, tr.At)
	}

	if _, err := repo.byID(ctx, "missing"); !errors.Is(err, ErrTransitionNotFound) {
		t.Errorf("expected ErrTransitionNotFound, got %v", err)
	}
	if err := repo.Append(ctx, &models.Transition{Kind: models.TransitionModeSet}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func seedTransitions(t *testing.T, repo *TransitionRepository, profile string, base time.Time, kinds ...models.TransitionKind) []string {
	t.Helper()
	var ids []string
	for i, kind := range kinds {
		tr := &models.Transition{
			At:      base.Add(time.Duration(i) * time.Millisecond),
			Profile: profile,
			Kind:    kind,
			From:    models.ModeLight,
			To:      models.ModeDark,
		}
		if err := repo.Append(context.Background(), tr); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		ids = append(ids, tr.ID)
	}
	return ids
}

func TestTransitionRepositoryHistoryAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewTransitionRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ids := seedTransitions(t, repo, "default", base,
		models.TransitionModeSet,
		models.TransitionFollowEnabled,
		models.TransitionSystemChanged,
		models.TransitionFollowDisabled,
		models.TransitionModeSet,
	)
	seedTransitions(t, repo, "kiosk", base, models.TransitionModeSet)

	page, err := repo.History(ctx, TransitionQuery{Profile: "default", Limit: 2})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(page.Transitions) != 2 || page.NextAfter != ids[1] {
		t.Fatalf("unexpected first page: %d transitions, next %q", len(page.Transitions), page.NextAfter)
	}

	page, err = repo.History(ctx, TransitionQuery{Profile: "default", Limit: 2, After: page.NextAfter})
	if err != nil {
		t.Fatalf("History page 2: %v", err)
	}
	if len(page.Transitions) != 2 || page.Transitions[0].ID != ids[2] {
		t.Fatalf("unexpected second page: %v", transitionIDs(page.Transitions))
	}

	if _, err := repo.History(ctx, TransitionQuery{Profile: "default", After: "missing"}); !errors.Is(err, ErrTransitionNotFound) {
		t.Errorf("expected ErrTransitionNotFound for unknown cursor, got %v", err)
	}

	page, err = repo.History(ctx, TransitionQuery{Kinds: []models.TransitionKind{models.TransitionModeSet}})
	if err != nil {
		t.Fatalf("History by kind: %v", err)
	}
	if len(page.Transitions) != 3 {
		t.Errorf("expected 3 mode_set transitions across profiles, got %d", len(page.Transitions))
	}

	since := base.Add(3 * time.Millisecond)
	page, err = repo.History(ctx, TransitionQuery{Profile: "default", Since: &since})
	if err != nil {
		t.Fatalf("History since: %v", err)
	}
	if len(page.Transitions) != 2 || page.NextAfter != "" {
		t.Errorf("expected 2 transitions since %v and no next page, got %d", since, len(page.Transitions))
	}

	recent, err := repo.Recent(ctx, "default", 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 3 || recent[0].ID != ids[4] || recent[2].ID != ids[2] {
		t.Errorf("unexpected recent order: %v", transitionIDs(recent))
	}
}

func TestTransitionRepositoryPrune(t *testing.T) {
	ctx := context.Background()
	repo := NewTransitionRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ids := seedTransitions(t, repo, "default", base,
		models.TransitionModeSet,
		models.TransitionModeSet,
		models.TransitionModeSet,
		models.TransitionModeSet,
	)
	seedTransitions(t, repo, "kiosk", base, models.TransitionModeSet)

	deleted, err := repo.Prune(ctx, "default", 1)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}

	recent, err := repo.Recent(ctx, "default", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != ids[3] {
		t.Errorf("expected only the newest transition to survive, got %v", transitionIDs(recent))
	}

	others, err := repo.Recent(ctx, "kiosk", 10)
	if err != nil {
		t.Fatalf("Recent kiosk: %v", err)
	}
	if len(others) != 1 {
		t.Errorf("prune touched another profile: %d left", len(others))
	}

	if _, err := repo.Prune(ctx, "default", -1); err == nil {
		t.Error("expected error for negative keep")
	}
}

func transitionIDs(transitions []*models.Transition) []string {
	ids := make([]string, len(transitions))
	for i, tr := range transitions {
		ids[i] = tr.ID
	}
	return ids
}

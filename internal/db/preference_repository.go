package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/careportal/themekit/internal/models"
)

// ErrPreferenceNotFound is returned when a profile has no stored preference.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository stores one theme preference per profile.
type PreferenceRepository struct {
	db *DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get returns the preference for profile.
func (r *PreferenceRepository) Get(ctx context.Context, profile string) (*models.Preference, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT profile, mode, follow_system, updated_at
		FROM preferences WHERE profile = ?
	`, profile)

	var pref models.Preference
	var mode, updatedAt string
	var follow int
	if err := row.Scan(&pref.Profile, &mode, &follow, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to scan preference: %w", err)
	}

	parsed, err := models.ParseMode(mode)
	if err != nil {
		return nil, fmt.Errorf("preference %s: %w", profile, err)
	}
	pref.Mode = parsed
	pref.FollowSystem = follow != 0
	if t, err := parseTime(updatedAt); err == nil {
		pref.UpdatedAt = t
	} else {
		r.db.logger.Warn().Err(err).Str("profile", profile).Msg("failed to parse preference timestamp")
	}

	return &pref, nil
}

// Save inserts or replaces the preference for pref.Profile.
func (r *PreferenceRepository) Save(ctx context.Context, pref *models.Preference) error {
	if err := pref.Validate(); err != nil {
		return err
	}
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (profile, mode, follow_system, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET
			mode = excluded.mode,
			follow_system = excluded.follow_system,
			updated_at = excluded.updated_at
	`, pref.Profile, pref.Mode.String(), boolToInt(pref.FollowSystem), formatTime(pref.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}

// Delete removes the preference for profile.
func (r *PreferenceRepository) Delete(ctx context.Context, profile string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE profile = ?`, profile)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrPreferenceNotFound
	}
	return nil
}

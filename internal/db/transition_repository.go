package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careportal/themekit/internal/models"
)

var (
	ErrTransitionNotFound = errors.New("transition not found")
	ErrInvalidTransition  = errors.New("invalid transition")
)

const (
	defaultHistoryLimit = 20
	maxPageSize         = 500
)

const transitionColumns = `id, at, profile, kind, from_mode, to_mode, following_system`

// TransitionRepository stores the append-only mode history of each profile.
type TransitionRepository struct {
	db *DB
}

// NewTransitionRepository creates a TransitionRepository.
func NewTransitionRepository(db *DB) *TransitionRepository {
	return &TransitionRepository{db: db}
}

// TransitionQuery filters History. Zero values match everything.
type TransitionQuery struct {
	Profile string
	Kinds   []models.TransitionKind
	Since   *time.Time // inclusive
	Until   *time.Time // exclusive
	After   string     // ID of the last transition of the previous page
	Limit   int
}

// TransitionPage is one page of History, oldest first.
type TransitionPage struct {
	Transitions []*models.Transition
	NextAfter   string
}

// Append stores t, assigning an ID and timestamp when missing.
func (r *TransitionRepository) Append(ctx context.Context, t *models.Transition) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.At.IsZero() {
		t.At = time.Now()
	}
	t.At = t.At.UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transitions (`+transitionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID,
		formatTime(t.At),
		t.Profile,
		string(t.Kind),
		t.From.String(),
		t.To.String(),
		boolToInt(t.FollowingSystem),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transition: %w", err)
	}
	return nil
}

// byID returns the transition with id.
func (r *TransitionRepository) byID(ctx context.Context, id string) (*models.Transition, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transitionColumns+` FROM transitions WHERE id = ?`, id)
	t, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransitionNotFound
	}
	return t, err
}

// History pages through transitions oldest first.
func (r *TransitionRepository) History(ctx context.Context, q TransitionQuery) (*TransitionPage, error) {
	limit := q.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	var where []string
	var args []any
	if q.Profile != "" {
		where = append(where, "profile = ?")
		args = append(args, q.Profile)
	}
	if len(q.Kinds) > 0 {
		marks := make([]string, len(q.Kinds))
		for i, kind := range q.Kinds {
			marks[i] = "?"
			args = append(args, string(kind))
		}
		where = append(where, "kind IN ("+strings.Join(marks, ", ")+")")
	}
	if q.Since != nil {
		where = append(where, "at >= ?")
		args = append(args, formatTime(*q.Since))
	}
	if q.Until != nil {
		where = append(where, "at < ?")
		args = append(args, formatTime(*q.Until))
	}
	if q.After != "" {
		if _, err := r.byID(ctx, q.After); err != nil {
			return nil, err
		}
		where = append(where, "(at, rowid) > (SELECT at, rowid FROM transitions WHERE id = ?)")
		args = append(args, q.After)
	}

	query := `SELECT ` + transitionColumns + ` FROM transitions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY at, rowid LIMIT ?`
	args = append(args, limit+1)

	rows, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	page := &TransitionPage{Transitions: rows}
	if len(rows) > limit {
		page.Transitions = rows[:limit]
		page.NextAfter = rows[limit-1].ID
	}
	return page, nil
}

// Recent returns a profile's latest transitions, newest first.
func (r *TransitionRepository) Recent(ctx context.Context, profile string, limit int) ([]*models.Transition, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return r.list(ctx, `
		SELECT `+transitionColumns+`
		FROM transitions
		WHERE profile = ?
		ORDER BY at DESC, rowid DESC
		LIMIT ?
	`, profile, limit)
}

// Prune keeps the newest keep transitions of a profile and deletes the rest.
func (r *TransitionRepository) Prune(ctx context.Context, profile string, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("prune: keep must not be negative, got %d", keep)
	}
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM transitions
		WHERE profile = ? AND rowid NOT IN (
			SELECT rowid FROM transitions
			WHERE profile = ?
			ORDER BY at DESC, rowid DESC
			LIMIT ?
		)
	`, profile, profile, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune transitions: %w", err)
	}
	return res.RowsAffected()
}

func (r *TransitionRepository) list(ctx context.Context, query string, args ...any) ([]*models.Transition, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transitions: %w", err)
	}
	defer rows.Close()

	var out []*models.Transition
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transitions: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *TransitionRepository) scan(row scanner) (*models.Transition, error) {
	var t models.Transition
	var at, kind, from, to string
	var following int
	if err := row.Scan(&t.ID, &at, &t.Profile, &kind, &from, &to, &following); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transition: %w", err)
	}

	t.Kind = models.TransitionKind(kind)
	t.FollowingSystem = following != 0

	var err error
	if t.At, err = parseTime(at); err != nil {
		r.db.logger.Warn().Err(err).Str("transition_id", t.ID).Msg("failed to parse transition time")
	}
	if t.From, err = models.ParseMode(from); err != nil {
		return nil, fmt.Errorf("transition %s: %w", t.ID, err)
	}
	if t.To, err = models.ParseMode(to); err != nil {
		return nil, fmt.Errorf("transition %s: %w", t.ID, err)
	}
	return &t, nil
}

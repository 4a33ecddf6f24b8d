// Package db provides SQLite persistence for theme preferences and transition history.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.up.sql
var migrationFS embed.FS

// timestampFormat is fixed width so stored timestamps sort as strings.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

// DB wraps the SQLite connection.
type DB struct {
	*sql.DB
	path   string
	logger zerolog.Logger
}

// Option configures Open.
type Option func(*DB)

// WithLogger sets the logger used for migrations and decode warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *DB) {
		d.logger = logger
	}
}

// Open opens (or creates) the database at path and applies pragmas.
func Open(path string, opts ...Option) (*DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if path != ":memory:" {
		//nolint:gosec // G301: data directory needs standard permissions
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(context.Background()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite %q: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL")
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	d := &DB{DB: conn, path: path, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// OpenInMemory opens a private in-memory database, mainly for tests.
func OpenInMemory(opts ...Option) (*DB, error) {
	return Open(":memory:", opts...)
}

// Path returns the path the database was opened with.
func (d *DB) Path() string {
	return d.path
}

type migration struct {
	version int
	name    string
	sql     string
}

func loadMigrations() ([]migration, error) {
	files, err := fs.Glob(migrationFS, "migrations/*.up.sql")
	if err != nil {
		return nil, err
	}

	migrations := make([]migration, 0, len(files))
	for _, file := range files {
		base := filepath.Base(file)
		prefix, _, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: missing version prefix", base)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", base, err)
		}
		data, err := migrationFS.ReadFile(file)
		if err != nil {
			return nil, err
		}
		migrations = append(migrations, migration{version: version, name: base, sql: string(data)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].version < migrations[j].version
	})
	return migrations, nil
}

// MigrateUp applies pending migrations and returns how many ran.
func (d *DB) MigrateUp(ctx context.Context) (int, error) {
	if _, err := d.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL
		)
	`); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return 0, fmt.Errorf("load migrations: %w", err)
	}

	applied := 0
	for _, m := range migrations {
		var exists int
		if err := d.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, m.version,
		).Scan(&exists); err != nil {
			return applied, fmt.Errorf("check migration %d: %w", m.version, err)
		}
		if exists > 0 {
			continue
		}

		if err := d.applyMigration(ctx, m); err != nil {
			return applied, fmt.Errorf("migration %s: %w", m.name, err)
		}
		d.logger.Debug().Int("version", m.version).Str("name", m.name).Msg("applied migration")
		applied++
	}

	return applied, nil
}

func (d *DB) applyMigration(ctx context.Context, m migration) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, m.sql); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`,
		m.version, time.Now().UTC().Format(timestampFormat),
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(timestampFormat, value)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

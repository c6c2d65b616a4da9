package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/molkit/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
)

// Store is a SQLite-based storage that provides access to
// metadata store interfaces through wrapper types.
type Store struct {
	db     *sql.DB
	path   string
	closed atomic.Bool
}

// NewStore opens or creates the database at dbPath, creating its parent
// directory if needed, and applies pending migrations.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: empty database path", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection. Later calls are no-ops, and the
// wrapper stores return domain.ErrStoreClosed afterwards.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ConversionStore returns a ConversionStore interface backed by this store.
func (s *Store) ConversionStore() driven.ConversionStore {
	return &conversionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_conversions.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Conversion Store ====================

// conversionStore implements driven.ConversionStore.
type conversionStore struct {
	store *Store
}

var _ driven.ConversionStore = (*conversionStore)(nil)

// Save stores or replaces a conversion.
func (s *conversionStore) Save(ctx context.Context, conversion *domain.Conversion) error {
	if s.store.closed.Load() {
		return domain.ErrStoreClosed
	}
	if conversion == nil || conversion.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO conversions (id, input, notation, canonical, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			input = excluded.input,
			notation = excluded.notation,
			canonical = excluded.canonical,
			created_at = excluded.created_at
	`, conversion.ID, conversion.Input, conversion.Notation, conversion.Canonical,
		conversion.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving conversion: %w", err)
	}
	return nil
}

// Get retrieves a conversion by ID.
func (s *conversionStore) Get(ctx context.Context, id string) (*domain.Conversion, error) {
	if s.store.closed.Load() {
		return nil, domain.ErrStoreClosed
	}
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, input, notation, canonical, created_at
		FROM conversions WHERE id = ?
	`, id)

	var c domain.Conversion
	if err := row.Scan(&c.ID, &c.Input, &c.Notation, &c.Canonical, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning conversion: %w", err)
	}
	return &c, nil
}

// List returns conversions newest first.
func (s *conversionStore) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	if s.store.closed.Load() {
		return nil, domain.ErrStoreClosed
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, input, notation, canonical, created_at
		FROM conversions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var result []domain.Conversion //nolint:prealloc // size unknown from query
	for rows.Next() {
		var c domain.Conversion
		if err := rows.Scan(&c.ID, &c.Input, &c.Notation, &c.Canonical, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Clear removes all conversions.
func (s *conversionStore) Clear(ctx context.Context) error {
	if s.store.closed.Load() {
		return domain.ErrStoreClosed
	}
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM conversions"); err != nil {
		return fmt.Errorf("clearing conversions: %w", err)
	}
	return nil
}

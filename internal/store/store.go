package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for student records.
// A Store is opened once per process and closed once at shutdown.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
// The schema is not touched; call EnsureSchema afterwards.
//
// Returns a ConnectionError if the file cannot be opened or configured.
func Open(path string) (*Store, error) {
	// Open database (creates file if doesn't exist)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, connectionError(fmt.Errorf("failed to open database: %w", err))
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, connectionError(fmt.Errorf("failed to connect to database: %w", err))
	}

	// One connection for the life of the process
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, connectionError(fmt.Errorf("failed to apply pragmas: %w", err))
	}

	return &Store{db: db, path: path}, nil
}

// EnsureSchema creates the students table if it does not exist and upgrades
// a table created without AUTOINCREMENT. Safe to call on every start. Returns a SchemaError on failure; the store
// stays open and later operations report their own errors.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return schemaError(fmt.Errorf("failed to execute schema: %w", err))
	}
	if err := s.upgradeLegacyTable(ctx); err != nil {
		return schemaError(fmt.Errorf("failed to upgrade students table: %w", err))
	}
	return nil
}

// upgradeLegacyTable rebuilds a students table declared without
// AUTOINCREMENT, as older databases were, so that the id of a deleted row is
// never handed out again. Rows keep their ids. The rebuild is one
// transaction; on failure the old table is left untouched.
func (s *Store) upgradeLegacyTable(ctx context.Context) error {
	var ddl string
	err := s.db.QueryRowContext(ctx,
		`SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'students'`,
	).Scan(&ddl)
	if err != nil {
		return fmt.Errorf("read students definition: %w", err)
	}
	if strings.Contains(strings.ToUpper(ddl), "AUTOINCREMENT") {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upgrade: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`ALTER TABLE students RENAME TO students_legacy`,
		schemaSQL,
		`INSERT INTO students (id, name, gender, state, well_dressed, well_behaved)
		 SELECT id, name, gender, state,
		        CASE WHEN well_dressed != 0 THEN 1 ELSE 0 END,
		        CASE WHEN well_behaved != 0 THEN 1 ELSE 0 END
		 FROM students_legacy
		 ORDER BY id`,
		`DROP TABLE students_legacy`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

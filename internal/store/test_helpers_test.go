package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/scholar/internal/record"
)

// createTestStore opens a store in a temp dir with the schema applied.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	return s
}

// mustCreate inserts a draft and fails the test on error.
func mustCreate(t *testing.T, s *Store, d record.Draft) int64 {
	t.Helper()
	id, err := s.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("Create(%+v) failed: %v", d, err)
	}
	return id
}

// rejectNameTrigger makes every insert with the given name fail.
func rejectNameTrigger(t *testing.T, s *Store, name string) {
	t.Helper()
	_, err := s.db.Exec(`
		CREATE TRIGGER reject_name BEFORE INSERT ON students
		WHEN NEW.name = '` + name + `'
		BEGIN
			SELECT RAISE(ABORT, 'rejected by test trigger');
		END
	`)
	if err != nil {
		t.Fatalf("create trigger failed: %v", err)
	}
}

func draft(name, gender, state string, dressed, behaved bool) record.Draft {
	return record.Draft{
		Name:        name,
		Gender:      gender,
		State:       state,
		WellDressed: dressed,
		WellBehaved: behaved,
	}
}

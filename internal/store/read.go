package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/scholar/internal/record"
)

// ListAll returns every student ordered by id.
// Returns an empty slice (not nil) when the store holds no records.
// On failure no partial list is returned.
func (s *Store) ListAll(ctx context.Context) ([]record.Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, gender, state, well_dressed, well_behaved
		FROM students
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, storageError("list", fmt.Errorf("query students: %w", err))
	}
	defer rows.Close()

	students := []record.Student{}
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, storageError("list", err)
		}
		students = append(students, st)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("list", fmt.Errorf("iterate students: %w", err))
	}

	return students, nil
}

// Count returns the number of stored students.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&n); err != nil {
		return 0, storageError("count", fmt.Errorf("count students: %w", err))
	}
	return n, nil
}

// scanStudent scans one row. Flags are read as integers; any non-zero value
// counts as set.
func scanStudent(rows *sql.Rows) (record.Student, error) {
	var (
		st      record.Student
		dressed int64
		behaved int64
	)
	if err := rows.Scan(&st.ID, &st.Name, &st.Gender, &st.State, &dressed, &behaved); err != nil {
		return record.Student{}, fmt.Errorf("scan student: %w", err)
	}
	st.WellDressed = dressed != 0
	st.WellBehaved = behaved != 0
	return st, nil
}

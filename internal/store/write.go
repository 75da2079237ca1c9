package store

import (
	"context"
	"fmt"

	"github.com/roach88/scholar/internal/record"
)

// Create normalizes d and inserts it as a new student record.
// Returns the id assigned by the database.
//
// The insert runs in autocommit mode, so the record is durable before the id
// is returned. A rejected insert returns a StorageError and does not consume
// an id.
func (s *Store) Create(ctx context.Context, d record.Draft) (int64, error) {
	n := d.Normalized()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO students (name, gender, state, well_dressed, well_behaved)
		VALUES (?, ?, ?, ?, ?)
	`,
		n.Name,
		n.Gender,
		n.State,
		record.Flag(n.WellDressed),
		record.Flag(n.WellBehaved),
	)
	if err != nil {
		return 0, storageError("create", fmt.Errorf("insert student: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageError("create", fmt.Errorf("last insert id: %w", err))
	}

	return id, nil
}

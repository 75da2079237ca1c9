package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/scholar/internal/record"
	"github.com/roach88/scholar/internal/store"
)

// seedDB stores drafts in a fresh database at path.
func seedDB(t *testing.T, path string, drafts ...record.Draft) {
	t.Helper()
	withStore(t, path, func(st *store.Store) {
		for _, d := range drafts {
			_, err := st.Create(context.Background(), d)
			require.NoError(t, err)
		}
	})
}

// rejectName installs a trigger that makes the database refuse inserts of
// the given (normalized) name.
func rejectName(t *testing.T, path, name string) {
	t.Helper()
	withStore(t, path, func(st *store.Store) {
		_, err := st.DB().Exec(`
			CREATE TRIGGER reject_name BEFORE INSERT ON students
			WHEN NEW.name = '` + name + `'
			BEGIN SELECT RAISE(ABORT, 'rejected by test'); END
		`)
		require.NoError(t, err)
	})
}

func withStore(t *testing.T, path string, fn func(*store.Store)) {
	t.Helper()
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.EnsureSchema(context.Background()))
	fn(st)
}

package testutil

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/roach88/scholar/internal/record"
	"github.com/roach88/scholar/internal/store"
)

// AdaObi is the maximum-award fixture: every bonus applies after
// normalization (51000 total).
var AdaObi = record.Draft{Name: "Ada Obi", Gender: "female", State: " osun ", WellDressed: true, WellBehaved: true}

// MusaBello is the minimum-award fixture (20000 total).
var MusaBello = record.Draft{Name: "Musa Bello", Gender: "Male", State: "kano"}

// OpenStore opens a store with schema in a temp dir and closes it on cleanup.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "scholar.db"))
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}
	return st
}

// Seed inserts drafts in order and returns their ids.
func Seed(t *testing.T, st *store.Store, drafts ...record.Draft) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(drafts))
	for _, d := range drafts {
		id, err := st.Create(context.Background(), d)
		if err != nil {
			t.Fatalf("Create(%+v) failed: %v", d, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// ErrMediumUnavailable is returned by FailingStore.
var ErrMediumUnavailable = errors.New("medium unavailable")

// FailingStore is a registry store whose every call fails with a
// StorageError wrapping ErrMediumUnavailable.
type FailingStore struct{}

// Create always fails.
func (FailingStore) Create(context.Context, record.Draft) (int64, error) {
	return 0, &store.Error{Kind: store.StorageError, Op: "create", Err: ErrMediumUnavailable}
}

// ListAll always fails.
func (FailingStore) ListAll(context.Context) ([]record.Student, error) {
	return nil, &store.Error{Kind: store.StorageError, Op: "list", Err: ErrMediumUnavailable}
}

package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/scholar/internal/award"
	"github.com/roach88/scholar/internal/record"
	"github.com/roach88/scholar/internal/store"
)

// Store is the persistence contract the registry depends on.
// *store.Store satisfies it.
type Store interface {
	Create(ctx context.Context, d record.Draft) (int64, error)
	ListAll(ctx context.Context) ([]record.Student, error)
}

// Entry is a stored student merged with its computed award.
// Both embedded structs flatten into one JSON object.
type Entry struct {
	record.Student
	award.Result
}

// Registry combines a store with the award calculator.
type Registry struct {
	store    Store
	notifier Notifier
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New creates a Registry over st. A nil notifier defaults to LogNotifier.
func New(st Store, n Notifier, opts ...Option) *Registry {
	r := &Registry{
		store:    st,
		notifier: n,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.notifier == nil {
		r.notifier = LogNotifier{Logger: r.logger}
	}
	return r
}

// Open opens the database at path and ensures its schema.
//
// A ConnectionError is returned to the caller, which must treat it as fatal.
// A SchemaError is only notified; the returned Registry is usable and its
// later operations report their own failures.
func Open(ctx context.Context, path string, n Notifier, opts ...Option) (*Registry, *store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}

	r := New(st, n, opts...)
	if err := st.EnsureSchema(ctx); err != nil {
		r.notifier.Notify(TitleDatabaseError, fmt.Errorf("error creating table: %w", err))
	}
	return r, st, nil
}

// Enroll stores d and returns the new id.
// On failure the error is notified and returned; nothing is stored.
func (r *Registry) Enroll(ctx context.Context, d record.Draft) (int64, error) {
	id, err := r.store.Create(ctx, d)
	if err != nil {
		err = fmt.Errorf("error inserting student: %w", err)
		r.notifier.Notify(TitleDatabaseError, err)
		return 0, err
	}
	r.logger.Debug("student enrolled", "id", id)
	return id, nil
}

// Roster returns every stored student with its award, in store order.
// If the store cannot be read the failure is notified and an empty,
// non-nil slice is returned.
func (r *Registry) Roster(ctx context.Context) []Entry {
	students, err := r.store.ListAll(ctx)
	if err != nil {
		r.notifier.Notify(TitleDatabaseError, fmt.Errorf("error fetching data: %w", err))
		return []Entry{}
	}

	entries := make([]Entry, 0, len(students))
	for _, s := range students {
		entries = append(entries, Entry{Student: s, Result: award.Calculate(s)})
	}
	r.logger.Debug("roster loaded", "records", len(entries))
	return entries
}

// Students returns the stored records without awards. Failures are notified
// and yield an empty slice, like Roster.
func (r *Registry) Students(ctx context.Context) []record.Student {
	students, err := r.store.ListAll(ctx)
	if err != nil {
		r.notifier.Notify(TitleDatabaseError, fmt.Errorf("error fetching data: %w", err))
		return []record.Student{}
	}
	return students
}

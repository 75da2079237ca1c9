package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/scholar/internal/registry"
	"github.com/roach88/scholar/internal/store"
)

// session is the per-command handle on the database.
type session struct {
	reg   *registry.Registry
	store *store.Store
}

// openSession opens the database and ensures its schema. Schema failures
// are logged and the command continues; a connection failure is returned
// as a command error.
func openSession(opts *RootOptions, cmd *cobra.Command, f *OutputFormatter) (*session, error) {
	logger := opts.Logger()
	logger.Debug("opening database", "path", opts.Database)

	reg, st, err := registry.Open(cmd.Context(), opts.Database,
		registry.LogNotifier{Logger: logger},
		registry.WithLogger(logger),
	)
	if err != nil {
		return nil, fail(f, ExitCommandError, ErrCodeConnection, "failed to open database", err)
	}
	return &session{reg: reg, store: st}, nil
}

// close releases the database. Errors are logged, not returned.
func (s *session) close(opts *RootOptions) {
	if err := s.store.Close(); err != nil {
		opts.Logger().Error("error closing database", "error", err)
	}
}

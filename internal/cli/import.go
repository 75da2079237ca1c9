package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/scholar/internal/region"
	"github.com/roach88/scholar/internal/roster"
)

// ImportRow is the outcome for one roster entry.
type ImportRow struct {
	Index int    `json:"index"` // 1-based position in the roster
	Name  string `json:"name"`
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// ImportResult summarizes an import.
type ImportResult struct {
	File     string      `json:"file"`
	Total    int         `json:"total"`
	Imported int         `json:"imported"`
	Rows     []ImportRow `json:"rows"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <roster-file>",
		Short: "Save every student in a roster file",
		Long: `Save every student listed in a YAML (.yaml, .yml) or CUE (.cue) roster.

The whole file is validated before anything is saved: each student needs a
non-blank name, gender and state, and flags must be booleans or 0/1.
Entries that the database rejects are reported and skipped; the rest are
saved. The command exits with status 1 if any entry was skipped.

Example roster:
  students:
    - name: Ada Obi
      gender: female
      state: osun
      well_dressed: true
      well_behaved: true

Examples:
  scholar import students.yaml
  scholar import students.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	logger := opts.Logger()

	entries, err := roster.Load(path)
	if err != nil {
		return fail(f, ExitCommandError, ErrCodeRoster, "invalid roster", err)
	}
	f.VerboseLog("Loaded %d roster entr(ies) from %s", len(entries), path)

	sess, err := openSession(opts, cmd, f)
	if err != nil {
		return err
	}
	defer sess.close(opts)

	result := ImportResult{File: path, Total: len(entries), Rows: []ImportRow{}}
	for i, e := range entries {
		d := e.Draft()
		row := ImportRow{Index: i + 1, Name: d.Normalized().Name}

		if !region.IsKnown(d.State) {
			logger.Warn("state is not in the region list, storing as entered",
				"index", row.Index, "state", d.Normalized().State)
		}

		id, err := sess.reg.Enroll(cmd.Context(), d)
		if err != nil {
			row.Error = err.Error()
		} else {
			row.ID = id
			result.Imported++
		}
		result.Rows = append(result.Rows, row)
	}

	logger.Info("roster imported", "file", path, "total", result.Total, "imported", result.Imported)

	if f.JSON() {
		if err := f.Success(result); err != nil {
			return err
		}
	} else {
		for _, row := range result.Rows {
			if row.Error != "" {
				fmt.Fprintf(f.Writer, "✗ %d. %s: %s\n", row.Index, row.Name, row.Error)
				continue
			}
			fmt.Fprintf(f.Writer, "✓ %d. %s (ID: %d)\n", row.Index, row.Name, row.ID)
		}
		fmt.Fprintf(f.Writer, "Imported %d of %d student(s).\n", result.Imported, result.Total)
	}

	if result.Imported < result.Total {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%s: %d of %d roster entries not saved", ErrCodeImport, result.Total-result.Imported, result.Total))
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/scholar/internal/award"
	"github.com/roach88/scholar/internal/record"
	"github.com/roach88/scholar/internal/region"
	"github.com/roach88/scholar/internal/registry"
	"github.com/roach88/scholar/internal/report"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Name        string
	Gender      string
	State       string
	WellDressed bool
	WellBehaved bool
}

// AddResult is the JSON payload of a successful add.
type AddResult struct {
	registry.Entry
	Breakdown []string `json:"breakdown"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a student and show their award",
		Long: `Save a student record and print the computed award.

Name is trimmed, gender is capitalized and state is upper-cased before the
record is stored. States outside the region list are stored as entered with
a warning.

Examples:
  scholar add --name "Ada Obi" --gender female --state osun --well-dressed --well-behaved
  scholar add --name "Musa Bello" --state kano --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "student name (required)")
	cmd.Flags().StringVar(&opts.Gender, "gender", "Male", "student gender")
	cmd.Flags().StringVar(&opts.State, "state", region.Default, "state of origin")
	cmd.Flags().BoolVar(&opts.WellDressed, "well-dressed", false, "student is well dressed")
	cmd.Flags().BoolVar(&opts.WellBehaved, "well-behaved", false, "student is well behaved")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)
	logger := opts.Logger()

	d := record.Draft{
		Name:        opts.Name,
		Gender:      opts.Gender,
		State:       opts.State,
		WellDressed: opts.WellDressed,
		WellBehaved: opts.WellBehaved,
	}

	if missing := d.Missing(); len(missing) > 0 {
		registry.LogNotifier{Logger: logger}.Notify(registry.TitleInputError,
			fmt.Errorf("missing mandatory fields: %s", strings.Join(missing, ", ")))
		_ = f.Error(ErrCodeInput, "Please fill in all mandatory fields (Name, Gender, State).", map[string]any{"missing": missing})
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: missing %s", ErrCodeInput, strings.Join(missing, ", ")))
	}

	if !region.IsKnown(d.State) {
		logger.Warn("state is not in the region list, storing as entered", "state", record.NormalizeState(d.State))
	}

	sess, err := openSession(opts.RootOptions, cmd, f)
	if err != nil {
		return err
	}
	defer sess.close(opts.RootOptions)

	id, err := sess.reg.Enroll(cmd.Context(), d)
	if err != nil {
		return fail(f, ExitFailure, ErrCodeStorage, "failed to save student", err)
	}

	n := d.Normalized()
	st := record.Student{
		ID:          id,
		Name:        n.Name,
		Gender:      n.Gender,
		State:       n.State,
		WellDressed: n.WellDressed,
		WellBehaved: n.WellBehaved,
	}
	result := AddResult{Entry: registry.Entry{Student: st, Result: award.Calculate(st)}}
	for _, r := range award.Breakdown(st) {
		result.Breakdown = append(result.Breakdown, r.Key)
	}

	if f.JSON() {
		return f.Success(result)
	}

	w := f.Writer
	fmt.Fprintf(w, "Student '%s' saved successfully (ID: %d).\n", st.Name, id)
	fmt.Fprintf(w, "  Total award:  %s\n", report.Money(result.TotalAward))
	fmt.Fprintf(w, "  Deduction:    %s\n", report.Money(result.Deduction))
	fmt.Fprintf(w, "  Net payment:  %s\n", report.Money(result.NetPayment))
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/scholar/internal/report"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the scholarship award report",
		Long: `Print every student with total award, deduction and net payment,
followed by grand totals.

If the database cannot be read the failure is logged and the report is
printed as having no records.

Examples:
  scholar report
  scholar report --db ./class.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, cmd)
		},
	}

	return cmd
}

func runReport(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	sess, err := openSession(opts, cmd, f)
	if err != nil {
		return err
	}
	defer sess.close(opts)

	rep := report.Build(sess.reg.Roster(cmd.Context()))
	f.VerboseLog("Loaded %d student(s) from %s", len(rep.Students), opts.Database)

	if f.JSON() {
		return f.Success(rep)
	}
	return report.WriteText(f.Writer, rep)
}

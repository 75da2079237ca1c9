package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored student records",
		Long: `List stored student records exactly as they were saved, without awards.

Examples:
  scholar list
  scholar list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	sess, err := openSession(opts, cmd, f)
	if err != nil {
		return err
	}
	defer sess.close(opts)

	students := sess.reg.Students(cmd.Context())

	if f.JSON() {
		return f.Success(students)
	}

	if len(students) == 0 {
		fmt.Fprintln(f.Writer, "No student records found.")
		return nil
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGENDER\tSTATE\tWELL DRESSED\tWELL BEHAVED")
	for _, s := range students {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.Gender, s.State, yesNo(s.WellDressed), yesNo(s.WellBehaved))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

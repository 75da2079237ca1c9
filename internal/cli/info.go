package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/scholar/internal/award"
	"github.com/roach88/scholar/internal/region"
	"github.com/roach88/scholar/internal/report"
)

// NewStatesCommand creates the states command.
func NewStatesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "states",
		Short:         "List the known states",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			if f.JSON() {
				return f.Success(region.States)
			}
			for _, s := range region.States {
				fmt.Fprintln(f.Writer, s)
			}
			return nil
		},
	}
}

// RulesResult is the JSON payload of the rules command.
type RulesResult struct {
	Rules            []award.Rule `json:"rules"`
	DeductionPercent int          `json:"deduction_percent"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rules",
		Short:         "Show the award rule table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			rules := award.Rules()
			if f.JSON() {
				return f.Success(RulesResult{Rules: rules, DeductionPercent: award.DeductionPercent})
			}

			tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tDESCRIPTION\tAMOUNT")
			for _, r := range rules {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, r.Description, report.Money(r.Amount))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(f.Writer, "\nDeduction: %d%% of the total award, paid to the Class Representative.\n", award.DeductionPercent)
			return nil
		},
	}
}

// StatusResult is the JSON payload of the status command.
type StatusResult struct {
	Database      string   `json:"database"`
	Students      int      `json:"students"`
	KnownStates   int      `json:"known_states"`
	UnknownStates []string `json:"unknown_states"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show database location and record counts",
		Long: `Show the database path, the number of stored students, and any stored
states that are not in the region list (probable typos that never earn the
OSUN bonus).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, cmd)
		},
	}
}

func runStatus(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	sess, err := openSession(opts, cmd, f)
	if err != nil {
		return err
	}
	defer sess.close(opts)

	count, err := sess.store.Count(cmd.Context())
	if err != nil {
		return fail(f, ExitFailure, ErrCodeStorage, "failed to count students", err)
	}

	students := sess.reg.Students(cmd.Context())
	states := make([]string, 0, len(students))
	for _, s := range students {
		states = append(states, s.State)
	}
	known, unknown := region.Coverage(states)
	if unknown == nil {
		unknown = []string{}
	}

	result := StatusResult{
		Database:      sess.store.Path(),
		Students:      count,
		KnownStates:   known,
		UnknownStates: unknown,
	}

	if f.JSON() {
		return f.Success(result)
	}

	fmt.Fprintf(f.Writer, "Database: %s\n", result.Database)
	fmt.Fprintf(f.Writer, "Students: %d\n", result.Students)
	if len(result.UnknownStates) > 0 {
		fmt.Fprintf(f.Writer, "Unknown states: %v\n", result.UnknownStates)
	}
	return nil
}

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/scholar/internal/runid"
)

// DefaultDatabase is the SQLite file used when --db is not given.
const DefaultDatabase = "scholarship_awards.db"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string

	// RunIDs overrides the run id generator (for testing).
	// If nil, defaults to runid.UUIDv7Generator.
	RunIDs runid.Generator

	runID  string
	logger *slog.Logger
}

// Logger returns the logger configured for the current run.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// RunID returns the identifier stamped on the current run.
func (o *RootOptions) RunID() string {
	return o.runID
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the scholar CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scholar",
		Short: "scholar - scholarship award manager",
		Long: `Record students and compute their scholarship awards.

Every student receives a base award, with bonuses for being well dressed,
well behaved, from OSUN state, or female. A 5% deduction is paid to the
class representative. Records live in a local SQLite file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				// The requested format is unusable, so report in text.
				f := &OutputFormatter{Format: "text", Writer: cmd.OutOrStdout()}
				return fail(f, ExitCommandError, ErrCodeFormat,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			setupLogging(opts, cmd)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", DefaultDatabase, "path to SQLite database")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewStatesCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))

	return cmd
}

// setupLogging installs a text handler on stderr, at debug level when
// --verbose is set, and tags every record with the run id.
func setupLogging(opts *RootOptions, cmd *cobra.Command) {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})

	gen := opts.RunIDs
	if gen == nil {
		gen = runid.UUIDv7Generator{}
	}
	opts.runID = gen.Generate()
	opts.logger = slog.New(handler).With("run", opts.runID)
	slog.SetDefault(opts.logger)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

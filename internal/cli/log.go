package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/boolsynth/boolsynth/internal/translog"
)

// LogOptions holds flags for the log subcommands.
type LogOptions struct {
	*RootOptions
	DB      string
	Session string
}

// NewLogCommand creates the log command group.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect the boundary transfer log",
	}

	cmd.AddCommand(newLogListCommand(rootOpts))

	return cmd
}

func newLogListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged transfers in seq order",
		Long: `List boundary transfers recorded in a transfer log database.

Output is deterministic (ordered by seq); filter to one session with
--session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			if _, err := os.Stat(opts.DB); err != nil {
				formatter.Failure("E230", err.Error(), nil)
				return WrapExitError(ExitCommandError, "transfer log not found", err)
			}

			store, err := translog.Open(opts.DB)
			if err != nil {
				formatter.Failure("E231", err.Error(), nil)
				return WrapExitError(ExitCommandError, "cannot open transfer log", err)
			}
			defer store.Close()

			ctx := cmd.Context()
			var entries []translog.Entry
			if opts.Session != "" {
				entries, err = store.BySession(ctx, opts.Session)
			} else {
				entries, err = store.List(ctx)
			}
			if err != nil {
				formatter.Failure("E232", err.Error(), nil)
				return WrapExitError(ExitCommandError, "cannot read transfer log", err)
			}

			formatter.VerboseLog("Found %d transfer(s)", len(entries))

			if rootOpts.Format == "json" {
				return formatter.Success(entries)
			}
			for _, e := range entries {
				// %.12s tolerates expr_id values shorter than the usual 64
				// hex digits; the schema does not constrain the column.
				formatter.Successf(nil, "%4d  %-36s  %-7s  %.12s  (%d wire bytes)",
					e.Seq, e.SessionToken, e.Direction, e.ExprID, len(e.Wire))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "translog.db", "transfer log database path")
	cmd.Flags().StringVar(&opts.Session, "session", "", "filter to one session token")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/boolsynth/boolsynth/internal/cell"
)

// LibOptions holds flags for the lib subcommands.
type LibOptions struct {
	*RootOptions
	Metric string
}

// NewLibCommand creates the lib command group.
func NewLibCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lib",
		Short: "Inspect and validate gate library files",
	}

	cmd.AddCommand(newLibValidateCommand(rootOpts))
	cmd.AddCommand(newLibShowCommand(rootOpts))

	return cmd
}

// libSummary is the JSON payload for lib command output.
type libSummary struct {
	Path   string         `json:"path"`
	Cells  int            `json:"cells"`
	Metric string         `json:"metric,omitempty"`
	Rules  []libCellEntry `json:"rules,omitempty"`
}

type libCellEntry struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Searcher string  `json:"searcher"`
	Applier  string  `json:"applier"`
}

func newLibValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <library-file>",
		Short: "Validate a gate library against its schema",
		Long: `Validate a JSON or YAML gate library file.

Checks the CUE schema (cell shape, non-negative costs, non-empty patterns)
plus duplicate-name and empty-library rules without loading the library
into a synthesis run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			lib, err := cell.LoadLibrary(args[0])
			if err != nil {
				formatter.Failure("E200", err.Error(), nil)
				return WrapExitError(ExitFailure, "library validation failed", err)
			}

			formatter.VerboseLog("Validated %d cell(s) in %s", len(lib), args[0])
			return formatter.Successf(
				libSummary{Path: args[0], Cells: len(lib)},
				"%s: %d cell(s) valid", args[0], len(lib),
			)
		},
	}
}

func newLibShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LibOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "show <library-file>",
		Short:         "List a library's cells with their metric cost",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			metric, err := cell.ParseMetric(opts.Metric)
			if err != nil {
				formatter.Failure("E210", err.Error(), nil)
				return WrapExitError(ExitCommandError, "invalid metric", err)
			}

			lib, err := cell.LoadLibrary(args[0])
			if err != nil {
				formatter.Failure("E200", err.Error(), nil)
				return WrapExitError(ExitFailure, "library validation failed", err)
			}

			summary := libSummary{Path: args[0], Cells: len(lib), Metric: metric.String()}
			for _, name := range lib.Names() {
				c := lib[name]
				summary.Rules = append(summary.Rules, libCellEntry{
					Name:     c.Name,
					Cost:     metric.Cost(c),
					Searcher: c.Searcher,
					Applier:  c.Applier,
				})
			}

			if rootOpts.Format == "json" {
				return formatter.Success(summary)
			}
			for _, r := range summary.Rules {
				formatter.Successf(nil, "%-10s %8.3f  %s => %s", r.Name, r.Cost, r.Searcher, r.Applier)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Metric, "metric", "m", "Area", "cost metric (Area|Power|Timing)")

	return cmd
}

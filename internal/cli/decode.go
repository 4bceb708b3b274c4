package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/boolsynth/boolsynth/internal/expr"
	"github.com/boolsynth/boolsynth/internal/wire"
)

// decodeResult is the JSON payload for the decode command.
type decodeResult struct {
	ExprID string    `json:"expr_id"`
	Sexpr  string    `json:"sexpr"`
	Depth  int       `json:"depth"`
	Size   int       `json:"size"`
	Node   expr.Node `json:"node"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <wire-file>",
		Short: "Decode a wire payload and print the expression tree",
		Long: `Decode a boundary wire payload from a file.

Prints the tree in s-expression form along with its content-addressed
expression ID. Fails with a shape diagnostic if the payload is malformed,
truncated, or from an unsupported format version.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			data, err := os.ReadFile(args[0])
			if err != nil {
				formatter.Failure("E220", err.Error(), nil)
				return WrapExitError(ExitCommandError, "cannot read wire file", err)
			}
			formatter.VerboseLog("Read %d byte(s) from %s", len(data), args[0])

			node, err := wire.Decode(data)
			if err != nil {
				formatter.Failure("E221", err.Error(), nil)
				return WrapExitError(ExitFailure, "malformed wire payload", err)
			}

			result := decodeResult{
				ExprID: wire.MustExprID(node),
				Sexpr:  node.String(),
				Depth:  node.Depth(),
				Size:   node.Size(),
				Node:   node,
			}

			if rootOpts.Format == "json" {
				return formatter.Success(result)
			}
			formatter.Successf(nil, "expr_id: %s", result.ExprID)
			formatter.Successf(nil, "depth: %d, nodes: %d", result.Depth, result.Size)
			return formatter.Successf(nil, "%s", result.Sexpr)
		},
	}
}

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolsynth/boolsynth/internal/expr"
	"github.com/boolsynth/boolsynth/internal/wire"
)

func writeWireFile(t *testing.T, n expr.Node) string {
	t.Helper()
	data, err := wire.Encode(n)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tree.bxw")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecodePrintsTree(t *testing.T) {
	tree := expr.NewAnd(expr.NewBit("a"), expr.NewNot(expr.NewSymbol("b")))
	path := writeWireFile(t, tree)

	out, err := runCommand(t, "decode", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(& a (! b))")
	assert.Contains(t, out, wire.MustExprID(tree))
	assert.Contains(t, out, "depth: 3, nodes: 4")
}

func TestDecodeJSONOutput(t *testing.T) {
	tree := expr.NewModule([]expr.Node{expr.NewLet("x", expr.NewBit("w1"))})
	path := writeWireFile(t, tree)

	out, err := runCommand(t, "--format", "json", "decode", path)
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   decodeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "(module (let x w1))", resp.Data.Sexpr)
	assert.True(t, tree.Equal(resp.Data.Node))
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := runCommand(t, "decode", filepath.Join(t.TempDir(), "absent.bxw"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDecodeMalformedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.bxw")
	require.NoError(t, os.WriteFile(path, []byte("not a wire payload"), 0o644))

	out, err := runCommand(t, "decode", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "error [E221]")
}

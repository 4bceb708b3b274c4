package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolsynth/boolsynth/internal/expr"
)

func TestEncodeLeafBytes(t *testing.T) {
	data, err := Encode(expr.NewBit("a"))
	require.NoError(t, err)

	want := []byte{
		'B', 'X', 1, // header
		5,        // bit kind tag
		1, 'a',   // label
		0,        // no children
	}
	assert.Equal(t, want, data)
}

func TestEncodeAndBytes(t *testing.T) {
	data, err := Encode(expr.NewAnd(expr.NewBit("a"), expr.NewSymbol("b")))
	require.NoError(t, err)

	want := []byte{
		'B', 'X', 1,
		2, 1, '&', 2, // and node, two children
		5, 1, 'a', 0, // bit a
		6, 1, 'b', 0, // symbol b
	}
	assert.Equal(t, want, data)
}

func TestEncodeEmptyModuleBytes(t *testing.T) {
	data, err := Encode(expr.NewModule(nil))
	require.NoError(t, err)

	want := []byte{'B', 'X', 1, 0, 6, 'm', 'o', 'd', 'u', 'l', 'e', 0}
	assert.Equal(t, want, data)
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	_, err := Encode(expr.Node{Kind: expr.Kind(42), Label: "?"})
	assert.True(t, IsCodecError(err, ErrCodeUnknownKind))
}

func TestEncodeRejectsArityViolation(t *testing.T) {
	// Hand-assembled node bypassing the builders: an and with one child.
	bad := expr.Node{
		Kind:     expr.KindAnd,
		Label:    expr.LabelAnd,
		Children: []expr.Node{expr.NewBit("a")},
	}
	_, err := Encode(bad)
	assert.True(t, IsCodecError(err, ErrCodeArity))

	// Leaves with children are equally malformed.
	bad = expr.Node{Kind: expr.KindBit, Label: "a", Children: []expr.Node{expr.NewBit("b")}}
	_, err = Encode(bad)
	assert.True(t, IsCodecError(err, ErrCodeArity))
}

func TestRoundTripDeepChain(t *testing.T) {
	// Depth 50 negation chain.
	n := expr.NewSymbol("x")
	for i := 0; i < 49; i++ {
		n = expr.NewNot(n)
	}
	require.Equal(t, 50, n.Depth())

	data, err := Encode(n)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, n.Equal(back))
}

func TestRoundTripWideModule(t *testing.T) {
	// Fan-out 8 at each of three module levels, mixed labels.
	leaf := func(i int) expr.Node {
		names := []string{"", "a", "w1", "résultat", "信号", "x y", "!", "&"}
		return expr.NewBit(names[i%len(names)])
	}

	var stmts []expr.Node
	for i := 0; i < 8; i++ {
		var inner []expr.Node
		for j := 0; j < 8; j++ {
			inner = append(inner, expr.NewLet("n", expr.NewOr(leaf(i), expr.NewNot(leaf(j)))))
		}
		stmts = append(stmts, expr.NewModule(inner))
	}
	root := expr.NewModule(stmts)

	data, err := Encode(root)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, root.Equal(back))
}

func TestRoundTripPreservesLabelBytes(t *testing.T) {
	labels := []string{"", "a", "\x00", "é", "é", " ", ` `}

	for _, label := range labels {
		n := expr.NewSymbol(label)
		data, err := Encode(n)
		require.NoError(t, err)

		back, err := Decode(data)
		require.NoError(t, err)

		// Byte-for-byte: the wire codec never normalizes names.
		assert.Equal(t, label, back.Label)
	}
}

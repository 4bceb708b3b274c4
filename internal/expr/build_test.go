package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModulePreservesStatementOrder(t *testing.T) {
	stmts := []Node{NewBit("a"), NewBit("b"), NewBit("c")}

	m := NewModule(stmts)

	assert.Equal(t, KindModule, m.Kind)
	assert.Equal(t, LabelModule, m.Label)
	require.Len(t, m.Children, 3)
	assert.Equal(t, "a", m.Children[0].Label)
	assert.Equal(t, "b", m.Children[1].Label)
	assert.Equal(t, "c", m.Children[2].Label)
}

func TestNewModuleEmpty(t *testing.T) {
	m := NewModule(nil)

	assert.Equal(t, KindModule, m.Kind)
	assert.Empty(t, m.Children)

	m = NewModule([]Node{})
	assert.Empty(t, m.Children)
}

func TestNewModuleCopiesInput(t *testing.T) {
	stmts := []Node{NewBit("a"), NewBit("b")}
	m := NewModule(stmts)

	// Mutating the caller's slice must not reach into the built tree.
	stmts[0] = NewBit("mutated")

	assert.Equal(t, "a", m.Children[0].Label)
}

func TestNewLetUsesDistinctKind(t *testing.T) {
	let := NewLet("x", NewBit("w1"))

	assert.Equal(t, KindLet, let.Kind)
	assert.Equal(t, "x", let.Label)
	require.Len(t, let.Children, 1)
	assert.Equal(t, KindBit, let.Children[0].Kind)

	// A let must never collapse into a module shape; an earlier shim's
	// module tag on let-bindings was a defect. Fail loudly if the two kinds
	// ever become indistinguishable.
	m := NewModule([]Node{NewBit("w1")})
	assert.NotEqual(t, m.Kind, let.Kind, "let and module kinds collapsed")
}

func TestNewAndPreservesOperandOrder(t *testing.T) {
	a, b := NewBit("a"), NewBit("b")

	n := NewAnd(a, b)

	assert.Equal(t, KindAnd, n.Kind)
	assert.Equal(t, LabelAnd, n.Label)
	require.Len(t, n.Children, 2)
	assert.True(t, n.Children[0].Equal(a))
	assert.True(t, n.Children[1].Equal(b))

	// Swapped operands build a different tree; nothing gets reordered.
	assert.False(t, NewAnd(b, a).Equal(n))
}

func TestNewOrPreservesOperandOrder(t *testing.T) {
	a, b := NewSymbol("a"), NewSymbol("b")

	n := NewOr(a, b)

	assert.Equal(t, KindOr, n.Kind)
	assert.Equal(t, LabelOr, n.Label)
	require.Len(t, n.Children, 2)
	assert.True(t, n.Children[0].Equal(a))
	assert.True(t, n.Children[1].Equal(b))
}

func TestNewNotNoImplicitSimplification(t *testing.T) {
	x := NewBit("x")

	single := NewNot(x)
	double := NewNot(single)

	// Double negation stays in the tree; elimination belongs to the
	// rewrite engine, not the builders.
	assert.Equal(t, x.Depth()+1, single.Depth())
	assert.Equal(t, x.Depth()+2, double.Depth())
	require.Len(t, double.Children, 1)
	assert.True(t, double.Children[0].Equal(single))
}

func TestLeafNamesRoundTrip(t *testing.T) {
	names := []string{"a", "", "w1", "résultat", "信号", "a b\tc", "\x00nul"}

	for _, name := range names {
		bit := NewBit(name)
		assert.Equal(t, KindBit, bit.Kind)
		assert.Equal(t, name, bit.Label)
		assert.Empty(t, bit.Children)

		sym := NewSymbol(name)
		assert.Equal(t, KindSymbol, sym.Kind)
		assert.Equal(t, name, sym.Label)
		assert.Empty(t, sym.Children)
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	build := func() Node {
		return NewModule([]Node{
			NewLet("x", NewAnd(NewBit("a"), NewNot(NewSymbol("b")))),
			NewOr(NewSymbol("x"), NewBit("c")),
		})
	}

	first := build()
	second := build()

	assert.True(t, first.Equal(second))
}

func TestAndBitNotSymbolShape(t *testing.T) {
	n := NewAnd(NewBit("a"), NewNot(NewSymbol("b")))

	want := Node{
		Kind:  KindAnd,
		Label: "&",
		Children: []Node{
			{Kind: KindBit, Label: "a", Children: []Node{}},
			{Kind: KindNot, Label: "!", Children: []Node{
				{Kind: KindSymbol, Label: "b", Children: []Node{}},
			}},
		},
	}

	assert.True(t, n.Equal(want))
}

func TestModuleWithLetStatement(t *testing.T) {
	m := NewModule([]Node{NewLet("x", NewBit("w1"))})

	require.Len(t, m.Children, 1)
	stmt := m.Children[0]
	assert.Equal(t, KindLet, stmt.Kind)
	assert.Equal(t, "x", stmt.Label)
	require.Len(t, stmt.Children, 1)
	assert.Equal(t, KindBit, stmt.Children[0].Kind)
	assert.Equal(t, "w1", stmt.Children[0].Label)
}

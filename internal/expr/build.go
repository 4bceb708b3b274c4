package expr

// Builders construct IR nodes bottom-up. Each builder is pure and total:
// arity is fixed by the signature, there is no shared state, and every call
// allocates a fresh node. Incoming child slices are copied so the caller
// retains no alias into the built tree.

// NewModule builds a top-level module from zero or more statements.
// Statement order is preserved exactly; it is semantically meaningful
// (declaration order).
func NewModule(stmts []Node) Node {
	children := make([]Node, len(stmts))
	copy(children, stmts)
	return Node{Kind: KindModule, Label: LabelModule, Children: children}
}

// NewLet binds name to the given expression.
//
// An earlier boundary shim tagged let-bindings with the module kind, which
// made the two shapes indistinguishable downstream. The engine's language
// has a distinct let construct with its own rewrite rules, so this builder
// uses the dedicated KindLet tag. See CHANGELOG.md.
func NewLet(name string, bound Node) Node {
	return Node{Kind: KindLet, Label: name, Children: []Node{bound}}
}

// NewAnd builds a binary conjunction. Operand order is preserved as given;
// the rewrite engine handles commutativity, not this layer.
func NewAnd(lhs, rhs Node) Node {
	return Node{Kind: KindAnd, Label: LabelAnd, Children: []Node{lhs, rhs}}
}

// NewOr builds a binary disjunction. Operand order is preserved as given.
func NewOr(lhs, rhs Node) Node {
	return Node{Kind: KindOr, Label: LabelOr, Children: []Node{lhs, rhs}}
}

// NewNot builds a unary negation. No simplification happens here: negating
// twice yields a two-level tree, and double-negation elimination is the
// rewrite engine's job.
func NewNot(operand Node) Node {
	return Node{Kind: KindNot, Label: LabelNot, Children: []Node{operand}}
}

// NewBit builds a leaf referring to a physical bit or wire.
// The name round-trips byte-for-byte, including empty and non-ASCII names.
func NewBit(name string) Node {
	return Node{Kind: KindBit, Label: name, Children: []Node{}}
}

// NewSymbol builds a leaf referring to a free variable or macro symbol.
func NewSymbol(name string) Node {
	return Node{Kind: KindSymbol, Label: name, Children: []Node{}}
}

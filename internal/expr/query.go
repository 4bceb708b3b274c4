package expr

import (
	"errors"
	"fmt"
)

// ErrWrongKind is returned (wrapped) by queries applied to a node of the
// wrong kind. Match with errors.Is.
var ErrWrongKind = errors.New("wrong node kind")

// ModuleBody returns the statements of a module node.
// The returned slice is a copy; the node remains immutable.
func ModuleBody(n Node) ([]Node, error) {
	if n.Kind != KindModule {
		return nil, fmt.Errorf("module body: got %s: %w", n.Kind, ErrWrongKind)
	}
	body := make([]Node, len(n.Children))
	copy(body, n.Children)
	return body, nil
}

// LetName returns the bound variable name of a let node.
func LetName(n Node) (string, error) {
	if n.Kind != KindLet {
		return "", fmt.Errorf("let name: got %s: %w", n.Kind, ErrWrongKind)
	}
	return n.Label, nil
}

// LetExpr returns the bound expression of a let node.
func LetExpr(n Node) (Node, error) {
	if n.Kind != KindLet {
		return Node{}, fmt.Errorf("let expr: got %s: %w", n.Kind, ErrWrongKind)
	}
	return n.Children[0], nil
}

// Operands returns the two operands of an and/or node in original order.
func Operands(n Node) (lhs, rhs Node, err error) {
	if n.Kind != KindAnd && n.Kind != KindOr {
		return Node{}, Node{}, fmt.Errorf("operands: got %s: %w", n.Kind, ErrWrongKind)
	}
	return n.Children[0], n.Children[1], nil
}

// NotOperand returns the operand of a not node.
func NotOperand(n Node) (Node, error) {
	if n.Kind != KindNot {
		return Node{}, fmt.Errorf("not operand: got %s: %w", n.Kind, ErrWrongKind)
	}
	return n.Children[0], nil
}

// IsLeaf reports whether n is a bit or symbol leaf.
func IsLeaf(n Node) bool {
	return n.Kind == KindBit || n.Kind == KindSymbol
}

// IsSymbol reports whether n is a symbol leaf.
func IsSymbol(n Node) bool {
	return n.Kind == KindSymbol
}

// SymbolName returns the name of a symbol leaf.
func SymbolName(n Node) (string, error) {
	if n.Kind != KindSymbol {
		return "", fmt.Errorf("symbol name: got %s: %w", n.Kind, ErrWrongKind)
	}
	return n.Label, nil
}

// BitName returns the name of a bit leaf.
func BitName(n Node) (string, error) {
	if n.Kind != KindBit {
		return "", fmt.Errorf("bit name: got %s: %w", n.Kind, ErrWrongKind)
	}
	return n.Label, nil
}

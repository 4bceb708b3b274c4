package expr

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the seven node shapes of the boolean IR.
type Kind uint8

const (
	// KindModule is a top-level container of statements (0..N children).
	KindModule Kind = iota

	// KindLet binds a name to an expression (exactly 1 child).
	KindLet

	// KindAnd is binary conjunction (exactly 2 children).
	KindAnd

	// KindOr is binary disjunction (exactly 2 children).
	KindOr

	// KindNot is unary negation (exactly 1 child).
	KindNot

	// KindBit is a leaf naming a physical bit or wire (0 children).
	KindBit

	// KindSymbol is a leaf naming a free variable or macro symbol (0 children).
	KindSymbol
)

// Fixed operator labels. Leaf and Let labels carry user-supplied names.
const (
	LabelModule = "module"
	LabelAnd    = "&"
	LabelOr     = "|"
	LabelNot    = "!"
)

// kindNames maps each Kind to its stable wire name.
// These names are part of the boundary contract; never reorder or rename.
var kindNames = [...]string{
	KindModule: "module",
	KindLet:    "let",
	KindAnd:    "and",
	KindOr:     "or",
	KindNot:    "not",
	KindBit:    "bit",
	KindSymbol: "symbol",
}

// Valid reports whether k is one of the seven defined kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// String returns the stable wire name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Arity returns the required child count for the kind,
// or -1 for KindModule which accepts any number of statements.
func (k Kind) Arity() int {
	switch k {
	case KindModule:
		return -1
	case KindLet, KindNot:
		return 1
	case KindAnd, KindOr:
		return 2
	case KindBit, KindSymbol:
		return 0
	default:
		return 0
	}
}

// MarshalJSON encodes the kind as its stable wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", uint8(k))
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its stable wire name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range kindNames {
		if n == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", name)
}

// Node is one node of a boolean-expression tree.
//
// Nodes are values: handing a Node to another component hands over the whole
// subtree. Construct nodes only through the builders in this package; a
// hand-assembled Node carries no arity guarantee.
type Node struct {
	Kind     Kind   `json:"kind"`
	Label    string `json:"label"`
	Children []Node `json:"children"`
}

// Equal reports structural deep equality of two trees.
// Storage identity is irrelevant; two independently built trees with the
// same shape, labels, and child order are equal.
func (n Node) Equal(other Node) bool {
	if n.Kind != other.Kind || n.Label != other.Label {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Depth returns the height of the tree rooted at n. A leaf has depth 1.
func (n Node) Depth() int {
	max := 0
	for i := range n.Children {
		if d := n.Children[i].Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Size returns the total number of nodes in the tree rooted at n.
func (n Node) Size() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].Size()
	}
	return total
}

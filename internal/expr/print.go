package expr

import "strings"

// String renders the tree as an s-expression in the engine's textual form:
// interior nodes as "(label child ...)", leaves as their bare label, and
// let-bindings as "(let name expr)". An empty module renders as "(module)".
func (n Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Node) write(b *strings.Builder) {
	if IsLeaf(n) {
		b.WriteString(n.Label)
		return
	}
	b.WriteByte('(')
	if n.Kind == KindLet {
		b.WriteString("let ")
	}
	b.WriteString(n.Label)
	for i := range n.Children {
		b.WriteByte(' ')
		n.Children[i].write(b)
	}
	b.WriteByte(')')
}

// Pretty renders the tree with one node per line and two-space indentation.
// Intended for diagnostics; the compact form is String.
func (n Node) Pretty() string {
	var b strings.Builder
	n.pretty(&b, 0)
	return b.String()
}

func (n Node) pretty(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	if IsLeaf(n) {
		b.WriteString(n.Kind.String())
		b.WriteByte(' ')
		b.WriteString(n.Label)
		b.WriteByte('\n')
		return
	}
	b.WriteString(n.Kind.String())
	if n.Kind == KindLet {
		b.WriteByte(' ')
		b.WriteString(n.Label)
	}
	b.WriteByte('\n')
	for i := range n.Children {
		n.Children[i].pretty(b, depth+1)
	}
}

package wire

import (
	"encoding/binary"

	"github.com/boolsynth/boolsynth/internal/expr"
)

// Wire format header. The magic identifies a boolsynth expression payload;
// the version byte gates incompatible revisions of the node encoding.
const (
	magic0 = 'B'
	magic1 = 'X'

	// FormatVersion is the current wire format revision.
	FormatVersion = 1
)

// Encode serializes a tree into a self-contained wire payload.
//
// Layout: magic (2 bytes), version (1 byte), then the root node. Each node
// is a kind tag byte, a uvarint-length-prefixed UTF-8 label, a uvarint
// child count, and the children in order.
//
// Encode checks shape (valid kind tags, arity matching the tag) so a
// hand-assembled malformed Node cannot cross the boundary silently.
func Encode(root expr.Node) ([]byte, error) {
	buf := make([]byte, 0, 3+root.Size()*8)
	buf = append(buf, magic0, magic1, FormatVersion)
	return appendNode(buf, root)
}

func appendNode(buf []byte, n expr.Node) ([]byte, error) {
	if !n.Kind.Valid() {
		return nil, codecErr(ErrCodeUnknownKind, -1, "kind tag %d", uint8(n.Kind))
	}
	if want := n.Kind.Arity(); want >= 0 && len(n.Children) != want {
		return nil, codecErr(ErrCodeArity, -1, "%s node has %d children, want %d",
			n.Kind, len(n.Children), want)
	}

	buf = append(buf, byte(n.Kind))
	buf = binary.AppendUvarint(buf, uint64(len(n.Label)))
	buf = append(buf, n.Label...)
	buf = binary.AppendUvarint(buf, uint64(len(n.Children)))

	var err error
	for i := range n.Children {
		if buf, err = appendNode(buf, n.Children[i]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

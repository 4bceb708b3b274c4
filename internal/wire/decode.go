package wire

import (
	"encoding/binary"

	"github.com/boolsynth/boolsynth/internal/expr"
)

// Limits bounds resource use while decoding an untrusted payload.
type Limits struct {
	// MaxDepth bounds tree height. Zero means the default.
	MaxDepth int

	// MaxNodes bounds the total node count. Zero means the default.
	MaxNodes int

	// MaxLabelBytes bounds a single label's byte length. Zero means the default.
	MaxLabelBytes int
}

// DefaultLimits are generous for synthesizer workloads while keeping a
// hostile payload from exhausting memory.
var DefaultLimits = Limits{
	MaxDepth:      1024,
	MaxNodes:      1 << 20,
	MaxLabelBytes: 1 << 16,
}

func (l Limits) withDefaults() Limits {
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultLimits.MaxDepth
	}
	if l.MaxNodes <= 0 {
		l.MaxNodes = DefaultLimits.MaxNodes
	}
	if l.MaxLabelBytes <= 0 {
		l.MaxLabelBytes = DefaultLimits.MaxLabelBytes
	}
	return l
}

// Decode deserializes a wire payload produced by Encode, using DefaultLimits.
// The result deep-copies out of data; the payload may be reused afterwards.
func Decode(data []byte) (expr.Node, error) {
	return DecodeWithLimits(data, DefaultLimits)
}

// DecodeWithLimits is Decode with caller-supplied resource limits.
//
// Decoding is all-or-nothing: any malformed byte yields a CodecError and no
// partial tree.
func DecodeWithLimits(data []byte, lim Limits) (expr.Node, error) {
	if len(data) < 3 {
		return expr.Node{}, codecErr(ErrCodeTruncated, len(data), "payload shorter than header")
	}
	if data[0] != magic0 || data[1] != magic1 {
		return expr.Node{}, codecErr(ErrCodeBadMagic, 0, "got %#x %#x", data[0], data[1])
	}
	if data[2] != FormatVersion {
		return expr.Node{}, codecErr(ErrCodeBadVersion, 2, "version %d, want %d", data[2], FormatVersion)
	}

	d := &decoder{data: data, pos: 3, lim: lim.withDefaults()}
	root, err := d.node(1)
	if err != nil {
		return expr.Node{}, err
	}
	if d.pos != len(data) {
		return expr.Node{}, codecErr(ErrCodeTrailing, d.pos, "%d bytes after root node", len(data)-d.pos)
	}
	return root, nil
}

type decoder struct {
	data  []byte
	pos   int
	nodes int
	lim   Limits
}

func (d *decoder) node(depth int) (expr.Node, error) {
	if depth > d.lim.MaxDepth {
		return expr.Node{}, codecErr(ErrCodeLimit, d.pos, "depth exceeds %d", d.lim.MaxDepth)
	}
	d.nodes++
	if d.nodes > d.lim.MaxNodes {
		return expr.Node{}, codecErr(ErrCodeLimit, d.pos, "node count exceeds %d", d.lim.MaxNodes)
	}

	if d.pos >= len(d.data) {
		return expr.Node{}, codecErr(ErrCodeTruncated, d.pos, "missing kind tag")
	}
	kind := expr.Kind(d.data[d.pos])
	kindOff := d.pos
	d.pos++
	if !kind.Valid() {
		return expr.Node{}, codecErr(ErrCodeUnknownKind, kindOff, "kind tag %d", uint8(kind))
	}

	label, err := d.str()
	if err != nil {
		return expr.Node{}, err
	}

	count, countOff, err := d.uvarint()
	if err != nil {
		return expr.Node{}, err
	}
	if want := kind.Arity(); want >= 0 && count != uint64(want) {
		return expr.Node{}, codecErr(ErrCodeArity, countOff, "%s node has %d children, want %d",
			kind, count, want)
	}
	if count > uint64(d.lim.MaxNodes) {
		return expr.Node{}, codecErr(ErrCodeLimit, countOff, "child count %d exceeds node limit", count)
	}

	// The claimed count is untrusted until the children actually decode, so
	// the allocation is capped by what the remaining bytes could hold (a
	// child occupies at least two bytes). A short payload then fails with
	// TRUNCATED instead of reserving memory for phantom children first.
	children := make([]expr.Node, 0, min(int(count), (len(d.data)-d.pos)/2))
	for i := uint64(0); i < count; i++ {
		child, err := d.node(depth + 1)
		if err != nil {
			return expr.Node{}, err
		}
		children = append(children, child)
	}
	return expr.Node{Kind: kind, Label: label, Children: children}, nil
}

func (d *decoder) str() (string, error) {
	n, off, err := d.uvarint()
	if err != nil {
		return "", err
	}
	if n > uint64(d.lim.MaxLabelBytes) {
		return "", codecErr(ErrCodeLimit, off, "label length %d exceeds %d", n, d.lim.MaxLabelBytes)
	}
	if d.pos+int(n) > len(d.data) {
		return "", codecErr(ErrCodeTruncated, d.pos, "label needs %d bytes, %d remain", n, len(d.data)-d.pos)
	}
	s := string(d.data[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

func (d *decoder) uvarint() (uint64, int, error) {
	off := d.pos
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, off, codecErr(ErrCodeTruncated, off, "bad uvarint")
	}
	d.pos += n
	return v, off, nil
}

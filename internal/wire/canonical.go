package wire

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/unicode/norm"

	"github.com/boolsynth/boolsynth/internal/expr"
)

// MarshalCanonical produces RFC 8785 canonical JSON for a tree. This is the
// ONLY serialization used for content-addressed identity; the binary wire
// format is for boundary transfer, not hashing.
//
// Properties:
//  1. Object keys in UTF-16 code-unit order. A node has the fixed key set
//     {children, kind, label}, already in canonical order.
//  2. No HTML escaping; & < > stay literal, operator labels depend on it.
//  3. Strings NFC-normalized at the serialization boundary.
//  4. U+2028 and U+2029 are not escaped, per RFC 8785.
func MarshalCanonical(root expr.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonicalNode(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonicalNode(buf *bytes.Buffer, n expr.Node) error {
	if !n.Kind.Valid() {
		return codecErr(ErrCodeUnknownKind, -1, "kind tag %d", uint8(n.Kind))
	}

	buf.WriteString(`{"children":[`)
	for i := range n.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeCanonicalNode(buf, n.Children[i]); err != nil {
			return err
		}
	}
	buf.WriteString(`],"kind":`)

	kind, err := canonicalString(n.Kind.String())
	if err != nil {
		return err
	}
	buf.Write(kind)
	buf.WriteString(`,"label":`)

	label, err := canonicalString(n.Label)
	if err != nil {
		return err
	}
	buf.Write(label)
	buf.WriteByte('}')
	return nil
}

// canonicalString encodes s as an RFC 8785 JSON string: NFC normalized,
// no HTML escaping, and literal U+2028/U+2029.
func canonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder appends a newline; drop it.
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	// Go's encoder escapes U+2028/U+2029 for JavaScript embedding, which
	// RFC 8785 forbids. Fold those escapes back to literal characters.
	return unescapeLineSeparators(out), nil
}

// unescapeLineSeparators rewrites   and   escape sequences to the
// literal characters. A sequence preceded by an odd number of backslashes is
// a literal backslash followed by the text "u202x" and must stay escaped.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	backslashes := 0
	for i := 0; i < len(data); {
		if data[i] == '\\' && i+5 < len(data) && backslashes%2 == 0 &&
			bytes.HasPrefix(data[i+1:], []byte("u202")) &&
			(data[i+5] == '8' || data[i+5] == '9') {
			if data[i+5] == '8' {
				out = append(out, " "...)
			} else {
				out = append(out, " "...)
			}
			i += 6
			backslashes = 0
			continue
		}
		if data[i] == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		out = append(out, data[i])
		i++
	}
	return out
}

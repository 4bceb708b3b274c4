package wire

import (
	"errors"
	"fmt"
)

// CodecErrorCode categorizes encode/decode failures.
type CodecErrorCode string

const (
	// ErrCodeBadMagic indicates the payload does not start with the wire magic.
	ErrCodeBadMagic CodecErrorCode = "BAD_MAGIC"

	// ErrCodeBadVersion indicates an unsupported format version.
	ErrCodeBadVersion CodecErrorCode = "BAD_VERSION"

	// ErrCodeUnknownKind indicates an out-of-range kind tag.
	ErrCodeUnknownKind CodecErrorCode = "UNKNOWN_KIND"

	// ErrCodeArity indicates a child count inconsistent with the kind tag.
	ErrCodeArity CodecErrorCode = "ARITY_MISMATCH"

	// ErrCodeTruncated indicates the payload ended mid-node.
	ErrCodeTruncated CodecErrorCode = "TRUNCATED"

	// ErrCodeTrailing indicates bytes remain after the root node.
	ErrCodeTrailing CodecErrorCode = "TRAILING_DATA"

	// ErrCodeLimit indicates a decode limit (depth, nodes, label size) was hit.
	ErrCodeLimit CodecErrorCode = "LIMIT_EXCEEDED"
)

// CodecError is a fatal wire encode/decode failure. A failed transfer never
// yields a partial tree; callers get either a whole value or this error.
type CodecError struct {
	Code    CodecErrorCode
	Offset  int // byte offset in the payload, -1 when not applicable
	Message string
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Code, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCodecError reports whether err is (or wraps) a CodecError with the code.
func IsCodecError(err error, code CodecErrorCode) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

func codecErr(code CodecErrorCode, offset int, format string, args ...any) *CodecError {
	return &CodecError{Code: code, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

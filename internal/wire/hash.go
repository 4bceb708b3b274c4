package wire

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/boolsynth/boolsynth/internal/expr"
)

// DomainExpr is the domain prefix for expression identity.
// The version suffix enables future hash or encoding migration.
const DomainExpr = "boolsynth/expr/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null separator prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ExprID computes the content-addressed identity of a tree from its
// canonical JSON form. Structurally equal trees always share an ID,
// regardless of where or when they were built.
func ExprID(root expr.Node) (string, error) {
	canonical, err := MarshalCanonical(root)
	if err != nil {
		return "", fmt.Errorf("ExprID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainExpr, canonical), nil
}

// MustExprID is like ExprID but panics on error.
// Use only in tests or when the tree is known to be builder-made.
func MustExprID(root expr.Node) string {
	id, err := ExprID(root)
	if err != nil {
		panic(err)
	}
	return id
}

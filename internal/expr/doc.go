// Package expr defines the boolean-expression intermediate representation
// shared with the synthesis engine.
//
// This package contains the node type, its builders, and read-only queries.
// All other internal packages import expr; expr imports nothing internal.
// This ensures the IR remains the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - The kind set is CLOSED: exactly seven kinds, discriminated by Kind.
//     The engine pattern-matches exhaustively; new kinds require lockstep
//     updates on both sides of the boundary.
//   - Nodes are immutable once built and form trees, never DAGs: every
//     subtree is owned by exactly one parent.
//   - Arity is enforced by builder signatures, not runtime checks; a
//     malformed tree is unrepresentable through this API.
package expr

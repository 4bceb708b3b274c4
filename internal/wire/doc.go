// Package wire implements the boundary encoding for expression trees.
//
// Trees cross the synthesis boundary by value: the encoder produces a
// self-contained byte sequence with no pointers, no termination sentinels,
// and no aliasing into the source tree. Strings are length-prefixed UTF-8;
// child sequences are a count followed by the children in order. The format
// carries a magic and a version byte so either side can reject a peer
// speaking a different revision.
//
// The codec validates shape only: known kind tags, arity consistent with
// the tag, and size/depth sanity limits. Semantic validity is the builder
// API's responsibility and is established before a tree is ever eligible
// for transfer.
//
// The package also provides an RFC 8785 canonical JSON form of a tree and
// a SHA-256 content-addressed identity derived from it, used by the
// transfer log for idempotency and by diagnostics.
package wire

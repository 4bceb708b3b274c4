// Package synth manages the call boundary to the synthesis engine.
//
// The engine itself (equality-saturation rewriting and cost extraction) is
// an external collaborator; this package defines only its interface and the
// transfer discipline: a Session encodes a tree to the wire format, hands
// it over in one blocking call, and decodes the reply. Transfers are
// all-or-nothing: a failure at any stage yields a TransferError and no
// partial tree ever escapes.
//
// Sessions are identified by time-sortable UUIDv7 tokens and can record
// every transfer to a translog.Store for deterministic replay.
package synth

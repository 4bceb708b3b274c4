// Package translog provides SQLite-backed durable logging of boundary
// transfers.
//
// Every tree handed across the synthesis boundary (and every tree handed
// back) can be appended here: the session token, direction, wire payload,
// canonical JSON, and content-addressed expression ID. The log is
// append-only and ordered by a logical sequence number, never wall-clock
// time, so a synthesis run can be reconstructed deterministically.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// All queries order by seq ASC, id ASC so reads are reproducible.
package translog

package translog

import (
	"context"
	"fmt"
)

// Append writes one transfer to the log and returns it with its assigned
// seq and row ID filled in. Seq allocation and the insert happen in one
// transaction so the log never has gaps or duplicates.
func (s *Store) Append(ctx context.Context, e Entry) (Entry, error) {
	if e.Direction != DirectionRequest && e.Direction != DirectionResult {
		return Entry{}, fmt.Errorf("append transfer: invalid direction %q", e.Direction)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("append transfer: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM transfers`,
	).Scan(&e.Seq); err != nil {
		return Entry{}, fmt.Errorf("append transfer: allocate seq: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO transfers
		(seq, session_token, direction, expr_id, canonical, wire, format_version)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		e.Seq,
		e.SessionToken,
		e.Direction,
		e.ExprID,
		e.Canonical,
		e.Wire,
		e.FormatVersion,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("append transfer: %w", err)
	}

	if e.ID, err = res.LastInsertId(); err != nil {
		return Entry{}, fmt.Errorf("append transfer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("append transfer: commit: %w", err)
	}

	return e, nil
}

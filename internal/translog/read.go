package translog

import (
	"context"
	"database/sql"
	"fmt"
)

const selectColumns = `
	SELECT id, seq, session_token, direction, expr_id, canonical, wire, format_version
	FROM transfers
`

// List returns every logged transfer in deterministic order
// (seq ASC, id ASC). Returns an empty slice, not nil, for an empty log.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+`ORDER BY seq ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// BySession returns the transfers of one session in deterministic order.
func (s *Store) BySession(ctx context.Context, token string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+`WHERE session_token = ? ORDER BY seq ASC, id ASC`, token)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows *sql.Rows) ([]Entry, error) {
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.Seq, &e.SessionToken, &e.Direction,
			&e.ExprID, &e.Canonical, &e.Wire, &e.FormatVersion,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfers: %w", err)
	}
	return entries, nil
}

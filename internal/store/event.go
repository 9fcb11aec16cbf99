package store

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// nextSequenceSQL bumps the single-row counter shared by every event table
// and returns the value it now holds. The first call creates the row.
const nextSequenceSQL = `
	INSERT INTO event_sequence (id, counter) VALUES (1, 1)
	ON CONFLICT (id) DO UPDATE SET counter = counter + 1
	RETURNING counter`

// builder renders statements in SQLite syntax.
var builder = entsql.Dialect(dialect.SQLite)

// appendEvent stores one event row built by insert, adding its sequence
// column. The sequence is allocated in the same transaction as the insert,
// so a failed insert never leaves a gap and a certificate always sorts
// after the attempt that earned it.
func appendEvent(ctx context.Context, drv *entsql.Driver, insert *entsql.InsertBuilder) (int64, error) {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSequence(ctx, tx)
	if err != nil {
		return 0, err
	}

	query, args := insert.Set("sequence", seq).Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return seq, nil
}

func nextSequence(ctx context.Context, tx dialect.Tx) (int64, error) {
	var rows entsql.Rows
	if err := tx.Query(ctx, nextSequenceSQL, []any{}, &rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
		return 0, errors.New("next sequence: no row returned")
	}
	var seq int64
	if err := rows.Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

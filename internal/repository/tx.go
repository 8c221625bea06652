package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// InTx runs fn inside a transaction scoped to the call: commit when fn
// returns nil, roll back otherwise. Multi-row writers go through this so a
// partial write is never visible to concurrent readers.
func InTx(ctx context.Context, db DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

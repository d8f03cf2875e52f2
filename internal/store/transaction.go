package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
)

// TxFn is the unit of work executed by RunInTransaction. Stores join the
// transaction through their WithTx method.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction runs fn in a transaction on db. The transaction commits
// when fn returns nil and rolls back when fn fails or panics; a panic is
// re-raised after the rollback.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		p := recover()
		rbErr := tx.Rollback()

		switch {
		case p != nil:
			log.Error("rolled back transaction after panic",
				slog.Any("panic", p),
				slog.Bool("rollback_failed", rbErr != nil))
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		case rbErr != nil:
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", redact.Error(rbErr)),
				slog.String("original_error", redact.Error(err)))
			err = fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		default:
			log.Debug("rolled back transaction", slog.String("error", redact.Error(err)))
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		// database/sql releases the transaction on a failed commit, so there is
		// nothing left to roll back.
		committed = true
		log.Error("failed to commit transaction", slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	committed = true
	log.Debug("transaction committed")
	return nil
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, letting repositories run
// standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxBeginner starts transactions. *sql.DB implements it.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back on error or panic; a panic is re-raised after
// the rollback.
func WithTx(ctx context.Context, db TxBeginner, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
			return
		}

		if cmErr := tx.Commit(); cmErr != nil {
			err = fmt.Errorf("commit: %w", cmErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}

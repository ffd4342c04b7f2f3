package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs catalog mutations in a single transaction carried through
// the context. A RunInTx call made inside a RunInTx callback joins the outer
// transaction, so a plan write and its audit entry commit together.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// TxOption configures a TxManager.
type TxOption func(*pgx.TxOptions)

// WithIsolation sets the isolation level of transactions opened by the manager.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(o *pgx.TxOptions) { o.IsoLevel = level }
}

// NewTxManager creates a TxManager. Without options transactions use the
// server default isolation (Read Committed).
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

// RunInTx executes fn within a database transaction.
// fn returning nil commits; an error or a panic rolls back (the panic is
// re-raised). Rollback runs even when ctx is already cancelled.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	rollback := func() error { return tx.Rollback(context.WithoutCancel(ctx)) }

	defer func() {
		if r := recover(); r != nil {
			_ = rollback()
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

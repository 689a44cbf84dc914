package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides all functions to execute db queries and transactions
type Store interface {
	Querier
	Ping(ctx context.Context) error
	CreateOrderTx(ctx context.Context, arg CreateOrderTxParams) (CreateOrderTxResult, error)
	UpdateOrderStatusTx(ctx context.Context, arg UpdateOrderStatusTxParams) (Order, error)
	RecordPaymentTx(ctx context.Context, arg RecordPaymentTxParams) (RecordPaymentTxResult, error)
	RefundPaymentTx(ctx context.Context, arg RefundPaymentTxParams) (RefundPaymentTxResult, error)
	SplitOrderTx(ctx context.Context, arg SplitOrderTxParams) (SplitOrderTxResult, error)
	MergeTablesTx(ctx context.Context, arg MergeTablesTxParams) (MergeTablesTxResult, error)
	DeleteTableTx(ctx context.Context, arg DeleteTableTxParams) (Table, error)
}

// SQLStore provides all functions to execute SQL queries and transactions
type SQLStore struct {
	connPool *pgxpool.Pool
	*Queries
}

// NewStore creates a new store
func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Ping checks database connectivity
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}

// execTx executes a function within a database transaction
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

package store

import "context"

// RunInTx runs fn inside a transaction on the provided TxRunner
// keeps call sites terse when no request scoping is needed
func RunInTx(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

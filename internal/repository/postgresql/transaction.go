package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTx returns a context carrying the transaction; repositories created
// from the same database will route queries through it.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns the transaction bound to the context, or the pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}

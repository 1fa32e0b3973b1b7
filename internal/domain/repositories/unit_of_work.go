package repositories

import (
	"context"
)

// UnitOfWork groups repository writes into a single atomic scope.
// Listing finalization relies on it: the item insert, payment update and
// notification either all commit or none do.
type UnitOfWork interface {
	// Do runs fn inside a transaction. Repositories called with the ctx
	// passed to fn operate on that transaction.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

package repository

import "context"

// UnitOfWork runs fn inside one database transaction. Repository calls made
// with the ctx passed to fn join that transaction, so an error from fn rolls
// back everything done within it.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

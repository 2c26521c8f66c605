// Package tx defines the transaction boundary the services depend on.
// The implementation lives in infrastructure/persistence/mysql.
package tx

import "context"

// Manager runs fn inside a single database transaction. All repository
// calls made with the context passed to fn join that transaction; fn
// returning an error rolls everything back.
type Manager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

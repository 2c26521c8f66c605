package mysql

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager implements tx.Manager over GORM transactions. The transaction
// handle travels in the context; repositories pick it up via getDB, so the
// same repository code runs inside and outside a transaction.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates the transaction manager.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction runs fn in one transaction; fn returning an error rolls back.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// getDB returns the transaction from ctx when one is active, otherwise the
// fallback connection bound to ctx.
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

type txKey struct{}

// GormTransactor implements domain.Transactor. The transaction handle
// travels in the context so repository calls made inside fn join it;
// outside a transaction repositories fall back to their base connection.
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a transactor over the given connection
func NewTransactor(db *gorm.DB) domain.Transactor {
	return &GormTransactor{db: db}
}

// WithinTransaction implements domain.Transactor. fn either fully commits
// or fully rolls back; partial state never becomes visible.
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or fallback when ctx carries
// none.
func conn(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

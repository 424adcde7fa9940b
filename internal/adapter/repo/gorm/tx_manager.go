package gormrepo

import (
	"context"

	"islandfarm/internal/app/ports"

	"gorm.io/gorm"
)

// TxManager runs fn inside a database transaction. When inner is set, the
// transaction is opened inside inner, so live games held in memory stay
// locked for as long as the journal write is in flight.
type TxManager struct {
	db    *gorm.DB
	inner ports.TxManager
}

func NewTxManager(db *gorm.DB, inner ports.TxManager) TxManager {
	return TxManager{db: db, inner: inner}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	run := func(ctx context.Context) error {
		return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(withJournalTx(ctx, tx))
		})
	}
	if t.inner == nil {
		return run(ctx)
	}
	return t.inner.RunInTx(ctx, run)
}

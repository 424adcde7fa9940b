package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

type journalTxKey struct{}

// withJournalTx stashes the open journal transaction for repositories
// called further down the same use case.
func withJournalTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, journalTxKey{}, tx)
}

// journalDB is the transaction opened by TxManager, or base outside one.
func journalDB(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(journalTxKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}

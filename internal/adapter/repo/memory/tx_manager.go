package memory

import "context"

// TxManager serializes use cases over the whole store. Games are mutated in
// place, so this is the only thing standing between two requests for the
// same session.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(ctx)
}

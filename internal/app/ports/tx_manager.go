package ports

import "context"

// TxManager scopes one use case: the game it loads, the events it journals
// and the save all happen inside fn, and no other use case touches the same
// games meanwhile.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

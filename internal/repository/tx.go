package repository

import "context"

// NopTxManager для хранилищ без транзакций: память, файлы, redis.
// Атомарность раунда там держит блокировка игрока в кошельке
type NopTxManager struct{}

func (NopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

package balance_repo

import (
	"context"

	"pixel_casino/internal/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const balanceKeyPrefix = "pixels:balance:"

type redisRepo struct {
	rdb redis.UniversalClient
}

func NewRedisRepository(rdb redis.UniversalClient) repository.BalanceRepository {
	return &redisRepo{rdb: rdb}
}

func (r *redisRepo) GetBalance(ctx context.Context, playerID string) (int, bool, error) {
	balance, err := r.rdb.Get(ctx, balanceKeyPrefix+playerID).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(err, "redis get balance")
	}
	return balance, true, nil
}

func (r *redisRepo) SetBalance(ctx context.Context, playerID string, balance int) error {
	if err := r.rdb.Set(ctx, balanceKeyPrefix+playerID, balance, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set balance")
	}
	return nil
}

package bonus_repo

import (
	"context"
	"time"

	"pixel_casino/internal/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const bonusKeyPrefix = "pixels:bonus:"

type redisRepo struct {
	rdb redis.UniversalClient
}

func NewRedisRepository(rdb redis.UniversalClient) repository.BonusRepository {
	return &redisRepo{rdb: rdb}
}

func (r *redisRepo) IsClaimed(ctx context.Context, playerID, key string) (bool, error) {
	ok, err := r.rdb.HExists(ctx, bonusKeyPrefix+playerID, key).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis hexists bonus")
	}
	return ok, nil
}

func (r *redisRepo) MarkClaimed(ctx context.Context, playerID, key string) error {
	err := r.rdb.HSetNX(ctx, bonusKeyPrefix+playerID, key, time.Now().UTC().Unix()).Err()
	if err != nil {
		return errors.Wrap(err, "redis hsetnx bonus")
	}
	return nil
}

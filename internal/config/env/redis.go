package env

import (
	"os"
	"strconv"

	"pixel_casino/internal/config"

	"github.com/pkg/errors"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"
)

type redisConfig struct {
	addr     string
	password string
	db       int
}

func NewRedisConfig() (config.RedisConfig, error) {
	addr := os.Getenv(redisAddrEnvName)
	if len(addr) == 0 {
		return nil, errors.New("redis addr not found")
	}

	db := 0
	if v := os.Getenv(redisDBEnvName); len(v) > 0 {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid redis db")
		}
		db = parsed
	}

	return &redisConfig{
		addr:     addr,
		password: os.Getenv(redisPasswordEnvName),
		db:       db,
	}, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}

package env

import (
	"encoding/hex"
	"os"
	"time"

	"pixel_casino/internal/config"

	"github.com/pkg/errors"
)

const (
	settleDelayEnvName = "ROUND_SETTLE_DELAY"
	serverSeedEnvName  = "RNG_SERVER_SEED"

	defaultSettleDelay = 2 * time.Second
)

type roundConfig struct {
	settleDelay time.Duration
	serverSeed  []byte
}

func NewRoundConfig() (config.RoundConfig, error) {
	delay := defaultSettleDelay
	if v := os.Getenv(settleDelayEnvName); len(v) > 0 {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid round settle delay")
		}
		delay = parsed
	}

	var seed []byte
	if v := os.Getenv(serverSeedEnvName); len(v) > 0 {
		parsed, err := hex.DecodeString(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid rng server seed")
		}
		seed = parsed
	}

	return &roundConfig{
		settleDelay: delay,
		serverSeed:  seed,
	}, nil
}

func (cfg *roundConfig) SettleDelay() time.Duration {
	return cfg.settleDelay
}

// ServerSeed пустой, если зерно не задано и его надо сгенерировать
func (cfg *roundConfig) ServerSeed() []byte {
	return cfg.serverSeed
}

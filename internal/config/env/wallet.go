package env

import (
	"os"
	"strconv"

	"pixel_casino/internal/config"

	"github.com/pkg/errors"
)

const (
	startBalanceEnvName = "START_BALANCE"
	maxBalanceEnvName   = "MAX_BALANCE"

	defaultStartBalance = 1000
	defaultMaxBalance   = 999999
)

type walletConfig struct {
	startBalance int
	maxBalance   int
}

func NewWalletConfig() (config.WalletConfig, error) {
	start, err := intFromEnv(startBalanceEnvName, defaultStartBalance)
	if err != nil {
		return nil, err
	}

	maxBalance, err := intFromEnv(maxBalanceEnvName, defaultMaxBalance)
	if err != nil {
		return nil, err
	}

	if start < 0 || maxBalance <= 0 || start > maxBalance {
		return nil, errors.New("start balance must be within [0, max balance]")
	}

	return &walletConfig{
		startBalance: start,
		maxBalance:   maxBalance,
	}, nil
}

func (cfg *walletConfig) StartBalance() int {
	return cfg.startBalance
}

func (cfg *walletConfig) MaxBalance() int {
	return cfg.maxBalance
}

func intFromEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if len(v) == 0 {
		return def, nil
	}

	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", name)
	}
	return parsed, nil
}

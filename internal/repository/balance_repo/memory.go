package balance_repo

import (
	"context"
	"sync"

	"pixel_casino/internal/repository"
)

type memoryRepo struct {
	mtx      sync.RWMutex
	balances map[string]int
}

// NewMemoryRepository баланс в памяти процесса, теряется при перезапуске
func NewMemoryRepository() repository.BalanceRepository {
	return &memoryRepo{
		balances: make(map[string]int),
	}
}

func (r *memoryRepo) GetBalance(_ context.Context, playerID string) (int, bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	balance, ok := r.balances[playerID]
	return balance, ok, nil
}

func (r *memoryRepo) SetBalance(_ context.Context, playerID string, balance int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.balances[playerID] = balance
	return nil
}

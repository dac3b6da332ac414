package bonus_repo

import (
	"context"
	"sync"

	"pixel_casino/internal/repository"
)

type memoryRepo struct {
	mtx     sync.RWMutex
	claimed map[string]map[string]struct{}
}

func NewMemoryRepository() repository.BonusRepository {
	return &memoryRepo{
		claimed: make(map[string]map[string]struct{}),
	}
}

func (r *memoryRepo) IsClaimed(_ context.Context, playerID, key string) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	_, ok := r.claimed[playerID][key]
	return ok, nil
}

func (r *memoryRepo) MarkClaimed(_ context.Context, playerID, key string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.claimed[playerID] == nil {
		r.claimed[playerID] = make(map[string]struct{})
	}
	r.claimed[playerID][key] = struct{}{}
	return nil
}

package wallet

import (
	"sync"

	"pixel_casino/internal/config"
	"pixel_casino/internal/events"
	"pixel_casino/internal/repository"
	"pixel_casino/internal/service"

	"go.uber.org/zap"
)

type serv struct {
	repo        repository.BalanceRepository
	txManager   service.TxManager
	cfg         config.WalletConfig
	broadcaster *events.BalanceBroadcaster
	logger      *zap.Logger

	locks keyLock
}

// NewWalletService Кошелек пикселей игрока
func NewWalletService(
	repo repository.BalanceRepository,
	txManager service.TxManager,
	cfg config.WalletConfig,
	broadcaster *events.BalanceBroadcaster,
	logger *zap.Logger,
) service.WalletService {
	return &serv{
		repo:        repo,
		txManager:   txManager,
		cfg:         cfg,
		broadcaster: broadcaster,
		logger:      logger,
		locks:       keyLock{held: make(map[string]*lockEntry)},
	}
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// keyLock мьютекс на каждого игрока, удаляется когда никто его не ждет
type keyLock struct {
	mu   sync.Mutex
	held map[string]*lockEntry
}

func (k *keyLock) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.held[key]
	if !ok {
		e = &lockEntry{}
		k.held[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.held, key)
		}
		k.mu.Unlock()
	}
}

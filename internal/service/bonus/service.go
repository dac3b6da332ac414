package bonus

import (
	"context"
	"sync"

	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/repository"
	"pixel_casino/internal/service"

	"go.uber.org/zap"
)

const reasonBonus = "bonus"

type serv struct {
	repo      repository.BonusRepository
	wallet    service.WalletService
	txManager service.TxManager
	cfg       config.BonusConfig
	logger    *zap.Logger

	mu sync.Mutex
}

// NewBonusService Разовые бонусы из конфига
func NewBonusService(
	repo repository.BonusRepository,
	wallet service.WalletService,
	txManager service.TxManager,
	cfg config.BonusConfig,
	logger *zap.Logger,
) service.BonusService {
	return &serv{
		repo:      repo,
		wallet:    wallet,
		txManager: txManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// Claim Начисляет бонус один раз на игрока
func (s *serv) Claim(ctx context.Context, playerID, key string) (*model.BonusClaim, error) {
	amount, ok := s.cfg.Bonuses()[key]
	if !ok {
		return nil, service.ErrBonusNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res *model.BonusClaim
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		claimed, err := s.repo.IsClaimed(txCtx, playerID, key)
		if err != nil {
			return err
		}
		if claimed {
			return service.ErrBonusClaimed
		}

		// Флаг ставится до начисления: при сбое бонус теряется, но не начисляется дважды
		if err := s.repo.MarkClaimed(txCtx, playerID, key); err != nil {
			return err
		}

		balance, err := s.wallet.Credit(txCtx, playerID, amount, reasonBonus)
		if err != nil {
			return err
		}

		res = &model.BonusClaim{Key: key, Amount: amount, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("bonus claimed", zap.String("player", playerID), zap.String("bonus", key), zap.Int("amount", amount))
	return res, nil
}

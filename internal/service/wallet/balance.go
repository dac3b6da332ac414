package wallet

import (
	"context"
	"time"

	"pixel_casino/internal/events"
	"pixel_casino/internal/service"

	"go.uber.org/zap"
)

const (
	reasonSet   = "set"
	reasonAdd   = "add"
	reasonReset = "reset"
	reasonWager = "wager"
)

// Get Текущий баланс. Новый игрок получает стартовый баланс
func (s *serv) Get(ctx context.Context, playerID string) (int, error) {
	return s.load(ctx, playerID)
}

// Set Устанавливает баланс в пределах [0, MaxBalance]
func (s *serv) Set(ctx context.Context, playerID string, value int) (int, error) {
	return s.mutate(ctx, playerID, reasonSet, func(int) int {
		return value
	})
}

// Add Прибавляет amount (может быть отрицательным), результат в пределах [0, MaxBalance]
func (s *serv) Add(ctx context.Context, playerID string, amount int) (int, error) {
	return s.mutate(ctx, playerID, reasonAdd, func(current int) int {
		return current + amount
	})
}

// Reset Возвращает стартовый баланс
func (s *serv) Reset(ctx context.Context, playerID string) (int, error) {
	return s.mutate(ctx, playerID, reasonReset, func(int) int {
		return s.cfg.StartBalance()
	})
}

// Credit Начисление выигрыша раунда
func (s *serv) Credit(ctx context.Context, playerID string, amount int, reason string) (int, error) {
	if amount < 0 {
		return 0, service.ErrInvalidAmount
	}
	return s.mutate(ctx, playerID, reason, func(current int) int {
		return current + amount
	})
}

// Wager Списание ставки, розыгрыш и начисление выигрыша как одна операция.
// resolve вызывается уже после списания. Если он вернул ошибку, баланс не меняется
func (s *serv) Wager(ctx context.Context, playerID string, bet int, resolve func() (int, error)) (int, error) {
	if bet <= 0 {
		return 0, service.ErrInvalidBet
	}

	unlock := s.locks.Lock(playerID)
	defer unlock()

	var before, after int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.load(txCtx, playerID)
		if err != nil {
			return err
		}
		before = current

		// Проверяем хватает ли пикселей на ставку
		if current < bet {
			return service.ErrInsufficientBalance
		}

		// Списание ставки
		current -= bet

		payout, err := resolve()
		if err != nil {
			return err
		}

		// Начисление выигрыша
		after = s.clamp(current + payout)

		return s.repo.SetBalance(txCtx, playerID, after)
	})
	if err != nil {
		return 0, err
	}

	s.publish(playerID, before, after, reasonWager)
	return after, nil
}

func (s *serv) mutate(ctx context.Context, playerID, reason string, fn func(current int) int) (int, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	var before, after int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.load(txCtx, playerID)
		if err != nil {
			return err
		}
		before = current
		after = s.clamp(fn(current))

		return s.repo.SetBalance(txCtx, playerID, after)
	})
	if err != nil {
		return 0, err
	}

	s.publish(playerID, before, after, reason)
	return after, nil
}

func (s *serv) load(ctx context.Context, playerID string) (int, error) {
	balance, found, err := s.repo.GetBalance(ctx, playerID)
	if err != nil {
		s.logger.Error("failed to load balance", zap.String("player", playerID), zap.Error(err))
		return 0, err
	}
	if !found {
		return s.cfg.StartBalance(), nil
	}
	return balance, nil
}

func (s *serv) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if maxBalance := s.cfg.MaxBalance(); v > maxBalance {
		return maxBalance
	}
	return v
}

func (s *serv) publish(playerID string, before, after int, reason string) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Publish(events.BalanceChanged{
		Timestamp: time.Now().UTC(),
		PlayerID:  playerID,
		Balance:   after,
		Delta:     after - before,
		Reason:    reason,
	})
}

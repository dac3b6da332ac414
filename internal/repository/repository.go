package repository

import (
	"context"

	"pixel_casino/internal/model"
)

type BalanceRepository interface {
	// GetBalance возвращает found=false, если баланс игрока еще не сохранялся
	GetBalance(ctx context.Context, playerID string) (balance int, found bool, err error)
	SetBalance(ctx context.Context, playerID string, balance int) error
}

type BonusRepository interface {
	IsClaimed(ctx context.Context, playerID, key string) (bool, error)
	MarkClaimed(ctx context.Context, playerID, key string) error
}

type StatsRepository interface {
	UpdateState(game string, bet, payout float64)
	Stats(game string) model.GameStats
	PushHistory(playerID, game string, entry model.HistoryEntry)
	History(playerID, game string) []model.HistoryEntry
}

type JournalRepository interface {
	Append(record model.JournalRecord) (uint64, error)
	RecordsAfter(index uint64, limit int) ([]model.JournalRecord, error)
	CurrentIndex() uint64
	Close() error
}

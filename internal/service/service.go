package service

import (
	"context"
	"errors"

	"pixel_casino/internal/model"
	"pixel_casino/pkg/rng"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidBet          = errors.New("bet must be positive")
	ErrBetNotAllowed       = errors.New("bet is not in the bet menu")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrUnknownGame         = errors.New("unknown game")
	ErrRoundInProgress     = errors.New("round already in progress")
	ErrNoActiveRound       = errors.New("no active round")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrInvalidAction       = errors.New("invalid action")
	ErrBonusNotFound       = errors.New("bonus not found")
	ErrBonusClaimed        = errors.New("bonus already claimed")
	ErrInvalidToken        = errors.New("invalid player token")
	ErrRecordNotFound      = errors.New("journal record not found")
)

// TxManager выполняет fn в транзакции хранилища. Подходит trm.Manager
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type WalletService interface {
	Get(ctx context.Context, playerID string) (int, error)
	Set(ctx context.Context, playerID string, value int) (int, error)
	Add(ctx context.Context, playerID string, amount int) (int, error)
	Reset(ctx context.Context, playerID string) (int, error)
	// Wager списывает ставку, вызывает resolve и начисляет выигрыш одной записью
	Wager(ctx context.Context, playerID string, bet int, resolve func() (payout int, err error)) (int, error)
	Credit(ctx context.Context, playerID string, amount int, reason string) (int, error)
}

type RoundService interface {
	Games() []string
	Bets() []int
	Start(ctx context.Context, playerID, game string, bet int, sel model.Selection) (*model.Round, error)
	Act(ctx context.Context, playerID, game string, action model.Action) (*model.Round, error)
	Current(ctx context.Context, playerID, game string) (*model.Round, error)
	Reset(ctx context.Context, playerID, game string) error
	History(ctx context.Context, playerID, game string) ([]model.HistoryEntry, error)
	Stats(ctx context.Context, game string) (model.GameStats, error)
	Journal(ctx context.Context, after uint64, limit int) ([]model.JournalRecord, error)
	// Replay заново разыгрывает раунд из журнала по его зерну и действиям
	Replay(ctx context.Context, index uint64) (*model.Replay, error)
}

type BonusService interface {
	Claim(ctx context.Context, playerID, key string) (*model.BonusClaim, error)
}

type LeaderboardService interface {
	Leaderboard(ctx context.Context, playerID string) ([]model.LeaderboardEntry, error)
}

type PlayerService interface {
	Register(ctx context.Context) (*model.Player, error)
	Verify(accessToken string) (playerID string, err error)
}

// Game Мини-игра. Open вызывается после списания ставки
type Game interface {
	Name() string
	Open(src rng.Source, bet int, sel model.Selection) (Play, model.Step, error)
}

// Play Раунд игры с несколькими шагами. У мгновенных игр Open сразу возвращает Done
type Play interface {
	Act(action model.Action) (model.Step, error)
}

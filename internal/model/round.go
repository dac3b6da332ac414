package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoundState Состояние игровой сессии
type RoundState string

const (
	// StateIdle нет активного раунда
	StateIdle RoundState = "idle"
	// StateArmed ставка списана, исход не определен
	StateArmed RoundState = "armed"
	// StateResolved исход посчитан, выигрыш начислен
	StateResolved RoundState = "resolved"
)

// Selection Выбор игрока перед раундом (цвет, число, цель и т.д.)
type Selection struct {
	Kind      string `json:"kind,omitempty"`      // roulette: number | color | parity
	Value     string `json:"value,omitempty"`     // red, black, even, odd
	Number    int    `json:"number,omitempty"`    // roulette: 0-36
	Target    int    `json:"target,omitempty"`    // dice: 2-99
	Direction string `json:"direction,omitempty"` // dice: over | under
	Mines     int    `json:"mines,omitempty"`     // mines: 1-24
}

// Action Действие игрока внутри раунда
type Action struct {
	Name string `json:"name"` // pick, cashout, reveal, reveal_all, hit, stand, pump, advance
	Cell int    `json:"cell,omitempty"`
}

// Step Результат открытия раунда или действия
type Step struct {
	Done       bool
	Multiplier decimal.Decimal
	Payout     int
	View       any
}

// Round Один раунд игры
type Round struct {
	ID         uuid.UUID
	PlayerID   string
	Game       string
	Bet        int
	Selection  Selection
	State      RoundState
	Multiplier decimal.Decimal
	Payout     int
	View       any
	Balance    int
	Seed       string
	Nonce      uint64
	Generation uint64
	StartedAt  time.Time
	ResolvedAt time.Time
}

// HistoryEntry Запись истории последних раундов
type HistoryEntry struct {
	RoundID    uuid.UUID
	Bet        int
	Payout     int
	Multiplier decimal.Decimal
	ResolvedAt time.Time
}

// GameStats Статистика игры
type GameStats struct {
	Game        string
	TotalRounds int
	TotalBet    float64
	TotalPayout float64
	CurrentRTP  float64
	WindowRTP   float64
	WindowSize  int
}

// JournalRecord Запись журнала раундов
type JournalRecord struct {
	Index      uint64          `json:"-"`
	RoundID    uuid.UUID       `json:"round_id"`
	PlayerID   string          `json:"player_id"`
	Game       string          `json:"game"`
	Bet        int             `json:"bet"`
	Payout     int             `json:"payout"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Selection  Selection       `json:"selection"`
	Actions    []Action        `json:"actions,omitempty"`
	Seed       string          `json:"seed"`
	Nonce      uint64          `json:"nonce"`
	SeedDigest string          `json:"seed_digest"`
	ResolvedAt time.Time       `json:"resolved_at"`
}

// Replay Результат повторного розыгрыша записи журнала
type Replay struct {
	Record     JournalRecord
	Payout     int
	Multiplier decimal.Decimal
	Matches    bool
}

package games

import "time"

type ListResponse struct {
	Games []string `json:"games"`
	Bets  []int    `json:"bets"` // Меню ставок
}

type Selection struct {
	Kind      string `json:"kind,omitempty"`
	Value     string `json:"value,omitempty"`
	Number    int    `json:"number,omitempty"`
	Target    int    `json:"target,omitempty"`
	Direction string `json:"direction,omitempty"`
	Mines     int    `json:"mines,omitempty"`
}

type StartRequest struct {
	Bet       int       `json:"bet"`
	Selection Selection `json:"selection"`
}

type ActRequest struct {
	Action string `json:"action"` // pick, cashout, reveal, reveal_all, hit, stand, pump, advance
	Cell   int    `json:"cell"`
}

type RoundResponse struct {
	ID         string     `json:"id,omitempty"`
	Game       string     `json:"game"`
	State      string     `json:"state"`
	Bet        int        `json:"bet,omitempty"`
	Selection  *Selection `json:"selection,omitempty"`
	Multiplier string     `json:"multiplier,omitempty"`
	Payout     int        `json:"payout"`
	View       any        `json:"view,omitempty"`
	Balance    int        `json:"balance"`
	Seed       string     `json:"seed,omitempty"`
	Nonce      uint64     `json:"nonce,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type HistoryEntry struct {
	RoundID    string    `json:"round_id"`
	Bet        int       `json:"bet"`
	Payout     int       `json:"payout"`
	Multiplier string    `json:"multiplier"`
	ResolvedAt time.Time `json:"resolved_at"`
}

type HistoryResponse struct {
	Rounds []HistoryEntry `json:"rounds"`
}

type StatsResponse struct {
	Game        string  `json:"game"`
	TotalRounds int     `json:"total_rounds"`
	TotalBet    float64 `json:"total_bet"`
	TotalPayout float64 `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"` // Проценты
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
}

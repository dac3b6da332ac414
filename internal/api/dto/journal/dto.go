package journal

import "time"

type Record struct {
	Index      uint64    `json:"index"`
	RoundID    string    `json:"round_id"`
	PlayerID   string    `json:"player_id"`
	Game       string    `json:"game"`
	Bet        int       `json:"bet"`
	Payout     int       `json:"payout"`
	Multiplier string    `json:"multiplier"`
	Seed       string    `json:"seed"`
	Nonce      uint64    `json:"nonce"`
	SeedDigest string    `json:"seed_digest"` // blake2b серверного зерна
	ResolvedAt time.Time `json:"resolved_at"`
}

type ListResponse struct {
	Records []Record `json:"records"`
	Next    uint64   `json:"next"` // Передать как after для следующей страницы
}

type ReplayResponse struct {
	Record     Record `json:"record"`
	Payout     int    `json:"payout"`
	Multiplier string `json:"multiplier"`
	Matches    bool   `json:"matches"`
}

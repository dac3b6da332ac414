package wallet

import "time"

type AddRequest struct {
	Amount int `json:"amount"` // Может быть отрицательным
}

type SetRequest struct {
	Value int `json:"value"`
}

type BalanceResponse struct {
	Balance int `json:"balance"`
}

// BalanceEvent Сообщение websocket потока баланса
type BalanceEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Balance   int       `json:"balance"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
}

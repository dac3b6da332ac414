package bonus

type ClaimResponse struct {
	Key     string `json:"key"`
	Amount  int    `json:"amount"`
	Balance int    `json:"balance"` // Баланс после начисления
}

package player

type RegisterResponse struct {
	PlayerID    string `json:"player_id"`
	AccessToken string `json:"access_token"` // Bearer токен для остальных запросов
}

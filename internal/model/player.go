package model

import "github.com/golang-jwt/jwt/v5"

// Player Игрок. ID заменяет пространство имен localStorage браузера
type Player struct {
	ID          string
	AccessToken string
}

type PlayerClaims struct {
	jwt.RegisteredClaims
}

// LeaderboardEntry Строка таблицы лидеров
type LeaderboardEntry struct {
	Rank    int
	Name    string
	Balance int
	IsYou   bool
}

// BonusClaim Результат получения бонуса
type BonusClaim struct {
	Key     string
	Amount  int
	Balance int
}

package model

import "github.com/shopspring/decimal"

// SlotSymbol Символ барабана
type SlotSymbol struct {
	Key     string `yaml:"key"`
	Label   string `yaml:"label"`
	Weight  int    `yaml:"weight"`
	Payout2 int    `yaml:"payout2"` // множитель за два одинаковых
	Payout3 int    `yaml:"payout3"` // множитель за три одинаковых
}

// ScratchPrize Приз скретч-карты
type ScratchPrize struct {
	Key        string          `yaml:"key"`
	Label      string          `yaml:"label"`
	Weight     int             `yaml:"weight"`
	Multiplier decimal.Decimal `yaml:"multiplier"`
}

// WheelSegment Сектор колеса
type WheelSegment struct {
	Label      string          `yaml:"label"`
	Weight     int             `yaml:"weight"`
	Multiplier decimal.Decimal `yaml:"multiplier"`
}

// DungeonCardType тип карты подземелья
type DungeonCardType string

const (
	CardMonster  DungeonCardType = "monster"
	CardBuff     DungeonCardType = "buff"
	CardTreasure DungeonCardType = "treasure"
	CardTrap     DungeonCardType = "trap"
)

// DungeonCard Карта подземелья
type DungeonCard struct {
	Type     DungeonCardType `yaml:"type"`
	Title    string          `yaml:"title"`
	Weight   int             `yaml:"weight"`
	Strength int             `yaml:"strength"` // сила монстра или бонус к силе
	Damage   int             `yaml:"damage"`   // урон ловушки
	Reward   decimal.Decimal `yaml:"reward"`   // прибавка к множителю
}

// Rival Соперник таблицы лидеров
type Rival struct {
	Name    string `yaml:"name"`
	Balance int    `yaml:"balance"`
}

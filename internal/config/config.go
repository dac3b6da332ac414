package config

import (
	"time"

	"pixel_casino/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

// StorageConfig Выбор хранилища баланса и каталог журнала
type StorageConfig interface {
	Backend() string
	Dir() string
	JournalDir() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type WalletConfig interface {
	StartBalance() int
	MaxBalance() int
}

type RoundConfig interface {
	SettleDelay() time.Duration
	ServerSeed() []byte
}

type BetsConfig interface {
	Bets() []int
}

type SlotsConfig interface {
	Symbols() []model.SlotSymbol
}

type ScratchConfig interface {
	Prizes() []model.ScratchPrize
	ScratchCells() int
	RevealPercent() int
}

type WheelConfig interface {
	Segments() []model.WheelSegment
}

type MinesConfig interface {
	MinesCells() int
	DefaultMines() int
}

type TowerConfig interface {
	Floors() int
	Doors() int
	Traps() int
}

type PopConfig interface {
	Step() decimal.Decimal
}

type DungeonConfig interface {
	HP() int
	Strength() int
	MaxDepth() int
	Cards() []model.DungeonCard
}

type BonusConfig interface {
	Bonuses() map[string]int
}

type LeaderboardConfig interface {
	Rivals() []model.Rival
}

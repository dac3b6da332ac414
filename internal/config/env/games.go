package env

import (
	"os"

	"pixel_casino/internal/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type scratchYAML struct {
	Cells         int                  `yaml:"cells"`
	RevealPercent int                  `yaml:"reveal_percent"`
	Prizes        []model.ScratchPrize `yaml:"prizes"`
}

type minesYAML struct {
	Cells        int `yaml:"cells"`
	DefaultMines int `yaml:"default_mines"`
}

type towerYAML struct {
	Floors int `yaml:"floors"`
	Doors  int `yaml:"doors"`
	Traps  int `yaml:"traps"`
}

type popYAML struct {
	Step decimal.Decimal `yaml:"step"`
}

type dungeonYAML struct {
	HP       int                 `yaml:"hp"`
	Strength int                 `yaml:"strength"`
	MaxDepth int                 `yaml:"max_depth"`
	Cards    []model.DungeonCard `yaml:"cards"`
}

type gamesYAML struct {
	Bets    []int                `yaml:"bets"`
	Slots   []model.SlotSymbol   `yaml:"slots"`
	Scratch scratchYAML          `yaml:"scratch"`
	Wheel   []model.WheelSegment `yaml:"wheel"`
	Mines   minesYAML            `yaml:"mines"`
	Tower   towerYAML            `yaml:"tower"`
	Pop     popYAML              `yaml:"pop"`
	Dungeon dungeonYAML          `yaml:"dungeon"`
	Bonuses map[string]int       `yaml:"bonuses"`
	Rivals  []model.Rival        `yaml:"rivals"`
}

// GamesConfig Таблицы наград и параметры мини-игр.
// Реализует все игровые интерфейсы из пакета config
type GamesConfig struct {
	raw gamesYAML
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultGamesConfig Таблицы по умолчанию
func DefaultGamesConfig() *GamesConfig {
	return &GamesConfig{raw: gamesYAML{
		Bets: []int{10, 20, 50, 100, 250, 500},
		Slots: []model.SlotSymbol{
			{Key: "cherry", Label: "Cherry", Weight: 30, Payout2: 2, Payout3: 20},
			{Key: "lemon", Label: "Lemon", Weight: 25, Payout2: 1, Payout3: 10},
			{Key: "bell", Label: "Bell", Weight: 20, Payout3: 15},
			{Key: "star", Label: "Star", Weight: 12, Payout3: 30},
			{Key: "seven", Label: "Seven", Weight: 8, Payout3: 50},
			{Key: "diamond", Label: "Diamond", Weight: 5, Payout3: 100},
		},
		Scratch: scratchYAML{
			Cells:         9,
			RevealPercent: 60,
			Prizes: []model.ScratchPrize{
				{Key: "dust", Label: "Dust", Weight: 30, Multiplier: d("0")},
				{Key: "pixel", Label: "Pixel", Weight: 30, Multiplier: d("1")},
				{Key: "coin", Label: "Coin", Weight: 20, Multiplier: d("2")},
				{Key: "gem", Label: "Gem", Weight: 13, Multiplier: d("5")},
				{Key: "crown", Label: "Crown", Weight: 7, Multiplier: d("20")},
			},
		},
		Wheel: []model.WheelSegment{
			{Label: "x0", Weight: 20, Multiplier: d("0")},
			{Label: "x0.5", Weight: 16, Multiplier: d("0.5")},
			{Label: "x1", Weight: 14, Multiplier: d("1")},
			{Label: "x1.5", Weight: 12, Multiplier: d("1.5")},
			{Label: "x2", Weight: 10, Multiplier: d("2")},
			{Label: "x0", Weight: 20, Multiplier: d("0")},
			{Label: "x3", Weight: 5, Multiplier: d("3")},
			{Label: "x5", Weight: 2, Multiplier: d("5")},
			{Label: "x10", Weight: 1, Multiplier: d("10")},
		},
		Mines: minesYAML{Cells: 25, DefaultMines: 3},
		Tower: towerYAML{Floors: 8, Doors: 3, Traps: 1},
		Pop:   popYAML{Step: d("0.25")},
		Dungeon: dungeonYAML{
			HP:       10,
			Strength: 3,
			MaxDepth: 10,
			Cards: []model.DungeonCard{
				{Type: model.CardMonster, Title: "Goblin", Weight: 30, Strength: 2, Reward: d("0.3")},
				{Type: model.CardMonster, Title: "Orc", Weight: 20, Strength: 5, Reward: d("0.6")},
				{Type: model.CardMonster, Title: "Dragon", Weight: 5, Strength: 9, Reward: d("2")},
				{Type: model.CardBuff, Title: "Sword", Weight: 15, Strength: 2},
				{Type: model.CardTreasure, Title: "Chest", Weight: 15, Reward: d("0.5")},
				{Type: model.CardTrap, Title: "Spikes", Weight: 15, Damage: 3},
			},
		},
		Bonuses: map[string]int{"welcome": 500, "daily": 100, "adventure": 250},
		Rivals: []model.Rival{
			{Name: "PixelQueen", Balance: 48210},
			{Name: "NeonNomad", Balance: 20500},
			{Name: "ByteBandit", Balance: 9120},
			{Name: "LuckyLoop", Balance: 3300},
			{Name: "Glitch", Balance: 420},
		},
	}}
}

const (
	gamesConfigEnvName = "GAMES_CONFIG"
	defaultGamesConfig = "config.yaml"
)

// NewGamesConfig читает таблицы из GAMES_CONFIG (по умолчанию config.yaml).
// Если файла нет, используются таблицы по умолчанию
func NewGamesConfig() (*GamesConfig, error) {
	path := os.Getenv(gamesConfigEnvName)
	if path == "" {
		path = defaultGamesConfig
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultGamesConfig(), nil
	}
	return NewGamesConfigFromYAML(path)
}

// NewGamesConfigFromYAML читает таблицы из файла. Незаданные секции берутся по умолчанию
func NewGamesConfigFromYAML(path string) (*GamesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read games config")
	}

	var raw gamesYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse games config")
	}

	cfg := DefaultGamesConfig()
	cfg.merge(raw)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *GamesConfig) merge(raw gamesYAML) {
	if len(raw.Bets) > 0 {
		c.raw.Bets = raw.Bets
	}
	if len(raw.Slots) > 0 {
		c.raw.Slots = raw.Slots
	}
	if len(raw.Scratch.Prizes) > 0 {
		c.raw.Scratch.Prizes = raw.Scratch.Prizes
	}
	if raw.Scratch.Cells > 0 {
		c.raw.Scratch.Cells = raw.Scratch.Cells
	}
	if raw.Scratch.RevealPercent > 0 {
		c.raw.Scratch.RevealPercent = raw.Scratch.RevealPercent
	}
	if len(raw.Wheel) > 0 {
		c.raw.Wheel = raw.Wheel
	}
	if raw.Mines.Cells > 0 {
		c.raw.Mines.Cells = raw.Mines.Cells
	}
	if raw.Mines.DefaultMines > 0 {
		c.raw.Mines.DefaultMines = raw.Mines.DefaultMines
	}
	if raw.Tower.Floors > 0 {
		c.raw.Tower.Floors = raw.Tower.Floors
	}
	if raw.Tower.Doors > 0 {
		c.raw.Tower.Doors = raw.Tower.Doors
	}
	if raw.Tower.Traps > 0 {
		c.raw.Tower.Traps = raw.Tower.Traps
	}
	if raw.Pop.Step.IsPositive() {
		c.raw.Pop.Step = raw.Pop.Step
	}
	if raw.Dungeon.HP > 0 {
		c.raw.Dungeon.HP = raw.Dungeon.HP
	}
	if raw.Dungeon.Strength > 0 {
		c.raw.Dungeon.Strength = raw.Dungeon.Strength
	}
	if raw.Dungeon.MaxDepth > 0 {
		c.raw.Dungeon.MaxDepth = raw.Dungeon.MaxDepth
	}
	if len(raw.Dungeon.Cards) > 0 {
		c.raw.Dungeon.Cards = raw.Dungeon.Cards
	}
	if len(raw.Bonuses) > 0 {
		c.raw.Bonuses = raw.Bonuses
	}
	if len(raw.Rivals) > 0 {
		c.raw.Rivals = raw.Rivals
	}
}

func (c *GamesConfig) validate() error {
	for _, b := range c.raw.Bets {
		if b <= 0 {
			return errors.New("bets must be positive")
		}
	}
	if c.raw.Mines.DefaultMines >= c.raw.Mines.Cells {
		return errors.New("mines: default mines must be less than cells")
	}
	if c.raw.Tower.Traps >= c.raw.Tower.Doors {
		return errors.New("tower: traps must be less than doors")
	}
	if c.raw.Scratch.RevealPercent > 100 {
		return errors.New("scratch: reveal percent must be within 1-100")
	}
	return nil
}

func (c *GamesConfig) Bets() []int {
	return c.raw.Bets
}

func (c *GamesConfig) Symbols() []model.SlotSymbol {
	return c.raw.Slots
}

func (c *GamesConfig) Prizes() []model.ScratchPrize {
	return c.raw.Scratch.Prizes
}

func (c *GamesConfig) ScratchCells() int {
	return c.raw.Scratch.Cells
}

func (c *GamesConfig) RevealPercent() int {
	return c.raw.Scratch.RevealPercent
}

func (c *GamesConfig) Segments() []model.WheelSegment {
	return c.raw.Wheel
}

func (c *GamesConfig) MinesCells() int {
	return c.raw.Mines.Cells
}

func (c *GamesConfig) DefaultMines() int {
	return c.raw.Mines.DefaultMines
}

func (c *GamesConfig) Floors() int {
	return c.raw.Tower.Floors
}

func (c *GamesConfig) Doors() int {
	return c.raw.Tower.Doors
}

func (c *GamesConfig) Traps() int {
	return c.raw.Tower.Traps
}

func (c *GamesConfig) Step() decimal.Decimal {
	return c.raw.Pop.Step
}

func (c *GamesConfig) HP() int {
	return c.raw.Dungeon.HP
}

func (c *GamesConfig) Strength() int {
	return c.raw.Dungeon.Strength
}

func (c *GamesConfig) MaxDepth() int {
	return c.raw.Dungeon.MaxDepth
}

func (c *GamesConfig) Cards() []model.DungeonCard {
	return c.raw.Dungeon.Cards
}

func (c *GamesConfig) Bonuses() map[string]int {
	return c.raw.Bonuses
}

func (c *GamesConfig) Rivals() []model.Rival {
	return c.raw.Rivals
}

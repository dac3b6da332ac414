package dice

import (
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"github.com/shopspring/decimal"
)

const (
	Name = "dice"

	Over  = "over"
	Under = "under"

	minChance = 1
	maxChance = 97
)

var edge = decimal.NewFromInt(99)

type View struct {
	Roll      int             `json:"roll"`
	Target    int             `json:"target"`
	Direction string          `json:"direction"`
	Chance    int             `json:"chance"`
	Payout    decimal.Decimal `json:"payout_multiplier"`
	Win       bool            `json:"win"`
}

type game struct{}

// NewGame Кубик 1-100 больше/меньше цели
func NewGame() service.Game {
	return &game{}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, sel model.Selection) (service.Play, model.Step, error) {
	chance, err := Chance(sel.Target, sel.Direction)
	if err != nil {
		return nil, model.Step{}, err
	}

	winMult := Multiplier(chance)
	roll := src.IntN(100) + 1

	win := false
	switch sel.Direction {
	case Under:
		win = roll < sel.Target
	case Over:
		win = roll > sel.Target
	}

	mult := decimal.Zero
	if win {
		mult = winMult
	}

	return nil, model.Step{
		Done:       true,
		Multiplier: mult,
		Payout:     model.Payout(bet, mult),
		View: View{
			Roll:      roll,
			Target:    sel.Target,
			Direction: sel.Direction,
			Chance:    chance,
			Payout:    winMult,
			Win:       win,
		},
	}, nil
}

// Chance шанс выигрыша в процентах для цели и направления
func Chance(target int, direction string) (int, error) {
	var chance int
	switch direction {
	case Under:
		chance = target - 1
	case Over:
		chance = 100 - target
	default:
		return 0, service.ErrInvalidSelection
	}

	if chance < minChance || chance > maxChance {
		return 0, service.ErrInvalidSelection
	}
	return chance, nil
}

// Multiplier 99/chance с отбрасыванием после двух знаков
func Multiplier(chance int) decimal.Decimal {
	return model.Truncate2(edge.Div(decimal.NewFromInt(int64(chance))))
}

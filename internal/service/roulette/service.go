package roulette

import (
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"github.com/shopspring/decimal"
)

const (
	Name = "roulette"

	KindNumber = "number"
	KindColor  = "color"
	KindParity = "parity"

	Red   = "red"
	Black = "black"
	Green = "green"
	Even  = "even"
	Odd   = "odd"

	// Европейское колесо 0-36
	pockets = 37
)

var (
	straightMult = decimal.NewFromInt(36)
	evenMult     = decimal.NewFromInt(2)
)

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type View struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	Win    bool   `json:"win"`
}

type game struct{}

// NewGame Европейская рулетка: число, цвет или четность
func NewGame() service.Game {
	return &game{}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, sel model.Selection) (service.Play, model.Step, error) {
	if err := validate(sel); err != nil {
		return nil, model.Step{}, err
	}

	n := src.IntN(pockets)
	mult := decimal.Zero

	switch sel.Kind {
	case KindNumber:
		if n == sel.Number {
			mult = straightMult
		}
	case KindColor:
		// зеро проигрывает все внешние ставки
		if n != 0 && ColorOf(n) == sel.Value {
			mult = evenMult
		}
	case KindParity:
		if n != 0 && parityOf(n) == sel.Value {
			mult = evenMult
		}
	}

	return nil, model.Step{
		Done:       true,
		Multiplier: mult,
		Payout:     model.Payout(bet, mult),
		View:       View{Number: n, Color: ColorOf(n), Win: mult.IsPositive()},
	}, nil
}

// ColorOf цвет лунки
func ColorOf(n int) string {
	switch {
	case n == 0:
		return Green
	case redNumbers[n]:
		return Red
	default:
		return Black
	}
}

func parityOf(n int) string {
	if n%2 == 0 {
		return Even
	}
	return Odd
}

func validate(sel model.Selection) error {
	switch sel.Kind {
	case KindNumber:
		if sel.Number < 0 || sel.Number >= pockets {
			return service.ErrInvalidSelection
		}
	case KindColor:
		if sel.Value != Red && sel.Value != Black {
			return service.ErrInvalidSelection
		}
	case KindParity:
		if sel.Value != Even && sel.Value != Odd {
			return service.ErrInvalidSelection
		}
	default:
		return service.ErrInvalidSelection
	}
	return nil
}

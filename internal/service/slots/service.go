package slots

import (
	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"
	"pixel_casino/pkg/weighted"

	"github.com/shopspring/decimal"
)

const (
	Name = "slots"
	// Барабаны
	reels = 3
)

// View Что видит игрок после спина
type View struct {
	Reels []string `json:"reels"`
	Match int      `json:"match"`
}

type game struct {
	cfg config.SlotsConfig
}

// NewGame Слот 3 барабана по одной линии
func NewGame(cfg config.SlotsConfig) service.Game {
	return &game{cfg: cfg}
}

func (g *game) Name() string {
	return Name
}

// Open Спин. Игра мгновенная, Play не возвращается
func (g *game) Open(src rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	board, err := g.spin(src)
	if err != nil {
		return nil, model.Step{}, err
	}

	symbol, count := evaluate(board)
	mult := decimal.Zero
	switch count {
	case 3:
		mult = decimal.NewFromInt(int64(symbol.Payout3))
	case 2:
		mult = decimal.NewFromInt(int64(symbol.Payout2))
	}

	view := View{Reels: make([]string, len(board)), Match: count}
	for i, s := range board {
		view.Reels[i] = s.Key
	}

	return nil, model.Step{
		Done:       true,
		Multiplier: mult,
		Payout:     model.Payout(bet, mult),
		View:       view,
	}, nil
}

// spin выбирает символ каждого барабана по весам таблицы
func (g *game) spin(src rng.Source) ([reels]model.SlotSymbol, error) {
	var board [reels]model.SlotSymbol

	table := make([]weighted.Entry[model.SlotSymbol], 0, len(g.cfg.Symbols()))
	for _, s := range g.cfg.Symbols() {
		table = append(table, weighted.Entry[model.SlotSymbol]{Value: s, Weight: s.Weight})
	}

	for r := 0; r < reels; r++ {
		s, err := weighted.Draw(src, table)
		if err != nil {
			return board, err
		}
		board[r] = s
	}
	return board, nil
}

// evaluate находит символ с наибольшим числом совпадений
func evaluate(board [reels]model.SlotSymbol) (model.SlotSymbol, int) {
	if board[0].Key == board[1].Key && board[1].Key == board[2].Key {
		return board[0], 3
	}

	for i := 0; i < reels; i++ {
		for j := i + 1; j < reels; j++ {
			if board[i].Key == board[j].Key {
				return board[i], 2
			}
		}
	}
	return model.SlotSymbol{}, 0
}

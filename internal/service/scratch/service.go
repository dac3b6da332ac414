package scratch

import (
	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"
	"pixel_casino/pkg/weighted"

	"github.com/shopspring/decimal"
)

const (
	Name = "scratch"

	ActionReveal    = "reveal"
	ActionRevealAll = "reveal_all"

	// сколько одинаковых призов нужно для выигрыша
	matchCount = 3
)

type View struct {
	// Cells ключи призов, стертые клетки пустые
	Cells    []string `json:"cells"`
	Revealed int      `json:"revealed"`
	Prize    string   `json:"prize,omitempty"`
}

type game struct {
	cfg config.ScratchConfig
}

// NewGame Скретч-карта: три одинаковых приза выигрывают
func NewGame(cfg config.ScratchConfig) service.Game {
	return &game{cfg: cfg}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	prizes := g.cfg.Prizes()
	table := make([]weighted.Entry[model.ScratchPrize], len(prizes))
	for i, p := range prizes {
		table[i] = weighted.Entry[model.ScratchPrize]{Value: p, Weight: p.Weight}
	}

	p := &play{
		bet:     bet,
		percent: g.cfg.RevealPercent(),
		card:    make([]model.ScratchPrize, g.cfg.ScratchCells()),
		open:    make([]bool, g.cfg.ScratchCells()),
	}
	for i := range p.card {
		prize, err := weighted.Draw(src, table)
		if err != nil {
			return nil, model.Step{}, err
		}
		p.card[i] = prize
	}

	return p, p.step(false), nil
}

type play struct {
	bet      int
	percent  int
	card     []model.ScratchPrize
	open     []bool
	revealed int
}

func (p *play) Act(action model.Action) (model.Step, error) {
	switch action.Name {
	case ActionReveal:
		c := action.Cell
		if c < 0 || c >= len(p.card) || p.open[c] {
			return model.Step{}, service.ErrInvalidAction
		}
		p.open[c] = true
		p.revealed++

		return p.step(p.revealed*100 >= p.percent*len(p.card)), nil
	case ActionRevealAll:
		for i := range p.open {
			p.open[i] = true
		}
		p.revealed = len(p.card)
		return p.step(true), nil
	default:
		return model.Step{}, service.ErrInvalidAction
	}
}

func (p *play) step(done bool) model.Step {
	view := View{Cells: make([]string, len(p.card)), Revealed: p.revealed}
	for i, prize := range p.card {
		if p.open[i] || done {
			view.Cells[i] = prize.Key
		}
	}

	st := model.Step{Done: done, Multiplier: decimal.Zero, View: view}
	if !done {
		return st
	}

	if best, ok := BestPrize(p.card); ok {
		st.Multiplier = best.Multiplier
		st.Payout = model.Payout(p.bet, best.Multiplier)
		view.Prize = best.Key
		st.View = view
	}
	return st
}

// BestPrize приз с наибольшим множителем, встречающийся на карте не меньше трех раз
func BestPrize(card []model.ScratchPrize) (model.ScratchPrize, bool) {
	counts := make(map[string]int, len(card))
	for _, p := range card {
		counts[p.Key]++
	}

	var best model.ScratchPrize
	found := false
	for _, p := range card {
		if counts[p.Key] < matchCount {
			continue
		}
		if !found || p.Multiplier.GreaterThan(best.Multiplier) {
			best = p
			found = true
		}
	}
	return best, found
}

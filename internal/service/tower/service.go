package tower

import (
	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"github.com/shopspring/decimal"
)

const (
	Name = "tower"

	ActionPick    = "pick"
	ActionCashout = "cashout"
)

var (
	base   = decimal.RequireFromString("0.97")
	growth = decimal.RequireFromString("1.5")
)

type View struct {
	Floors     int             `json:"floors"`
	Doors      int             `json:"doors"`
	Floor      int             `json:"floor"`
	Picks      []int           `json:"picks"`
	Traps      [][]int         `json:"traps,omitempty"` // открываются в конце раунда
	Multiplier decimal.Decimal `json:"multiplier"`
	Next       decimal.Decimal `json:"next_multiplier"`
	Fell       bool            `json:"fell"`
}

type game struct {
	cfg config.TowerConfig
}

// NewGame Башня: на каждом этаже одна дверь из нескольких ведет в ловушку
func NewGame(cfg config.TowerConfig) service.Game {
	return &game{cfg: cfg}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	p := &play{
		bet:    bet,
		floors: g.cfg.Floors(),
		doors:  g.cfg.Doors(),
		traps:  make([][]int, g.cfg.Floors()),
	}
	for f := range p.traps {
		p.traps[f] = src.Perm(p.doors)[:g.cfg.Traps()]
	}
	return p, p.step(false), nil
}

type play struct {
	bet    int
	floors int
	doors  int
	traps  [][]int
	picks  []int
	fell   bool
}

func (p *play) Act(action model.Action) (model.Step, error) {
	switch action.Name {
	case ActionPick:
		return p.pick(action.Cell)
	case ActionCashout:
		if len(p.picks) == 0 {
			return model.Step{}, service.ErrInvalidAction
		}
		return p.step(true), nil
	default:
		return model.Step{}, service.ErrInvalidAction
	}
}

func (p *play) pick(door int) (model.Step, error) {
	if door < 0 || door >= p.doors {
		return model.Step{}, service.ErrInvalidAction
	}

	floor := len(p.picks)
	p.picks = append(p.picks, door)

	for _, trap := range p.traps[floor] {
		if trap == door {
			p.fell = true
			return p.step(true), nil
		}
	}

	// вершина башни
	if len(p.picks) == p.floors {
		return p.step(true), nil
	}
	return p.step(false), nil
}

func (p *play) step(done bool) model.Step {
	cleared := len(p.picks)
	if p.fell {
		cleared--
	}

	mult := Multiplier(cleared)
	if p.fell {
		mult = decimal.Zero
	}

	view := View{
		Floors:     p.floors,
		Doors:      p.doors,
		Floor:      cleared,
		Picks:      append([]int(nil), p.picks...),
		Multiplier: mult,
		Fell:       p.fell,
	}
	if cleared < p.floors {
		view.Next = Multiplier(cleared + 1)
	}
	if done {
		view.Traps = p.traps
	}

	st := model.Step{Done: done, Multiplier: mult, View: view}
	if done {
		st.Payout = model.Payout(p.bet, mult)
	}
	return st
}

// Multiplier 0.97 * 1.5^floor, два знака с отбрасыванием
func Multiplier(floor int) decimal.Decimal {
	if floor <= 0 {
		return decimal.Zero
	}
	m := base
	for i := 0; i < floor; i++ {
		m = m.Mul(growth)
	}
	return model.Truncate2(m)
}

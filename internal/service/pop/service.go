package pop

import (
	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"github.com/shopspring/decimal"
)

const (
	Name = "pop"

	ActionPump    = "pump"
	ActionCashout = "cashout"
)

var edge = decimal.RequireFromString("0.99")

type View struct {
	Pumps      int             `json:"pumps"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Popped     bool            `json:"popped"`
	PopPoint   decimal.Decimal `json:"pop_point"` // заполняется после раунда
}

type game struct {
	cfg config.PopConfig
}

// NewGame Шарик: каждое накачивание поднимает множитель, пока шарик не лопнет
func NewGame(cfg config.PopConfig) service.Game {
	return &game{cfg: cfg}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	p := &play{
		bet:      bet,
		step:     g.cfg.Step(),
		popPoint: PopPoint(src.Float64()),
		mult:     decimal.NewFromInt(1),
	}
	return p, p.result(false), nil
}

// PopPoint max(1, 0.99/(1-u)), два знака с отбрасыванием
func PopPoint(u float64) decimal.Decimal {
	one := decimal.NewFromInt(1)
	rest := one.Sub(decimal.NewFromFloat(u))
	if !rest.IsPositive() {
		return one
	}
	return decimal.Max(one, model.Truncate2(edge.Div(rest)))
}

type play struct {
	bet      int
	step     decimal.Decimal
	popPoint decimal.Decimal
	mult     decimal.Decimal
	pumps    int
	popped   bool
}

func (p *play) Act(action model.Action) (model.Step, error) {
	switch action.Name {
	case ActionPump:
		p.pumps++
		p.mult = p.mult.Add(p.step)
		if p.mult.GreaterThanOrEqual(p.popPoint) {
			p.popped = true
			return p.result(true), nil
		}
		return p.result(false), nil
	case ActionCashout:
		if p.pumps == 0 {
			return model.Step{}, service.ErrInvalidAction
		}
		return p.result(true), nil
	default:
		return model.Step{}, service.ErrInvalidAction
	}
}

func (p *play) result(done bool) model.Step {
	mult := p.mult
	if p.popped {
		mult = decimal.Zero
	}

	view := View{Pumps: p.pumps, Multiplier: p.mult, Popped: p.popped}
	if done {
		view.PopPoint = p.popPoint
	}

	st := model.Step{Done: done, Multiplier: mult, View: view}
	if done {
		st.Payout = model.Payout(p.bet, mult)
	}
	return st
}

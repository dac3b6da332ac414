package mines

import (
	"slices"

	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"github.com/shopspring/decimal"
)

const (
	Name = "mines"

	ActionPick    = "pick"
	ActionCashout = "cashout"
)

var houseEdge = decimal.RequireFromString("0.99")

type View struct {
	Cells      int             `json:"cells"`
	MinesCount int             `json:"mines_count"`
	Revealed   []int           `json:"revealed"`
	Mines      []int           `json:"mines,omitempty"` // открываются в конце раунда
	Multiplier decimal.Decimal `json:"multiplier"`
	Next       decimal.Decimal `json:"next_multiplier"`
	Busted     bool            `json:"busted"`
}

type game struct {
	cfg config.MinesConfig
}

// NewGame Поле с минами 5x5
func NewGame(cfg config.MinesConfig) service.Game {
	return &game{cfg: cfg}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, sel model.Selection) (service.Play, model.Step, error) {
	cells := g.cfg.MinesCells()
	count := sel.Mines
	if count == 0 {
		count = g.cfg.DefaultMines()
	}
	if count < 1 || count >= cells {
		return nil, model.Step{}, service.ErrInvalidSelection
	}

	p := &play{
		bet:      bet,
		cells:    cells,
		mines:    make(map[int]bool, count),
		revealed: make(map[int]bool),
		count:    count,
	}
	for _, c := range src.Perm(cells)[:count] {
		p.mines[c] = true
	}

	return p, p.step(false), nil
}

type play struct {
	bet      int
	cells    int
	count    int
	mines    map[int]bool
	revealed map[int]bool
	order    []int
	busted   bool
}

func (p *play) Act(action model.Action) (model.Step, error) {
	switch action.Name {
	case ActionPick:
		return p.pick(action.Cell)
	case ActionCashout:
		if len(p.order) == 0 {
			return model.Step{}, service.ErrInvalidAction
		}
		return p.step(true), nil
	default:
		return model.Step{}, service.ErrInvalidAction
	}
}

func (p *play) pick(cell int) (model.Step, error) {
	if cell < 0 || cell >= p.cells || p.revealed[cell] {
		return model.Step{}, service.ErrInvalidAction
	}

	p.revealed[cell] = true
	p.order = append(p.order, cell)

	if p.mines[cell] {
		p.busted = true
		return p.step(true), nil
	}

	// все безопасные клетки открыты
	if len(p.order) == p.cells-p.count {
		return p.step(true), nil
	}
	return p.step(false), nil
}

func (p *play) step(done bool) model.Step {
	safe := len(p.order)
	mult := Multiplier(p.cells, p.count, safe)
	if p.busted {
		mult = decimal.Zero
	}

	view := View{
		Cells:      p.cells,
		MinesCount: p.count,
		Revealed:   slices.Clone(p.order),
		Multiplier: mult,
		Busted:     p.busted,
	}
	if safe < p.cells-p.count {
		view.Next = Multiplier(p.cells, p.count, safe+1)
	}
	if done {
		for c := range p.mines {
			view.Mines = append(view.Mines, c)
		}
		slices.Sort(view.Mines)
	}

	st := model.Step{Done: done, Multiplier: mult, View: view}
	if done {
		st.Payout = model.Payout(p.bet, mult)
	}
	return st
}

// Multiplier 0.99 * C(cells,k) / C(cells-mines,k), два знака с отбрасыванием
func Multiplier(cells, mines, k int) decimal.Decimal {
	if k <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(binomial(cells, k))
	den := decimal.NewFromInt(binomial(cells-mines, k))
	return model.Truncate2(houseEdge.Mul(num).Div(den))
}

func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := int64(1)
	for i := 1; i <= k; i++ {
		res = res * int64(n-k+i) / int64(i)
	}
	return res
}

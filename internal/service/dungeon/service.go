package dungeon

import (
	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"
	"pixel_casino/pkg/weighted"

	"github.com/shopspring/decimal"
)

const (
	Name = "dungeon"

	ActionAdvance = "advance"
	ActionCashout = "cashout"
)

// Encounter Вытянутая карта и ее последствия
type Encounter struct {
	Type     model.DungeonCardType `json:"type"`
	Title    string                `json:"title"`
	Strength int                   `json:"strength,omitempty"`
	Won      bool                  `json:"won,omitempty"`
	HPLost   int                   `json:"hp_lost,omitempty"`
	Reward   decimal.Decimal       `json:"reward"`
}

type View struct {
	HP         int             `json:"hp"`
	Strength   int             `json:"strength"`
	Depth      int             `json:"depth"`
	MaxDepth   int             `json:"max_depth"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Dead       bool            `json:"dead"`
	Log        []Encounter     `json:"log"`
}

type game struct {
	cfg config.DungeonConfig
}

// NewGame Подземелье: герой тянет карты монстров, усилений, сокровищ и ловушек
func NewGame(cfg config.DungeonConfig) service.Game {
	return &game{cfg: cfg}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	cards := g.cfg.Cards()
	table := make([]weighted.Entry[model.DungeonCard], len(cards))
	for i, c := range cards {
		table[i] = weighted.Entry[model.DungeonCard]{Value: c, Weight: c.Weight}
	}
	if weighted.Total(table) <= 0 {
		return nil, model.Step{}, weighted.ErrEmptyTable
	}

	p := &play{
		src:      src,
		table:    table,
		bet:      bet,
		hp:       g.cfg.HP(),
		strength: g.cfg.Strength(),
		maxDepth: g.cfg.MaxDepth(),
		mult:     decimal.Zero,
	}
	return p, p.step(false), nil
}

type play struct {
	src   rng.Source
	table []weighted.Entry[model.DungeonCard]

	bet      int
	hp       int
	strength int
	depth    int
	maxDepth int
	mult     decimal.Decimal
	log      []Encounter
}

func (p *play) Act(action model.Action) (model.Step, error) {
	switch action.Name {
	case ActionAdvance:
		return p.advance()
	case ActionCashout:
		if p.depth == 0 {
			return model.Step{}, service.ErrInvalidAction
		}
		return p.step(true), nil
	default:
		return model.Step{}, service.ErrInvalidAction
	}
}

func (p *play) advance() (model.Step, error) {
	card, err := weighted.Draw(p.src, p.table)
	if err != nil {
		return model.Step{}, err
	}
	p.depth++

	e := Encounter{Type: card.Type, Title: card.Title, Strength: card.Strength, Reward: decimal.Zero}
	switch card.Type {
	case model.CardMonster:
		if p.strength >= card.Strength {
			e.Won = true
			e.Reward = card.Reward
			p.mult = p.mult.Add(card.Reward)
		} else {
			e.HPLost = card.Strength - p.strength
		}
	case model.CardBuff:
		p.strength += card.Strength
	case model.CardTreasure:
		e.Reward = card.Reward
		p.mult = p.mult.Add(card.Reward)
	case model.CardTrap:
		e.HPLost = card.Damage
	}
	p.hp -= e.HPLost
	p.log = append(p.log, e)

	if p.hp <= 0 {
		p.hp = 0
		return p.step(true), nil
	}
	// дно подземелья: выход с добычей
	if p.depth >= p.maxDepth {
		return p.step(true), nil
	}
	return p.step(false), nil
}

func (p *play) step(done bool) model.Step {
	dead := p.hp <= 0
	mult := p.mult
	if dead {
		mult = decimal.Zero
	}

	st := model.Step{
		Done:       done,
		Multiplier: mult,
		View: View{
			HP:         p.hp,
			Strength:   p.strength,
			Depth:      p.depth,
			MaxDepth:   p.maxDepth,
			Multiplier: p.mult,
			Dead:       dead,
			Log:        append([]Encounter(nil), p.log...),
		},
	}
	if done {
		st.Payout = model.Payout(p.bet, mult)
	}
	return st
}

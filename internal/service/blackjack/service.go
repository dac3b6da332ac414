package blackjack

import (
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"github.com/shopspring/decimal"
)

const (
	Name = "blackjack"

	ActionHit   = "hit"
	ActionStand = "stand"

	OutcomeBlackjack = "blackjack"
	OutcomeWin       = "win"
	OutcomePush      = "push"
	OutcomeLose      = "lose"
	OutcomeBust      = "bust"

	// дилер добирает до 17 и стоит на любых 17
	dealerStand = 17
)

var (
	naturalMult = decimal.RequireFromString("2.5")
	winMult     = decimal.NewFromInt(2)
	pushMult    = decimal.NewFromInt(1)
)

type View struct {
	Player      []string `json:"player"`
	Dealer      []string `json:"dealer"` // вторая карта дилера скрыта до конца раунда
	PlayerTotal int      `json:"player_total"`
	DealerTotal int      `json:"dealer_total,omitempty"`
	Outcome     string   `json:"outcome,omitempty"`
}

type game struct{}

// NewGame Блэкджек против дилера на одной колоде
func NewGame() service.Game {
	return &game{}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	deck := NewDeck()
	src.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	p, step := deal(bet, deck)
	if step.Done {
		return nil, step, nil
	}
	return p, step, nil
}

type play struct {
	bet    int
	deck   []Card
	player []Card
	dealer []Card
}

// deal раздает по две карты: игрок, дилер, игрок, дилер
func deal(bet int, deck []Card) (*play, model.Step) {
	p := &play{bet: bet, deck: deck}
	p.player = append(p.player, p.draw())
	p.dealer = append(p.dealer, p.draw())
	p.player = append(p.player, p.draw())
	p.dealer = append(p.dealer, p.draw())

	playerNatural, dealerNatural := isNatural(p.player), isNatural(p.dealer)
	switch {
	case playerNatural && dealerNatural:
		return p, p.finish(OutcomePush, pushMult)
	case playerNatural:
		return p, p.finish(OutcomeBlackjack, naturalMult)
	case dealerNatural:
		return p, p.finish(OutcomeLose, decimal.Zero)
	}
	return p, p.step()
}

func (p *play) Act(action model.Action) (model.Step, error) {
	switch action.Name {
	case ActionHit:
		p.player = append(p.player, p.draw())
		total, _ := Total(p.player)
		if total > 21 {
			return p.finish(OutcomeBust, decimal.Zero), nil
		}
		if total == 21 {
			return p.stand(), nil
		}
		return p.step(), nil
	case ActionStand:
		return p.stand(), nil
	default:
		return model.Step{}, service.ErrInvalidAction
	}
}

func (p *play) stand() model.Step {
	for {
		total, _ := Total(p.dealer)
		if total >= dealerStand {
			break
		}
		p.dealer = append(p.dealer, p.draw())
	}

	player, _ := Total(p.player)
	dealer, _ := Total(p.dealer)
	switch {
	case dealer > 21 || player > dealer:
		return p.finish(OutcomeWin, winMult)
	case player == dealer:
		return p.finish(OutcomePush, pushMult)
	default:
		return p.finish(OutcomeLose, decimal.Zero)
	}
}

func (p *play) draw() Card {
	c := p.deck[0]
	p.deck = p.deck[1:]
	return c
}

func (p *play) step() model.Step {
	total, _ := Total(p.player)
	return model.Step{
		Multiplier: decimal.Zero,
		View: View{
			Player:      labels(p.player),
			Dealer:      []string{p.dealer[0].String(), "??"},
			PlayerTotal: total,
		},
	}
}

func (p *play) finish(outcome string, mult decimal.Decimal) model.Step {
	player, _ := Total(p.player)
	dealer, _ := Total(p.dealer)
	return model.Step{
		Done:       true,
		Multiplier: mult,
		Payout:     model.Payout(p.bet, mult),
		View: View{
			Player:      labels(p.player),
			Dealer:      labels(p.dealer),
			PlayerTotal: player,
			DealerTotal: dealer,
			Outcome:     outcome,
		},
	}
}

package blackjack

import (
	"testing"

	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng/rngtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(ranks ...int) []Card {
	deck := make([]Card, len(ranks))
	for i, r := range ranks {
		deck[i] = Card{Rank: r, Suit: "S"}
	}
	return deck
}

func TestTotal(t *testing.T) {
	tests := []struct {
		ranks []int
		total int
		soft  bool
	}{
		{ranks: []int{1, 13}, total: 21, soft: true},
		{ranks: []int{1, 6}, total: 17, soft: true},
		{ranks: []int{1, 1, 9}, total: 21, soft: true},
		{ranks: []int{1, 6, 10}, total: 17, soft: false},
		{ranks: []int{12, 11, 2}, total: 22, soft: false},
	}
	for _, tt := range tests {
		total, soft := Total(cards(tt.ranks...))
		assert.Equal(t, tt.total, total, "%v", tt.ranks)
		assert.Equal(t, tt.soft, soft, "%v", tt.ranks)
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	seen := make(map[string]bool)
	for _, c := range deck {
		seen[c.String()] = true
	}
	assert.Len(t, seen, 52)
}

// Порядок раздачи: игрок, дилер, игрок, дилер, дальше добор
func TestBlackjack_Deal(t *testing.T) {
	tests := []struct {
		name    string
		deck    []int
		done    bool
		outcome string
		payout  int
	}{
		{name: "player natural", deck: []int{1, 9, 13, 7}, done: true, outcome: OutcomeBlackjack, payout: 250},
		{name: "both natural push", deck: []int{1, 1, 13, 12}, done: true, outcome: OutcomePush, payout: 100},
		{name: "dealer natural", deck: []int{9, 1, 7, 13}, done: true, outcome: OutcomeLose, payout: 0},
		{name: "regular hand", deck: []int{10, 10, 9, 6}, done: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, step := deal(100, cards(tt.deck...))
			assert.Equal(t, tt.done, step.Done)
			assert.Equal(t, tt.payout, step.Payout)
			assert.Equal(t, tt.outcome, step.View.(View).Outcome)
		})
	}
}

func TestBlackjack_Play(t *testing.T) {
	tests := []struct {
		name    string
		deck    []int
		actions []string
		outcome string
		payout  int
	}{
		{name: "stand and win", deck: []int{10, 10, 9, 6, 2}, actions: []string{ActionStand}, outcome: OutcomeWin, payout: 200},
		{name: "hit and bust", deck: []int{10, 9, 6, 7, 13}, actions: []string{ActionHit}, outcome: OutcomeBust, payout: 0},
		{name: "push", deck: []int{10, 10, 8, 8}, actions: []string{ActionStand}, outcome: OutcomePush, payout: 100},
		{name: "dealer stands on soft 17", deck: []int{10, 1, 7, 6}, actions: []string{ActionStand}, outcome: OutcomePush, payout: 100},
		{name: "dealer busts", deck: []int{10, 10, 8, 6, 13}, actions: []string{ActionStand}, outcome: OutcomeWin, payout: 200},
		{name: "lose to dealer", deck: []int{10, 10, 7, 9}, actions: []string{ActionStand}, outcome: OutcomeLose, payout: 0},
		{name: "hit to 21 stands", deck: []int{5, 10, 6, 7, 13}, actions: []string{ActionHit}, outcome: OutcomeWin, payout: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, step := deal(100, cards(tt.deck...))
			require.False(t, step.Done)
			assert.Equal(t, "??", step.View.(View).Dealer[1])

			for _, a := range tt.actions {
				step, _ = p.Act(model.Action{Name: a})
			}
			assert.True(t, step.Done)
			assert.Equal(t, tt.outcome, step.View.(View).Outcome)
			assert.Equal(t, tt.payout, step.Payout)
		})
	}
}

func TestBlackjack_OpenShufflesThroughSource(t *testing.T) {
	// Scripted.Shuffle не меняет колоду: A S, 2 S, 3 S, 4 S
	play, step, err := NewGame().Open(&rngtest.Scripted{}, 10, model.Selection{})
	require.NoError(t, err)
	require.NotNil(t, play)
	assert.False(t, step.Done)
	assert.Equal(t, []string{"AS", "3S"}, step.View.(View).Player)

	_, err = play.Act(model.Action{Name: "pick"})
	assert.ErrorIs(t, err, service.ErrInvalidAction)
}

package roulette

import (
	"testing"

	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng/rngtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoulette_Open(t *testing.T) {
	g := NewGame()

	tests := []struct {
		name   string
		sel    model.Selection
		roll   int
		payout int
	}{
		{name: "straight number hit", sel: model.Selection{Kind: KindNumber, Number: 17}, roll: 17, payout: 360},
		{name: "straight number miss", sel: model.Selection{Kind: KindNumber, Number: 17}, roll: 18, payout: 0},
		{name: "straight zero hit", sel: model.Selection{Kind: KindNumber, Number: 0}, roll: 0, payout: 360},
		{name: "red wins", sel: model.Selection{Kind: KindColor, Value: Red}, roll: 1, payout: 20},
		{name: "red loses on black", sel: model.Selection{Kind: KindColor, Value: Red}, roll: 2, payout: 0},
		{name: "black loses on zero", sel: model.Selection{Kind: KindColor, Value: Black}, roll: 0, payout: 0},
		{name: "even wins", sel: model.Selection{Kind: KindParity, Value: Even}, roll: 36, payout: 20},
		{name: "even loses on zero", sel: model.Selection{Kind: KindParity, Value: Even}, roll: 0, payout: 0},
		{name: "odd wins", sel: model.Selection{Kind: KindParity, Value: Odd}, roll: 35, payout: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			play, step, err := g.Open(&rngtest.Scripted{Ints: []int{tt.roll}}, 10, tt.sel)
			require.NoError(t, err)
			assert.Nil(t, play)
			assert.True(t, step.Done)
			assert.Equal(t, tt.payout, step.Payout)
			assert.Equal(t, tt.roll, step.View.(View).Number)
		})
	}
}

func TestRoulette_InvalidSelection(t *testing.T) {
	g := NewGame()

	for _, sel := range []model.Selection{
		{},
		{Kind: "dozen"},
		{Kind: KindNumber, Number: 37},
		{Kind: KindNumber, Number: -1},
		{Kind: KindColor, Value: Green},
		{Kind: KindParity, Value: "high"},
	} {
		_, _, err := g.Open(&rngtest.Scripted{}, 10, sel)
		assert.ErrorIs(t, err, service.ErrInvalidSelection, "%+v", sel)
	}
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, Green, ColorOf(0))
	assert.Equal(t, Red, ColorOf(32))
	assert.Equal(t, Black, ColorOf(15))
}

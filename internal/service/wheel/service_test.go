package wheel

import (
	"testing"

	"pixel_casino/internal/config/env"
	"pixel_casino/internal/model"
	"pixel_casino/pkg/rng/rngtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Веса по умолчанию в сумме 100, x10 последний с весом 1
func TestWheel_Open(t *testing.T) {
	g := NewGame(env.DefaultGamesConfig())

	tests := []struct {
		name    string
		u       float64
		segment int
		payout  int
	}{
		{name: "x10 pays 500", u: 0.995, segment: 8, payout: 500},
		{name: "x0 pays nothing", u: 0.05, segment: 0, payout: 0},
		{name: "x0.5 floors", u: 0.3, segment: 1, payout: 25},
		{name: "x1.5", u: 0.6, segment: 3, payout: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			play, step, err := g.Open(&rngtest.Scripted{Floats: []float64{tt.u}}, 50, model.Selection{})
			require.NoError(t, err)
			assert.Nil(t, play)
			assert.True(t, step.Done)
			assert.Equal(t, tt.segment, step.View.(View).Segment)
			assert.Equal(t, tt.payout, step.Payout)
		})
	}
}

func TestWheel_PayoutFloors(t *testing.T) {
	g := NewGame(env.DefaultGamesConfig())

	_, step, err := g.Open(&rngtest.Scripted{Floats: []float64{0.3}}, 25, model.Selection{})
	require.NoError(t, err)
	assert.Equal(t, 12, step.Payout)
}

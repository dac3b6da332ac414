package pop

import (
	"testing"

	"pixel_casino/internal/config/env"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng/rngtest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopPoint(t *testing.T) {
	tests := []struct {
		u    float64
		want string
	}{
		{u: 0, want: "1"},
		{u: 0.005, want: "1"},
		{u: 0.5, want: "1.98"},
		{u: 0.9, want: "9.9"},
		{u: 0.99, want: "99"},
	}
	for _, tt := range tests {
		got := PopPoint(tt.u)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "u %v: %s", tt.u, got)
		assert.True(t, got.GreaterThanOrEqual(decimal.NewFromInt(1)))
	}
}

func open(t *testing.T, bet int, u float64) service.Play {
	t.Helper()
	play, step, err := NewGame(env.DefaultGamesConfig()).Open(&rngtest.Scripted{Floats: []float64{u}}, bet, model.Selection{})
	require.NoError(t, err)
	require.False(t, step.Done)
	return play
}

func TestPop_PumpAndCashout(t *testing.T) {
	play := open(t, 100, 0.5)

	for i := 0; i < 3; i++ {
		step, err := play.Act(model.Action{Name: ActionPump})
		require.NoError(t, err)
		assert.False(t, step.Done)
	}

	step, err := play.Act(model.Action{Name: ActionCashout})
	require.NoError(t, err)
	assert.True(t, step.Done)
	assert.Equal(t, 175, step.Payout)
	assert.Equal(t, "1.98", step.View.(View).PopPoint.String())
}

func TestPop_Bursts(t *testing.T) {
	play := open(t, 100, 0.5)

	var step model.Step
	var err error
	for i := 0; i < 4; i++ {
		step, err = play.Act(model.Action{Name: ActionPump})
		require.NoError(t, err)
	}
	assert.True(t, step.Done)
	assert.Equal(t, 0, step.Payout)
	assert.True(t, step.View.(View).Popped)
}

func TestPop_InstantPopOnFirstPump(t *testing.T) {
	play := open(t, 100, 0)

	step, err := play.Act(model.Action{Name: ActionPump})
	require.NoError(t, err)
	assert.True(t, step.Done)
	assert.Equal(t, 0, step.Payout)
}

func TestPop_CashoutNeedsPump(t *testing.T) {
	play := open(t, 100, 0.5)

	_, err := play.Act(model.Action{Name: ActionCashout})
	assert.ErrorIs(t, err, service.ErrInvalidAction)

	_, err = play.Act(model.Action{Name: "advance"})
	assert.ErrorIs(t, err, service.ErrInvalidAction)
}

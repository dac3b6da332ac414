package dungeon

import (
	"testing"

	"pixel_casino/internal/config/env"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng/rngtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Накопленные веса по умолчанию: goblin 30, orc 50, dragon 55, sword 70, chest 85, spikes 100
const (
	goblin = 0.1
	orc    = 0.4
	dragon = 0.52
	sword  = 0.6
	chest  = 0.8
	spikes = 0.9
)

func open(t *testing.T, bet int, draws ...float64) service.Play {
	t.Helper()
	play, step, err := NewGame(env.DefaultGamesConfig()).Open(&rngtest.Scripted{Floats: draws}, bet, model.Selection{})
	require.NoError(t, err)
	require.False(t, step.Done)

	view := step.View.(View)
	assert.Equal(t, 10, view.HP)
	assert.Equal(t, 3, view.Strength)
	assert.True(t, step.Multiplier.IsZero())
	return play
}

func advance(t *testing.T, play service.Play, n int) model.Step {
	t.Helper()
	var step model.Step
	for i := 0; i < n; i++ {
		var err error
		step, err = play.Act(model.Action{Name: ActionAdvance})
		require.NoError(t, err)
	}
	return step
}

func TestDungeon_LootAndCashout(t *testing.T) {
	play := open(t, 100, goblin, chest)

	step := advance(t, play, 2)
	assert.False(t, step.Done)
	assert.Equal(t, "0.8", step.Multiplier.String())

	step, err := play.Act(model.Action{Name: ActionCashout})
	require.NoError(t, err)
	assert.True(t, step.Done)
	assert.Equal(t, 80, step.Payout)
}

func TestDungeon_BuffBeatsMonster(t *testing.T) {
	play := open(t, 100, orc, sword, orc)

	step := advance(t, play, 1)
	view := step.View.(View)
	assert.Equal(t, 8, view.HP, "orc is stronger and hits for the difference")
	assert.False(t, view.Log[0].Won)

	step = advance(t, play, 2)
	view = step.View.(View)
	assert.Equal(t, 5, view.Strength)
	assert.True(t, view.Log[2].Won)
	assert.Equal(t, "0.6", step.Multiplier.String())
}

func TestDungeon_DeathPaysZero(t *testing.T) {
	play := open(t, 100, goblin, dragon, spikes, spikes)

	step := advance(t, play, 3)
	assert.False(t, step.Done)
	assert.Equal(t, 1, step.View.(View).HP)

	step = advance(t, play, 1)
	assert.True(t, step.Done)
	assert.Equal(t, 0, step.Payout)
	assert.True(t, step.View.(View).Dead)
	assert.Equal(t, 0, step.View.(View).HP)
}

func TestDungeon_MaxDepthCashesOut(t *testing.T) {
	draws := make([]float64, 10)
	for i := range draws {
		draws[i] = goblin
	}
	play := open(t, 100, draws...)

	step := advance(t, play, 9)
	assert.False(t, step.Done)

	step = advance(t, play, 1)
	assert.True(t, step.Done)
	assert.Equal(t, 300, step.Payout)
}

func TestDungeon_InvalidActions(t *testing.T) {
	play := open(t, 100)

	_, err := play.Act(model.Action{Name: ActionCashout})
	assert.ErrorIs(t, err, service.ErrInvalidAction)

	_, err = play.Act(model.Action{Name: "stand"})
	assert.ErrorIs(t, err, service.ErrInvalidAction)
}

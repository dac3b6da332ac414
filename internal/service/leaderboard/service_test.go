package leaderboard

import (
	"context"
	"testing"

	"pixel_casino/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWallet struct {
	mock.Mock
}

func (m *mockWallet) Get(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *mockWallet) Set(context.Context, string, int) (int, error) {
	return 0, nil
}

func (m *mockWallet) Add(context.Context, string, int) (int, error) {
	return 0, nil
}

func (m *mockWallet) Reset(context.Context, string) (int, error) {
	return 0, nil
}

func (m *mockWallet) Credit(context.Context, string, int, string) (int, error) {
	return 0, nil
}

func (m *mockWallet) Wager(context.Context, string, int, func() (int, error)) (int, error) {
	return 0, nil
}

type rivals []model.Rival

func (r rivals) Rivals() []model.Rival { return r }

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	w := new(mockWallet)
	w.On("Get", ctx, "p1").Return(5000, nil)

	s := NewLeaderboardService(w, rivals{
		{Name: "Low", Balance: 100},
		{Name: "High", Balance: 9000},
		{Name: "Tie", Balance: 5000},
	})

	entries, err := s.Leaderboard(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, []string{"High", YouName, "Tie", "Low"}, []string{entries[0].Name, entries[1].Name, entries[2].Name, entries[3].Name})
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
	assert.True(t, entries[1].IsYou)
	assert.Equal(t, 5000, entries[1].Balance)

	w.AssertExpectations(t)
}

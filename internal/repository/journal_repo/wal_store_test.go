package journal_repo

import (
	"testing"

	"pixel_casino/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWALStore_AppendAndRead(t *testing.T) {
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, store.Close())
	}()

	for i := 1; i <= 3; i++ {
		idx, err := store.Append(model.JournalRecord{
			RoundID:    uuid.New(),
			PlayerID:   "p1",
			Game:       "slots",
			Bet:        20 * i,
			Multiplier: decimal.NewFromInt(int64(i)),
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(i), idx)
	}
	assert.Equal(t, uint64(3), store.CurrentIndex())

	records, err := store.RecordsAfter(1, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint64(2), records[0].Index)
	assert.Equal(t, 40, records[0].Bet)
	assert.True(t, records[1].Multiplier.Equal(decimal.NewFromInt(3)))

	limited, err := store.RecordsAfter(0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := store.RecordsAfter(3, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

package round

import (
	"context"
	"errors"
	"testing"
	"time"

	"pixel_casino/internal/config/env"
	"pixel_casino/internal/events"
	"pixel_casino/internal/model"
	"pixel_casino/internal/repository"
	"pixel_casino/internal/repository/balance_repo"
	"pixel_casino/internal/repository/journal_repo"
	"pixel_casino/internal/repository/stats_repo"
	"pixel_casino/internal/service"
	"pixel_casino/internal/service/mines"
	"pixel_casino/internal/service/roulette"
	"pixel_casino/internal/service/slots"
	"pixel_casino/internal/service/wallet"
	"pixel_casino/pkg/rng"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type walletCfg struct{}

func (walletCfg) StartBalance() int { return 1000 }
func (walletCfg) MaxBalance() int   { return 999999 }

type roundCfg struct {
	delay time.Duration
}

func (c *roundCfg) SettleDelay() time.Duration { return c.delay }
func (c *roundCfg) ServerSeed() []byte         { return []byte("round-test-seed") }

// fixedGame мгновенная игра с заранее известной выплатой
type fixedGame struct {
	mult decimal.Decimal
}

func (fixedGame) Name() string { return "fixed" }

func (g fixedGame) Open(_ rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	return nil, model.Step{Done: true, Multiplier: g.mult, Payout: model.Payout(bet, g.mult)}, nil
}

// stepGame многошаговая игра: "finish" завершает раунд с выплатой x3
type stepGame struct{}

const actionFinish = "finish"

func (stepGame) Name() string { return "step" }

func (stepGame) Open(_ rng.Source, _ int, _ model.Selection) (service.Play, model.Step, error) {
	return &stepPlay{}, model.Step{Multiplier: decimal.Zero}, nil
}

type stepPlay struct {
	finished bool
}

func (p *stepPlay) Act(action model.Action) (model.Step, error) {
	if p.finished || action.Name != actionFinish {
		return model.Step{}, service.ErrInvalidAction
	}
	p.finished = true
	mult := decimal.NewFromInt(3)
	return model.Step{Done: true, Multiplier: mult, Payout: 30}, nil
}

// flakyWallet кошелек, у которого можно сломать начисление
type flakyWallet struct {
	service.WalletService
	failCredit bool
}

func (w *flakyWallet) Credit(ctx context.Context, playerID string, amount int, reason string) (int, error) {
	if w.failCredit {
		return 0, errors.New("storage unavailable")
	}
	return w.WalletService.Credit(ctx, playerID, amount, reason)
}

type fixture struct {
	rounds *serv
	wallet *flakyWallet
	cfg    *roundCfg
}

func (f fixture) sessionCount() int {
	f.rounds.mu.Lock()
	defer f.rounds.mu.Unlock()
	return len(f.rounds.sessions)
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	w := &flakyWallet{WalletService: wallet.NewWalletService(
		balance_repo.NewMemoryRepository(),
		repository.NopTxManager{},
		walletCfg{},
		events.NewBalanceBroadcaster(8),
		zap.NewNop(),
	)}

	journal, err := journal_repo.NewWALStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })

	cfg := &roundCfg{delay: time.Hour}
	seeder, err := rng.NewSeeder(cfg.ServerSeed())
	require.NoError(t, err)

	games := env.DefaultGamesConfig()
	rounds := NewRoundService(
		[]service.Game{
			fixedGame{mult: decimal.NewFromInt(20)},
			slots.NewGame(games),
			roulette.NewGame(),
			mines.NewGame(games),
			stepGame{},
		},
		w,
		stats_repo.NewStatsRepository(zap.NewNop()),
		journal,
		seeder,
		games,
		cfg,
		zap.NewNop(),
	)

	return fixture{rounds: rounds.(*serv), wallet: w, cfg: cfg}
}

func TestStart_InstantWin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.wallet.Set(ctx, "p", 100)
	require.NoError(t, err)

	r, err := f.rounds.Start(ctx, "p", "fixed", 20, model.Selection{})
	require.NoError(t, err)
	assert.Equal(t, model.StateResolved, r.State)
	assert.Equal(t, 400, r.Payout)
	assert.Equal(t, 480, r.Balance)

	history, err := f.rounds.History(ctx, "p", "fixed")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, r.ID, history[0].RoundID)

	stats, err := f.rounds.Stats(ctx, "fixed")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRounds)
	assert.InDelta(t, 2000.0, stats.CurrentRTP, 0.001)

	journal, err := f.rounds.Journal(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, r.Seed, journal[0].Seed)
	assert.Equal(t, f.rounds.seeder.Digest(), journal[0].SeedDigest)
}

func TestStart_Guards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.wallet.Set(ctx, "p", 5)
	require.NoError(t, err)

	tests := []struct {
		name string
		game string
		bet  int
		sel  model.Selection
		err  error
	}{
		{name: "zero bet", game: "fixed", bet: 0, err: service.ErrInvalidBet},
		{name: "bet outside menu", game: "fixed", bet: 15, err: service.ErrBetNotAllowed},
		{name: "unknown game", game: "poker", bet: 10, err: service.ErrUnknownGame},
		{name: "insufficient balance", game: "fixed", bet: 10, err: service.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.rounds.Start(ctx, "p", tt.game, tt.bet, tt.sel)
			assert.ErrorIs(t, err, tt.err)

			balance, err := f.wallet.Get(ctx, "p")
			require.NoError(t, err)
			assert.Equal(t, 5, balance)
		})
	}

	cur, err := f.rounds.Current(ctx, "p", "fixed")
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, cur.State)
}

func TestStart_InvalidSelectionLeavesBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.rounds.Start(ctx, "p", roulette.Name, 10, model.Selection{Kind: "corner"})
	assert.ErrorIs(t, err, service.ErrInvalidSelection)

	balance, err := f.wallet.Get(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, 1000, balance)
}

func TestMines_CashoutIsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	r, err := f.rounds.Start(ctx, "p", mines.Name, 100, model.Selection{Mines: 1})
	require.NoError(t, err)
	assert.Equal(t, model.StateArmed, r.State)
	assert.Equal(t, 900, r.Balance)

	_, err = f.rounds.Start(ctx, "p", mines.Name, 100, model.Selection{Mines: 1})
	assert.ErrorIs(t, err, service.ErrRoundInProgress)
	assert.ErrorIs(t, f.rounds.Reset(ctx, "p", mines.Name), service.ErrRoundInProgress)

	// с одной миной хотя бы одна из двух клеток безопасна
	var picked *model.Round
	for cell := 0; cell < 2; cell++ {
		picked, err = f.rounds.Act(ctx, "p", mines.Name, model.Action{Name: mines.ActionPick, Cell: cell})
		require.NoError(t, err)
		if picked.State == model.StateResolved {
			break
		}
	}

	if picked.State == model.StateArmed {
		picked, err = f.rounds.Act(ctx, "p", mines.Name, model.Action{Name: mines.ActionCashout})
		require.NoError(t, err)
		assert.Equal(t, model.StateResolved, picked.State)
		assert.Equal(t, model.Payout(100, picked.Multiplier), picked.Payout)
		assert.Equal(t, 900+picked.Payout, picked.Balance)
	} else {
		assert.Equal(t, 0, picked.Payout)
		assert.Equal(t, 900, picked.Balance)
	}

	_, err = f.rounds.Act(ctx, "p", mines.Name, model.Action{Name: mines.ActionCashout})
	assert.ErrorIs(t, err, service.ErrNoActiveRound)
}

func TestAct_WithoutRound(t *testing.T) {
	f := newFixture(t)

	_, err := f.rounds.Act(context.Background(), "p", mines.Name, model.Action{Name: mines.ActionPick})
	assert.ErrorIs(t, err, service.ErrNoActiveRound)
}

func TestSettle_ReturnsToIdle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.cfg.delay = 10 * time.Millisecond

	_, err := f.rounds.Start(ctx, "p", "fixed", 10, model.Selection{})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		r, err := f.rounds.Current(ctx, "p", "fixed")
		return err == nil && r.State == model.StateIdle
	}, time.Second, 5*time.Millisecond)
}

func TestSettle_StaleTimerKeepsNewRound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.rounds.Start(ctx, "p", "fixed", 10, model.Selection{})
	require.NoError(t, err)
	second, err := f.rounds.Start(ctx, "p", "fixed", 10, model.Selection{})
	require.NoError(t, err)
	require.Greater(t, second.Generation, first.Generation)

	// таймер первого раунда срабатывает уже после начала второго
	f.cfg.delay = time.Millisecond
	sess := f.rounds.session("p", "fixed")
	sess.mu.Lock()
	f.rounds.scheduleSettle(sess, first.Generation)
	sess.mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	cur, err := f.rounds.Current(ctx, "p", "fixed")
	require.NoError(t, err)
	assert.Equal(t, model.StateResolved, cur.State)
	assert.Equal(t, second.ID, cur.ID)

	sess.mu.Lock()
	f.rounds.scheduleSettle(sess, second.Generation)
	sess.mu.Unlock()

	require.Eventually(t, func() bool {
		r, err := f.rounds.Current(ctx, "p", "fixed")
		return err == nil && r.State == model.StateIdle
	}, time.Second, 5*time.Millisecond)
}

func TestReset_ClearsResolvedRound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.rounds.Start(ctx, "p", "fixed", 10, model.Selection{})
	require.NoError(t, err)
	require.NoError(t, f.rounds.Reset(ctx, "p", "fixed"))

	cur, err := f.rounds.Current(ctx, "p", "fixed")
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, cur.State)
	assert.Equal(t, 1190, cur.Balance)
}

func TestReplay_ReproducesOutcome(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i := 0; i < 5; i++ {
		_, err := f.rounds.Start(ctx, "p", slots.Name, 10, model.Selection{})
		require.NoError(t, err)
	}

	r, err := f.rounds.Start(ctx, "p", mines.Name, 10, model.Selection{Mines: 5})
	require.NoError(t, err)
	for cell := 0; r.State == model.StateArmed && cell < 25; cell++ {
		r, err = f.rounds.Act(ctx, "p", mines.Name, model.Action{Name: mines.ActionPick, Cell: cell})
		require.NoError(t, err)
		if r.State == model.StateArmed && cell == 3 {
			r, err = f.rounds.Act(ctx, "p", mines.Name, model.Action{Name: mines.ActionCashout})
			require.NoError(t, err)
		}
	}
	require.Equal(t, model.StateResolved, r.State)

	for index := uint64(1); index <= 6; index++ {
		replay, err := f.rounds.Replay(ctx, index)
		require.NoError(t, err)
		assert.True(t, replay.Matches, "record %d", index)
		assert.Equal(t, replay.Record.Payout, replay.Payout)
	}

	_, err = f.rounds.Replay(ctx, 7)
	assert.ErrorIs(t, err, service.ErrRecordNotFound)
	_, err = f.rounds.Replay(ctx, 0)
	assert.ErrorIs(t, err, service.ErrRecordNotFound)
}

func TestGamesAndBets(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"fixed", slots.Name, roulette.Name, mines.Name, "step"}, f.rounds.Games())
	assert.Equal(t, []int{10, 20, 50, 100, 250, 500}, f.rounds.Bets())
}

func TestSettle_EvictsIdleSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.cfg.delay = 10 * time.Millisecond

	for _, player := range []string{"p1", "p2", "p3"} {
		_, err := f.rounds.Start(ctx, player, "fixed", 10, model.Selection{})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, f.sessionCount())

	require.Eventually(t, func() bool {
		return f.sessionCount() == 0
	}, time.Second, 5*time.Millisecond)

	// после выселения игрок играет как обычно
	f.cfg.delay = time.Hour
	r, err := f.rounds.Start(ctx, "p1", "fixed", 10, model.Selection{})
	require.NoError(t, err)
	cur, err := f.rounds.Current(ctx, "p1", "fixed")
	require.NoError(t, err)
	assert.Equal(t, r.ID, cur.ID)
	assert.Len(t, mustHistory(t, f, "p1"), 2)
}

func TestSession_NotKeptForReadsAndFailedStarts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.rounds.Current(ctx, "p", mines.Name)
	require.NoError(t, err)
	_, err = f.rounds.Act(ctx, "p", mines.Name, model.Action{Name: mines.ActionPick})
	assert.ErrorIs(t, err, service.ErrNoActiveRound)
	require.NoError(t, f.rounds.Reset(ctx, "p", mines.Name))

	_, err = f.rounds.Start(ctx, "p", roulette.Name, 10, model.Selection{Kind: "bogus"})
	assert.ErrorIs(t, err, service.ErrInvalidSelection)
	_, err = f.wallet.Set(ctx, "p", 100)
	require.NoError(t, err)
	_, err = f.rounds.Start(ctx, "p", mines.Name, 100, model.Selection{})
	require.NoError(t, err)
	_, err = f.rounds.Start(ctx, "p", "fixed", 10, model.Selection{})
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)

	// остается только сессия с открытым раундом мин
	assert.Equal(t, 1, f.sessionCount())
}

func TestReset_EvictsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.rounds.Start(ctx, "p", "fixed", 10, model.Selection{})
	require.NoError(t, err)
	require.Equal(t, 1, f.sessionCount())

	require.NoError(t, f.rounds.Reset(ctx, "p", "fixed"))
	assert.Equal(t, 0, f.sessionCount())
}

func TestAct_RetriesCreditAfterFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	r, err := f.rounds.Start(ctx, "p", "step", 10, model.Selection{})
	require.NoError(t, err)
	require.Equal(t, model.StateArmed, r.State)

	f.wallet.failCredit = true
	_, err = f.rounds.Act(ctx, "p", "step", model.Action{Name: actionFinish})
	require.Error(t, err)

	cur, err := f.rounds.Current(ctx, "p", "step")
	require.NoError(t, err)
	assert.Equal(t, model.StateArmed, cur.State)
	_, err = f.rounds.Start(ctx, "p", "step", 10, model.Selection{})
	assert.ErrorIs(t, err, service.ErrRoundInProgress)

	// повтор не ходит в игру снова, а только начисляет выплату
	f.wallet.failCredit = false
	r, err = f.rounds.Act(ctx, "p", "step", model.Action{Name: actionFinish})
	require.NoError(t, err)
	assert.Equal(t, model.StateResolved, r.State)
	assert.Equal(t, 30, r.Payout)
	assert.Equal(t, 1020, r.Balance)

	_, err = f.rounds.Act(ctx, "p", "step", model.Action{Name: actionFinish})
	assert.ErrorIs(t, err, service.ErrNoActiveRound)

	balance, err := f.wallet.Get(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, 1020, balance)
}

func TestJournal_WithoutJournalRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.rounds.journal = nil

	_, err := f.rounds.Start(ctx, "p", "fixed", 10, model.Selection{})
	require.NoError(t, err)

	records, err := f.rounds.Journal(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = f.rounds.Replay(ctx, 1)
	assert.ErrorIs(t, err, service.ErrRecordNotFound)
}

func mustHistory(t *testing.T, f fixture, player string) []model.HistoryEntry {
	t.Helper()
	entries, err := f.rounds.History(context.Background(), player, "fixed")
	require.NoError(t, err)
	return entries
}

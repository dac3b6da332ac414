package round

import (
	"context"
	"slices"
	"time"

	"pixel_casino/internal/model"
	"pixel_casino/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	reasonCashout = "cashout"
	// journalLimit Размер страницы журнала по умолчанию
	journalLimit = 100
)

// Start Списывает ставку и открывает раунд. Мгновенные игры разыгрываются сразу
func (s *serv) Start(ctx context.Context, playerID, game string, bet int, sel model.Selection) (*model.Round, error) {
	// Валидация ставки
	if bet <= 0 {
		return nil, service.ErrInvalidBet
	}
	if !slices.Contains(s.bets.Bets(), bet) {
		return nil, service.ErrBetNotAllowed
	}

	g, err := s.game(game)
	if err != nil {
		return nil, err
	}

	sess := s.acquire(playerID, game)
	defer sess.mu.Unlock()

	if sess.round != nil && sess.round.State == model.StateArmed {
		return nil, service.ErrRoundInProgress
	}

	seed, nonce := s.seeder.Next(playerID)

	var (
		play service.Play
		step model.Step
	)
	// Списание ставки и розыгрыш одной операцией кошелька
	balance, err := s.wallet.Wager(ctx, playerID, bet, func() (int, error) {
		var err error
		play, step, err = g.Open(seed.Source(), bet, sel)
		if err != nil {
			return 0, err
		}
		if step.Done {
			return step.Payout, nil
		}
		return 0, nil
	})
	if err != nil {
		s.evict(sess)
		return nil, err
	}

	// Новый раунд делает недействительными таймеры прошлого
	s.stopTimer(sess)
	sess.generation++
	sess.play = play
	sess.actions = nil
	sess.round = &model.Round{
		ID:         uuid.New(),
		PlayerID:   playerID,
		Game:       game,
		Bet:        bet,
		Selection:  sel,
		State:      model.StateArmed,
		Multiplier: step.Multiplier,
		View:       step.View,
		Balance:    balance,
		Seed:       seed.String(),
		Nonce:      nonce,
		Generation: sess.generation,
		StartedAt:  time.Now().UTC(),
	}

	if step.Done {
		s.resolve(sess, step)
	}

	r := *sess.round
	return &r, nil
}

// Act Ход в многошаговой игре. При завершении начисляет выигрыш
func (s *serv) Act(ctx context.Context, playerID, game string, action model.Action) (*model.Round, error) {
	if _, err := s.game(game); err != nil {
		return nil, err
	}

	sess := s.lookup(playerID, game)
	if sess == nil {
		return nil, service.ErrNoActiveRound
	}
	defer sess.mu.Unlock()

	if sess.round == nil || sess.round.State != model.StateArmed || sess.play == nil {
		return nil, service.ErrNoActiveRound
	}

	var step model.Step
	if sess.pending != nil {
		// Игра уже закончена, повторяем только начисление
		step = *sess.pending
	} else {
		var err error
		step, err = sess.play.Act(action)
		if err != nil {
			return nil, err
		}
		sess.actions = append(sess.actions, action)

		sess.round.Multiplier = step.Multiplier
		sess.round.View = step.View
	}

	var (
		balance int
		err     error
	)
	if step.Done && step.Payout > 0 {
		balance, err = s.wallet.Credit(ctx, playerID, step.Payout, reasonCashout)
	} else {
		balance, err = s.wallet.Get(ctx, playerID)
	}
	if err != nil {
		if step.Done {
			sess.pending = &step
		}
		return nil, err
	}
	sess.pending = nil
	sess.round.Balance = balance

	if step.Done {
		s.resolve(sess, step)
	}

	r := *sess.round
	return &r, nil
}

// resolve Фиксирует исход: история, статистика, журнал, таймер возврата в idle.
// Вызывается под sess.mu
func (s *serv) resolve(sess *session, step model.Step) {
	r := sess.round
	r.State = model.StateResolved
	r.Payout = step.Payout
	r.Multiplier = step.Multiplier
	r.View = step.View
	r.ResolvedAt = time.Now().UTC()
	sess.play = nil

	s.stats.PushHistory(r.PlayerID, r.Game, model.HistoryEntry{
		RoundID:    r.ID,
		Bet:        r.Bet,
		Payout:     r.Payout,
		Multiplier: r.Multiplier,
		ResolvedAt: r.ResolvedAt,
	})
	s.stats.UpdateState(r.Game, float64(r.Bet), float64(r.Payout))

	if s.journal != nil {
		_, err := s.journal.Append(model.JournalRecord{
			RoundID:    r.ID,
			PlayerID:   r.PlayerID,
			Game:       r.Game,
			Bet:        r.Bet,
			Payout:     r.Payout,
			Multiplier: r.Multiplier,
			Selection:  r.Selection,
			Actions:    slices.Clone(sess.actions),
			Seed:       r.Seed,
			Nonce:      r.Nonce,
			SeedDigest: s.seeder.Digest(),
			ResolvedAt: r.ResolvedAt,
		})
		if err != nil {
			s.logger.Error("failed to journal round", zap.String("round", r.ID.String()), zap.Error(err))
		}
	}

	s.logger.Info("round resolved",
		zap.String("game", r.Game),
		zap.String("player", r.PlayerID),
		zap.Int("bet", r.Bet),
		zap.Int("payout", r.Payout),
		zap.String("multiplier", r.Multiplier.String()))

	s.scheduleSettle(sess, sess.generation)
}

// scheduleSettle Через SettleDelay возвращает сессию в idle, если за это время
// не начался новый раунд
func (s *serv) scheduleSettle(sess *session, generation uint64) {
	sess.timer = time.AfterFunc(s.cfg.SettleDelay(), func() {
		sess.mu.Lock()
		defer sess.mu.Unlock()

		if sess.generation != generation {
			return
		}
		sess.timer = nil
		if sess.round != nil && sess.round.State == model.StateResolved {
			sess.round = nil
			sess.actions = nil
		}
		s.evict(sess)
	})
}

func (s *serv) stopTimer(sess *session) {
	if sess.timer != nil {
		sess.timer.Stop()
		sess.timer = nil
	}
}

// Current Текущий раунд или idle, если раунда нет
func (s *serv) Current(ctx context.Context, playerID, game string) (*model.Round, error) {
	if _, err := s.game(game); err != nil {
		return nil, err
	}

	var r model.Round
	if sess := s.lookup(playerID, game); sess != nil {
		if sess.round != nil {
			r = *sess.round
		}
		sess.mu.Unlock()
	}

	if r.State != "" {
		return &r, nil
	}

	balance, err := s.wallet.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &model.Round{
		PlayerID: playerID,
		Game:     game,
		State:    model.StateIdle,
		Balance:  balance,
	}, nil
}

// Reset Убирает завершенный раунд. Раунд со списанной ставкой сбросить нельзя
func (s *serv) Reset(_ context.Context, playerID, game string) error {
	if _, err := s.game(game); err != nil {
		return err
	}

	sess := s.lookup(playerID, game)
	if sess == nil {
		return nil
	}
	defer sess.mu.Unlock()

	if sess.round != nil && sess.round.State == model.StateArmed {
		return service.ErrRoundInProgress
	}

	s.stopTimer(sess)
	sess.generation++
	sess.round = nil
	sess.play = nil
	sess.actions = nil
	s.evict(sess)
	return nil
}

func (s *serv) History(_ context.Context, playerID, game string) ([]model.HistoryEntry, error) {
	if _, err := s.game(game); err != nil {
		return nil, err
	}
	return s.stats.History(playerID, game), nil
}

func (s *serv) Stats(_ context.Context, game string) (model.GameStats, error) {
	if _, err := s.game(game); err != nil {
		return model.GameStats{}, err
	}
	return s.stats.Stats(game), nil
}

func (s *serv) Journal(_ context.Context, after uint64, limit int) ([]model.JournalRecord, error) {
	if s.journal == nil {
		return []model.JournalRecord{}, nil
	}
	if limit <= 0 || limit > journalLimit {
		limit = journalLimit
	}
	return s.journal.RecordsAfter(after, limit)
}

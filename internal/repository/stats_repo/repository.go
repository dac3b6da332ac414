package stats_repo

import (
	"math"
	"sync"

	"pixel_casino/internal/model"
	repoModel "pixel_casino/internal/repository/stats_repo/model"

	"go.uber.org/zap"
)

const (
	// historySize Сколько последних раундов игрока помнить
	historySize = 5
	// maxHistories Сколько пар игрок/игра держать в памяти, старые вытесняются
	maxHistories = 10000
	// windowSize Размер окна для RTP
	windowSize = 500
	// periodRoundsToCheck Периодичность проверки окна (каждые N раундов)
	periodRoundsToCheck = 25
	// targetRTP Ожидаемый RTP всех игр, проценты
	targetRTP = 97.0
	// критическое отклонение RTP окна от ожидаемого
	criticalRTPDeviation = 25.0
	// нормальное отклонение, при котором тревога снимается
	normalRTPDeviation = 10.0
)

// StatsRepo Статистика игр и история раундов, только в памяти
type StatsRepo struct {
	mtx     sync.RWMutex
	logger  *zap.Logger
	games   map[string]*repoModel.GameState
	history map[string]*repoModel.History
	// order Ключи истории в порядке появления
	order        []string
	maxHistories int
}

// NewStatsRepository Конструктор репозитория с пустым состоянием
func NewStatsRepository(logger *zap.Logger) *StatsRepo {
	return &StatsRepo{
		logger:       logger,
		games:        make(map[string]*repoModel.GameState),
		history:      make(map[string]*repoModel.History),
		maxHistories: maxHistories,
	}
}

// Stats Копия статистики игры
func (r *StatsRepo) Stats(game string) model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st, ok := r.games[game]
	if !ok {
		return model.GameStats{Game: game, WindowSize: windowSize}
	}

	return model.GameStats{
		Game:        game,
		TotalRounds: st.TotalRounds,
		TotalBet:    st.TotalBet,
		TotalPayout: st.TotalPayout,
		CurrentRTP:  st.CurrentRTP,
		WindowRTP:   st.WindowRTP,
		WindowSize:  st.WindowSize,
	}
}

// UpdateState Обновление состояния игры после раунда
func (r *StatsRepo) UpdateState(game string, bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[game]
	if !ok {
		st = &repoModel.GameState{
			RoundWindow: make([]repoModel.RoundResult, 0, windowSize),
			WindowSize:  windowSize,
		}
		r.games[game] = st
	}

	st.TotalRounds++
	st.TotalBet += bet
	st.TotalPayout += payout
	if st.TotalBet > 0 {
		st.CurrentRTP = st.TotalPayout / st.TotalBet * 100
	}

	// Добавляем раунд в окно
	st.RoundWindow = append(st.RoundWindow, repoModel.RoundResult{
		Bet:    bet,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(st.RoundWindow) > st.WindowSize {
		st.RoundWindow = st.RoundWindow[1:]
	}

	var windowBet, windowPayout float64
	for _, round := range st.RoundWindow {
		windowBet += round.Bet
		windowPayout += round.Payout
	}

	if windowBet > 0 {
		st.WindowRTP = windowPayout / windowBet * 100
	} else {
		st.WindowRTP = 0
	}

	if st.TotalRounds%periodRoundsToCheck == 0 {
		r.checkDeviation(game, st)
	}
}

// checkDeviation Пишет предупреждение, если RTP окна сильно ушел от ожидаемого.
// Таблицы не подкручиваются, это только сигнал для проверки конфигурации
func (r *StatsRepo) checkDeviation(game string, st *repoModel.GameState) {
	diff := math.Abs(st.WindowRTP - targetRTP)

	if diff > criticalRTPDeviation && !st.Alarm {
		st.Alarm = true
		r.logger.Warn("window rtp deviates from target",
			zap.String("game", game),
			zap.Float64("window_rtp", st.WindowRTP),
			zap.Int("rounds", st.TotalRounds))
		return
	}

	if st.Alarm && diff < normalRTPDeviation {
		st.Alarm = false
		r.logger.Info("window rtp is back to normal",
			zap.String("game", game),
			zap.Float64("window_rtp", st.WindowRTP))
	}
}

// PushHistory Добавляет раунд в историю игрока
func (r *StatsRepo) PushHistory(playerID, game string, entry model.HistoryEntry) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	key := playerID + "/" + game
	h, ok := r.history[key]
	if !ok {
		for len(r.history) >= r.maxHistories && len(r.order) > 0 {
			delete(r.history, r.order[0])
			r.order = r.order[1:]
		}
		h = repoModel.NewHistory(historySize)
		r.history[key] = h
		r.order = append(r.order, key)
	}
	h.Push(entry)
}

// History Последние раунды игрока, от новых к старым
func (r *StatsRepo) History(playerID, game string) []model.HistoryEntry {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	h, ok := r.history[playerID+"/"+game]
	if !ok {
		return []model.HistoryEntry{}
	}
	return h.Entries()
}

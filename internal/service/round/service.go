package round

import (
	"sync"
	"time"

	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/repository"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"go.uber.org/zap"
)

type serv struct {
	games   map[string]service.Game
	names   []string
	wallet  service.WalletService
	stats   repository.StatsRepository
	journal repository.JournalRepository
	seeder  *rng.Seeder
	bets    config.BetsConfig
	cfg     config.RoundConfig
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// session Состояние одной игры одного игрока
type session struct {
	mu         sync.Mutex
	key        string
	evicted    bool
	generation uint64
	round      *model.Round
	play       service.Play
	pending    *model.Step // законченный шаг, выплата которого не начислена
	actions    []model.Action
	timer      *time.Timer
}

// NewRoundService Движок раундов: ставка, розыгрыш, выплата для любой мини-игры
func NewRoundService(
	games []service.Game,
	wallet service.WalletService,
	stats repository.StatsRepository,
	journal repository.JournalRepository,
	seeder *rng.Seeder,
	bets config.BetsConfig,
	cfg config.RoundConfig,
	logger *zap.Logger,
) service.RoundService {
	s := &serv{
		games:    make(map[string]service.Game, len(games)),
		wallet:   wallet,
		stats:    stats,
		journal:  journal,
		seeder:   seeder,
		bets:     bets,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string]*session),
	}
	for _, g := range games {
		s.games[g.Name()] = g
		s.names = append(s.names, g.Name())
	}
	return s
}

func (s *serv) Games() []string {
	return append([]string(nil), s.names...)
}

func (s *serv) Bets() []int {
	return append([]int(nil), s.bets.Bets()...)
}

func sessionKey(playerID, game string) string {
	return playerID + "/" + game
}

// session Сессия игрока, создается при первом обращении
func (s *serv) session(playerID, game string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(playerID, game)
	sess, ok := s.sessions[key]
	if !ok {
		sess = &session{key: key}
		s.sessions[key] = sess
	}
	return sess
}

// acquire Возвращает сессию под sess.mu. Выселенную сессию берет заново из карты
func (s *serv) acquire(playerID, game string) *session {
	for {
		sess := s.session(playerID, game)
		sess.mu.Lock()
		if !sess.evicted {
			return sess
		}
		sess.mu.Unlock()
	}
}

// lookup Сессия под sess.mu или nil, если у игрока ее нет
func (s *serv) lookup(playerID, game string) *session {
	s.mu.Lock()
	sess, ok := s.sessions[sessionKey(playerID, game)]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	sess.mu.Lock()
	if sess.evicted {
		sess.mu.Unlock()
		return nil
	}
	return sess
}

// evict Убирает простаивающую сессию из карты. Вызывается под sess.mu
func (s *serv) evict(sess *session) {
	if sess.round != nil || sess.timer != nil {
		return
	}

	s.mu.Lock()
	if s.sessions[sess.key] == sess {
		delete(s.sessions, sess.key)
	}
	s.mu.Unlock()
	sess.evicted = true
}

func (s *serv) game(name string) (service.Game, error) {
	g, ok := s.games[name]
	if !ok {
		return nil, service.ErrUnknownGame
	}
	return g, nil
}

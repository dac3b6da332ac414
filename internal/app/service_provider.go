package app

import (
	"context"

	bonusAPI "pixel_casino/internal/api/bonus"
	gamesAPI "pixel_casino/internal/api/games"
	journalAPI "pixel_casino/internal/api/journal"
	leaderboardAPI "pixel_casino/internal/api/leaderboard"
	playerAPI "pixel_casino/internal/api/player"
	walletAPI "pixel_casino/internal/api/wallet"
	"pixel_casino/internal/config"
	"pixel_casino/internal/config/env"
	"pixel_casino/internal/events"
	"pixel_casino/internal/middleware"
	"pixel_casino/internal/repository"
	"pixel_casino/internal/repository/balance_repo"
	"pixel_casino/internal/repository/bonus_repo"
	"pixel_casino/internal/repository/journal_repo"
	"pixel_casino/internal/repository/stats_repo"
	"pixel_casino/internal/service"
	"pixel_casino/internal/service/blackjack"
	"pixel_casino/internal/service/bonus"
	"pixel_casino/internal/service/dice"
	"pixel_casino/internal/service/dungeon"
	"pixel_casino/internal/service/leaderboard"
	"pixel_casino/internal/service/mines"
	"pixel_casino/internal/service/player"
	"pixel_casino/internal/service/pop"
	"pixel_casino/internal/service/roulette"
	"pixel_casino/internal/service/round"
	"pixel_casino/internal/service/scratch"
	"pixel_casino/internal/service/slots"
	"pixel_casino/internal/service/tower"
	"pixel_casino/internal/service/wallet"
	"pixel_casino/internal/service/wheel"
	"pixel_casino/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	logger *zap.Logger

	// TXManager
	txManager service.TxManager

	// Storage
	storageCfg  config.StorageConfig
	pgConfig    config.PGConfig
	dbClient    *pgxpool.Pool
	redisCfg    config.RedisConfig
	redisClient redis.UniversalClient

	// Wallet bits
	walletCfg   config.WalletConfig
	balanceRepo repository.BalanceRepository
	broadcaster *events.BalanceBroadcaster
	walletServ  service.WalletService
	walletHand  *walletAPI.Handler

	// Round bits
	gamesCfg    *env.GamesConfig
	roundCfg    config.RoundConfig
	statsRepo   repository.StatsRepository
	journalRepo repository.JournalRepository
	seeder      *rng.Seeder
	roundServ   service.RoundService
	gamesHand   *gamesAPI.Handler
	journalHand *journalAPI.Handler

	// Bonus and leaderboard bits
	bonusRepo       repository.BonusRepository
	bonusServ       service.BonusService
	bonusHand       *bonusAPI.Handler
	leaderboardServ service.LeaderboardService
	leaderboardHand *leaderboardAPI.Handler

	// Player bits
	jwtCfg     config.JWTConfig
	playerServ service.PlayerService
	playerHand *playerAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(logger *zap.Logger) *ServiceProvider {
	return &ServiceProvider{logger: logger}
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil {
		cfg := sp.RedisCfg()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

// TXManager Транзакции нужны только postgres, остальным хранилищам хватает блокировки игрока
func (sp *ServiceProvider) TXManager(ctx context.Context) service.TxManager {
	if sp.txManager == nil {
		if sp.StorageCfg().Backend() != env.BackendPostgres {
			sp.txManager = repository.NopTxManager{}
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) WalletCfg() config.WalletConfig {
	if sp.walletCfg == nil {
		cfg, err := env.NewWalletConfig()
		if err != nil {
			panic("failed to get wallet config: " + err.Error())
		}
		sp.walletCfg = cfg
	}
	return sp.walletCfg
}

func (sp *ServiceProvider) BalanceRepository(ctx context.Context) repository.BalanceRepository {
	if sp.balanceRepo == nil {
		switch sp.StorageCfg().Backend() {
		case env.BackendFile:
			repo, err := balance_repo.NewFileRepository(sp.StorageCfg().Dir())
			if err != nil {
				panic("failed to open balance storage: " + err.Error())
			}
			sp.balanceRepo = repo
		case env.BackendPostgres:
			sp.balanceRepo = balance_repo.NewPostgresRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
		case env.BackendRedis:
			sp.balanceRepo = balance_repo.NewRedisRepository(sp.RedisClient(ctx))
		default:
			sp.balanceRepo = balance_repo.NewMemoryRepository()
		}
	}
	return sp.balanceRepo
}

func (sp *ServiceProvider) BonusRepository(ctx context.Context) repository.BonusRepository {
	if sp.bonusRepo == nil {
		switch sp.StorageCfg().Backend() {
		case env.BackendFile:
			repo, err := bonus_repo.NewFileRepository(sp.StorageCfg().Dir())
			if err != nil {
				panic("failed to open bonus storage: " + err.Error())
			}
			sp.bonusRepo = repo
		case env.BackendPostgres:
			sp.bonusRepo = bonus_repo.NewPostgresRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
		case env.BackendRedis:
			sp.bonusRepo = bonus_repo.NewRedisRepository(sp.RedisClient(ctx))
		default:
			sp.bonusRepo = bonus_repo.NewMemoryRepository()
		}
	}
	return sp.bonusRepo
}

func (sp *ServiceProvider) Broadcaster() *events.BalanceBroadcaster {
	if sp.broadcaster == nil {
		sp.broadcaster = events.NewBalanceBroadcaster(64)
	}
	return sp.broadcaster
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(
			sp.BalanceRepository(ctx),
			sp.TXManager(ctx),
			sp.WalletCfg(),
			sp.Broadcaster(),
			sp.logger,
		)
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv:        sp.WalletService(ctx),
			Broadcaster: sp.Broadcaster(),
			Logger:      sp.logger,
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) GamesCfg() *env.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfig()
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) RoundCfg() config.RoundConfig {
	if sp.roundCfg == nil {
		cfg, err := env.NewRoundConfig()
		if err != nil {
			panic("failed to get round config: " + err.Error())
		}
		sp.roundCfg = cfg
	}
	return sp.roundCfg
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.logger)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) JournalRepository() repository.JournalRepository {
	if sp.journalRepo == nil {
		store, err := journal_repo.NewWALStore(sp.StorageCfg().JournalDir())
		if err != nil {
			panic("failed to open round journal: " + err.Error())
		}
		sp.journalRepo = store
	}
	return sp.journalRepo
}

func (sp *ServiceProvider) Seeder() *rng.Seeder {
	if sp.seeder == nil {
		s, err := rng.NewSeeder(sp.RoundCfg().ServerSeed())
		if err != nil {
			panic("failed to create seeder: " + err.Error())
		}
		sp.logger.Info("server seed committed", zap.String("digest", s.Digest()))
		sp.seeder = s
	}
	return sp.seeder
}

// Games Все мини-игры в порядке меню
func (sp *ServiceProvider) Games() []service.Game {
	cfg := sp.GamesCfg()
	return []service.Game{
		slots.NewGame(cfg),
		scratch.NewGame(cfg),
		wheel.NewGame(cfg),
		roulette.NewGame(),
		dice.NewGame(),
		mines.NewGame(cfg),
		tower.NewGame(cfg),
		blackjack.NewGame(),
		pop.NewGame(cfg),
		dungeon.NewGame(cfg),
	}
}

func (sp *ServiceProvider) RoundService(ctx context.Context) service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(
			sp.Games(),
			sp.WalletService(ctx),
			sp.StatsRepository(),
			sp.JournalRepository(),
			sp.Seeder(),
			sp.GamesCfg(),
			sp.RoundCfg(),
			sp.logger,
		)
	}
	return sp.roundServ
}

func (sp *ServiceProvider) GamesHandler(ctx context.Context) *gamesAPI.Handler {
	if sp.gamesHand == nil {
		sp.gamesHand = gamesAPI.NewHandler(gamesAPI.HandlerDeps{Serv: sp.RoundService(ctx)})
	}
	return sp.gamesHand
}

func (sp *ServiceProvider) JournalHandler(ctx context.Context) *journalAPI.Handler {
	if sp.journalHand == nil {
		sp.journalHand = journalAPI.NewHandler(journalAPI.HandlerDeps{Serv: sp.RoundService(ctx)})
	}
	return sp.journalHand
}

func (sp *ServiceProvider) BonusService(ctx context.Context) service.BonusService {
	if sp.bonusServ == nil {
		sp.bonusServ = bonus.NewBonusService(
			sp.BonusRepository(ctx),
			sp.WalletService(ctx),
			sp.TXManager(ctx),
			sp.GamesCfg(),
			sp.logger,
		)
	}
	return sp.bonusServ
}

func (sp *ServiceProvider) BonusHandler(ctx context.Context) *bonusAPI.Handler {
	if sp.bonusHand == nil {
		sp.bonusHand = bonusAPI.NewHandler(bonusAPI.HandlerDeps{Serv: sp.BonusService(ctx)})
	}
	return sp.bonusHand
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.leaderboardServ == nil {
		sp.leaderboardServ = leaderboard.NewLeaderboardService(sp.WalletService(ctx), sp.GamesCfg())
	}
	return sp.leaderboardServ
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *leaderboardAPI.Handler {
	if sp.leaderboardHand == nil {
		sp.leaderboardHand = leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{Serv: sp.LeaderboardService(ctx)})
	}
	return sp.leaderboardHand
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) PlayerService(ctx context.Context) service.PlayerService {
	if sp.playerServ == nil {
		sp.playerServ = player.NewPlayerService(sp.WalletService(ctx), sp.JWTCfg(), sp.logger)
	}
	return sp.playerServ
}

func (sp *ServiceProvider) PlayerHandler(ctx context.Context) *playerAPI.Handler {
	if sp.playerHand == nil {
		sp.playerHand = playerAPI.NewHandler(playerAPI.HandlerDeps{Serv: sp.PlayerService(ctx)})
	}
	return sp.playerHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Выдача токена игрока без авторизации
		r.Post("/player", sp.PlayerHandler(ctx).Register)

		r.Group(func(pr chi.Router) {
			pr.Use(middleware.Auth(sp.PlayerService(ctx)))

			walletHandler := sp.WalletHandler(ctx)
			pr.Route("/wallet", func(rr chi.Router) {
				rr.Get("/", walletHandler.Get)
				rr.Post("/add", walletHandler.Add)
				rr.Post("/set", walletHandler.Set)
				rr.Post("/reset", walletHandler.Reset)
				rr.Get("/stream", walletHandler.Stream)
			})

			pr.Post("/bonus/{key}/claim", sp.BonusHandler(ctx).Claim)
			pr.Get("/leaderboard", sp.LeaderboardHandler(ctx).Get)

			gamesHandler := sp.GamesHandler(ctx)
			pr.Route("/games", func(rr chi.Router) {
				rr.Get("/", gamesHandler.List)
				rr.Post("/{game}/start", gamesHandler.Start)
				rr.Post("/{game}/act", gamesHandler.Act)
				rr.Get("/{game}/round", gamesHandler.Round)
				rr.Delete("/{game}/round", gamesHandler.Reset)
				rr.Get("/{game}/history", gamesHandler.History)
				rr.Get("/{game}/stats", gamesHandler.Stats)
			})

			journalHandler := sp.JournalHandler(ctx)
			pr.Get("/journal", journalHandler.List)
			pr.Get("/journal/{index}/replay", journalHandler.Replay)
		})

		sp.router = r
	}

	return sp.router
}

// Close Освобождает журнал и подключения к хранилищам
func (sp *ServiceProvider) Close() {
	if sp.journalRepo != nil {
		if err := sp.journalRepo.Close(); err != nil {
			sp.logger.Warn("failed to close round journal", zap.Error(err))
		}
	}
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

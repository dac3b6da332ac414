package leaderboard

import (
	"context"
	"sort"

	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
)

// YouName Имя игрока в таблице
const YouName = "You"

type serv struct {
	wallet service.WalletService
	cfg    config.LeaderboardConfig
}

func NewLeaderboardService(wallet service.WalletService, cfg config.LeaderboardConfig) service.LeaderboardService {
	return &serv{wallet: wallet, cfg: cfg}
}

// Leaderboard Соперники из конфига и сам игрок, по убыванию баланса
func (s *serv) Leaderboard(ctx context.Context, playerID string) ([]model.LeaderboardEntry, error) {
	balance, err := s.wallet.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	rivals := s.cfg.Rivals()
	entries := make([]model.LeaderboardEntry, 0, len(rivals)+1)
	for _, r := range rivals {
		entries = append(entries, model.LeaderboardEntry{Name: r.Name, Balance: r.Balance})
	}
	entries = append(entries, model.LeaderboardEntry{Name: YouName, Balance: balance, IsYou: true})

	// при равенстве игрок выше соперника
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].IsYou && !entries[j].IsYou
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

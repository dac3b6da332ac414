package converter

import (
	"pixel_casino/internal/api/dto/bonus"
	"pixel_casino/internal/api/dto/leaderboard"
	"pixel_casino/internal/api/dto/player"
	"pixel_casino/internal/api/dto/wallet"
	"pixel_casino/internal/events"
	"pixel_casino/internal/model"
)

func ToRegisterResponse(p model.Player) player.RegisterResponse {
	return player.RegisterResponse{PlayerID: p.ID, AccessToken: p.AccessToken}
}

func ToBalanceEvent(e events.BalanceChanged) wallet.BalanceEvent {
	return wallet.BalanceEvent{
		Timestamp: e.Timestamp,
		Balance:   e.Balance,
		Delta:     e.Delta,
		Reason:    e.Reason,
	}
}

func ToClaimResponse(c model.BonusClaim) bonus.ClaimResponse {
	return bonus.ClaimResponse{Key: c.Key, Amount: c.Amount, Balance: c.Balance}
}

func ToLeaderboardResponse(entries []model.LeaderboardEntry) leaderboard.Response {
	res := leaderboard.Response{Entries: make([]leaderboard.Entry, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, leaderboard.Entry{
			Rank:    e.Rank,
			Name:    e.Name,
			Balance: e.Balance,
			IsYou:   e.IsYou,
		})
	}
	return res
}

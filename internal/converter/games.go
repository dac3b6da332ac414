package converter

import (
	"time"

	"pixel_casino/internal/api/dto/games"
	"pixel_casino/internal/model"
)

func ToSelection(s games.Selection) model.Selection {
	return model.Selection{
		Kind:      s.Kind,
		Value:     s.Value,
		Number:    s.Number,
		Target:    s.Target,
		Direction: s.Direction,
		Mines:     s.Mines,
	}
}

func ToAction(req games.ActRequest) model.Action {
	return model.Action{Name: req.Action, Cell: req.Cell}
}

func ToRoundResponse(r model.Round) games.RoundResponse {
	res := games.RoundResponse{
		Game:    r.Game,
		State:   string(r.State),
		Payout:  r.Payout,
		View:    r.View,
		Balance: r.Balance,
	}
	if r.State == model.StateIdle {
		return res
	}

	sel := games.Selection{
		Kind:      r.Selection.Kind,
		Value:     r.Selection.Value,
		Number:    r.Selection.Number,
		Target:    r.Selection.Target,
		Direction: r.Selection.Direction,
		Mines:     r.Selection.Mines,
	}
	res.ID = r.ID.String()
	res.Bet = r.Bet
	res.Selection = &sel
	res.Multiplier = r.Multiplier.String()
	// Зерно открывает скрытое поле, до расчета его не показываем
	if r.State == model.StateResolved {
		res.Seed = r.Seed
		res.Nonce = r.Nonce
	}
	res.StartedAt = timePtr(r.StartedAt)
	res.ResolvedAt = timePtr(r.ResolvedAt)
	return res
}

func ToHistoryResponse(entries []model.HistoryEntry) games.HistoryResponse {
	res := games.HistoryResponse{Rounds: make([]games.HistoryEntry, 0, len(entries))}
	for _, e := range entries {
		res.Rounds = append(res.Rounds, games.HistoryEntry{
			RoundID:    e.RoundID.String(),
			Bet:        e.Bet,
			Payout:     e.Payout,
			Multiplier: e.Multiplier.String(),
			ResolvedAt: e.ResolvedAt,
		})
	}
	return res
}

func ToStatsResponse(s model.GameStats) games.StatsResponse {
	return games.StatsResponse{
		Game:        s.Game,
		TotalRounds: s.TotalRounds,
		TotalBet:    s.TotalBet,
		TotalPayout: s.TotalPayout,
		CurrentRTP:  s.CurrentRTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

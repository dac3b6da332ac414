package converter

import (
	"pixel_casino/internal/api/dto/journal"
	"pixel_casino/internal/model"
)

func ToJournalRecord(r model.JournalRecord) journal.Record {
	return journal.Record{
		Index:      r.Index,
		RoundID:    r.RoundID.String(),
		PlayerID:   r.PlayerID,
		Game:       r.Game,
		Bet:        r.Bet,
		Payout:     r.Payout,
		Multiplier: r.Multiplier.String(),
		Seed:       r.Seed,
		Nonce:      r.Nonce,
		SeedDigest: r.SeedDigest,
		ResolvedAt: r.ResolvedAt,
	}
}

func ToJournalListResponse(records []model.JournalRecord, after uint64) journal.ListResponse {
	res := journal.ListResponse{Records: make([]journal.Record, 0, len(records)), Next: after}
	for _, r := range records {
		res.Records = append(res.Records, ToJournalRecord(r))
		res.Next = r.Index
	}
	return res
}

func ToReplayResponse(r model.Replay) journal.ReplayResponse {
	return journal.ReplayResponse{
		Record:     ToJournalRecord(r.Record),
		Payout:     r.Payout,
		Multiplier: r.Multiplier.String(),
		Matches:    r.Matches,
	}
}

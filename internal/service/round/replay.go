package round

import (
	"context"

	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"

	"github.com/pkg/errors"
)

// Replay Повторяет раунд из журнала: то же зерно, тот же выбор, те же действия
func (s *serv) Replay(_ context.Context, index uint64) (*model.Replay, error) {
	if index == 0 || s.journal == nil {
		return nil, service.ErrRecordNotFound
	}

	records, err := s.journal.RecordsAfter(index-1, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || records[0].Index != index {
		return nil, service.ErrRecordNotFound
	}
	record := records[0]

	g, err := s.game(record.Game)
	if err != nil {
		return nil, err
	}

	seed, err := rng.ParseSeed(record.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "parse journal seed")
	}

	play, step, err := g.Open(seed.Source(), record.Bet, record.Selection)
	if err != nil {
		return nil, errors.Wrap(err, "replay open")
	}
	for _, a := range record.Actions {
		if step.Done || play == nil {
			break
		}
		step, err = play.Act(a)
		if err != nil {
			return nil, errors.Wrap(err, "replay action")
		}
	}

	// зерно должно выводиться из серверного зерна этого запуска
	derived := s.seeder.Derive(record.PlayerID, record.Nonce).String() == record.Seed

	return &model.Replay{
		Record:     record,
		Payout:     step.Payout,
		Multiplier: step.Multiplier,
		Matches:    derived && step.Done && step.Payout == record.Payout,
	}, nil
}

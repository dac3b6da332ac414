package wheel

import (
	"pixel_casino/internal/config"
	"pixel_casino/internal/model"
	"pixel_casino/internal/service"
	"pixel_casino/pkg/rng"
	"pixel_casino/pkg/weighted"
)

const Name = "wheel"

type View struct {
	Segment int    `json:"segment"`
	Label   string `json:"label"`
}

type game struct {
	cfg config.WheelConfig
}

// NewGame Колесо фортуны из взвешенных секторов
func NewGame(cfg config.WheelConfig) service.Game {
	return &game{cfg: cfg}
}

func (g *game) Name() string {
	return Name
}

func (g *game) Open(src rng.Source, bet int, _ model.Selection) (service.Play, model.Step, error) {
	segments := g.cfg.Segments()
	table := make([]weighted.Entry[int], len(segments))
	for i, s := range segments {
		table[i] = weighted.Entry[int]{Value: i, Weight: s.Weight}
	}

	idx, err := weighted.Draw(src, table)
	if err != nil {
		return nil, model.Step{}, err
	}
	seg := segments[idx]

	return nil, model.Step{
		Done:       true,
		Multiplier: seg.Multiplier,
		Payout:     model.Payout(bet, seg.Multiplier),
		View:       View{Segment: idx, Label: seg.Label},
	}, nil
}

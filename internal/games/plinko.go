package games

import (
	"encoding/json"
	"fmt"
)

// 16-row board: the ball takes 16 left/right steps, landing in one of 17
// slots with a binomial (center-heavy) distribution.
const plinkoRows = 16

var plinkoMultipliers = map[string][]float64{
	"low":    {110, 41, 10, 5, 3, 1.5, 1.4, 1.4, 1.2, 1.4, 1.4, 1.5, 3, 5, 10, 41, 110},
	"medium": {1000, 130, 26, 9, 4, 2, 1.5, 1.2, 1, 1.2, 1.5, 2, 4, 9, 26, 130, 1000},
	"high":   {1000, 130, 26, 9, 4, 2, 1.5, 1.2, 0.2, 1.2, 1.5, 2, 4, 9, 26, 130, 1000},
}

type PlinkoPrediction struct {
	Risk string `json:"risk"` // "low", "medium" or "high"; defaults to medium
}

type PlinkoResult struct {
	Slot       int     `json:"slot"`
	Risk       string  `json:"risk"`
	Multiplier float64 `json:"multiplier"`
	Win        bool    `json:"win"`
}

func (e *Engine) playPlinko(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	var p PlinkoPrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	if p.Risk == "" {
		p.Risk = "medium"
	}
	table, ok := plinkoMultipliers[p.Risk]
	if !ok {
		return nil, fmt.Errorf("%w: plinko risk must be low, medium or high", ErrInvalidPrediction)
	}

	slot := 0
	for i := 0; i < plinkoRows; i++ {
		if e.rng.Float64() < 0.5 {
			slot++
		}
	}

	multiplier := table[slot]
	win := multiplier > 0

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, false),
		Win:        win,
		Result:     PlinkoResult{Slot: slot, Risk: p.Risk, Multiplier: multiplier, Win: win},
	}, nil
}

package games

import (
	"encoding/json"
	"fmt"
	"math"
)

type DicePrediction struct {
	Prediction string `json:"prediction"` // "over" or "under"
	Target     int    `json:"target"`    // 2..98
}

type DiceResult struct {
	Roll float64 `json:"roll"`
	Win  bool    `json:"win"`
}

// DiceMultiplier derives the payout multiplier from the win chance so the
// house edge is structural: multiplier * winChance == 1 - houseEdge.
func DiceMultiplier(target int, prediction string, houseEdge float64) float64 {
	var winChance float64
	if prediction == "over" {
		winChance = float64(100-target) / 100
	} else {
		winChance = float64(target) / 100
	}
	return (1 - houseEdge) / winChance
}

func (e *Engine) playDice(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	var p DicePrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	if p.Prediction != "over" && p.Prediction != "under" {
		return nil, fmt.Errorf("%w: dice prediction must be over or under", ErrInvalidPrediction)
	}
	if p.Target < 2 || p.Target > 98 {
		return nil, fmt.Errorf("%w: dice target must be between 2 and 98", ErrInvalidPrediction)
	}

	multiplier := DiceMultiplier(p.Target, p.Prediction, cfg.HouseEdge)

	// Uniform roll in [0.00, 99.99] at two decimal places. Landing exactly
	// on the target loses in both directions.
	roll := math.Floor(e.rng.Float64()*10000) / 100

	var win bool
	if p.Prediction == "over" {
		win = roll > float64(p.Target)
	} else {
		win = roll < float64(p.Target)
	}

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, false),
		Win:        win,
		Result:     DiceResult{Roll: roll, Win: win},
	}, nil
}

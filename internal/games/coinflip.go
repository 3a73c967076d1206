package games

import (
	"encoding/json"
	"fmt"
)

type CoinflipPrediction struct {
	Prediction string `json:"prediction"` // "heads" or "tails"
}

type CoinflipResult struct {
	Result string `json:"result"`
	Win    bool   `json:"win"`
}

func (e *Engine) playCoinflip(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	var p CoinflipPrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	if p.Prediction != "heads" && p.Prediction != "tails" {
		return nil, fmt.Errorf("%w: coinflip prediction must be heads or tails", ErrInvalidPrediction)
	}

	// Even chance, so the base multiplier is 2 less the house cut.
	multiplier := (1 - cfg.HouseEdge) * 2

	flip := "tails"
	if e.rng.Float64() < 0.5 {
		flip = "heads"
	}
	win := flip == p.Prediction

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, false),
		Win:        win,
		Result:     CoinflipResult{Result: flip, Win: win},
	}, nil
}

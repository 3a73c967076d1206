package games

import (
	"encoding/json"
	"fmt"
	"math"
)

type CrashPrediction struct {
	// Multiplier the player cashes out at. Defaults to 2 when omitted.
	CashoutMultiplier float64 `json:"cashoutMultiplier"`
}

type CrashResult struct {
	CrashPoint        float64  `json:"crashPoint"`
	CashoutMultiplier *float64 `json:"cashoutMultiplier"` // nil on a loss
	Win               bool     `json:"win"`
}

func (e *Engine) playCrash(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	var p CrashPrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	if p.CashoutMultiplier == 0 {
		p.CashoutMultiplier = 2
	}
	if p.CashoutMultiplier < 1 {
		return nil, fmt.Errorf("%w: cashout multiplier must be at least 1", ErrInvalidPrediction)
	}

	// Exponential-ish crash point: the house edge sets the decay rate, so
	// expected return converges to stake * (1 - houseEdge).
	u := e.rng.Float64()
	crashPoint := math.Floor(100*math.Log(1-u)/math.Log(1-cfg.HouseEdge)) / 100
	if crashPoint < 1 {
		crashPoint = 1
	}

	win := p.CashoutMultiplier <= crashPoint
	multiplier := 0.0
	var cashedOut *float64
	if win {
		multiplier = p.CashoutMultiplier
		cashedOut = &p.CashoutMultiplier
	}

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, false),
		Win:        win,
		Result:     CrashResult{CrashPoint: crashPoint, CashoutMultiplier: cashedOut, Win: win},
	}, nil
}

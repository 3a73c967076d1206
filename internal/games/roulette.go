package games

import (
	"encoding/json"
	"fmt"
)

// European wheel, single zero.

type RoulettePrediction struct {
	BetType string `json:"betType"`
	Value   int    `json:"value"` // only used for "number" bets
}

type RouletteResult struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	Win    bool   `json:"win"`
}

var rouletteRed = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true, 16: true,
	18: true, 19: true, 21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// Total-return multipliers per bet type (straight pays 35:1, so 36x back).
var rouletteMultipliers = map[string]float64{
	"number":  36,
	"red":     2,
	"black":   2,
	"odd":     2,
	"even":    2,
	"low":     2,
	"high":    2,
	"dozen1":  3,
	"dozen2":  3,
	"dozen3":  3,
	"column1": 3,
	"column2": 3,
	"column3": 3,
}

func rouletteWin(bet RoulettePrediction, n int) bool {
	switch bet.BetType {
	case "number":
		return n == bet.Value
	case "red":
		return rouletteRed[n]
	case "black":
		return n != 0 && !rouletteRed[n]
	case "odd":
		return n != 0 && n%2 == 1
	case "even":
		return n != 0 && n%2 == 0
	case "low":
		return n >= 1 && n <= 18
	case "high":
		return n >= 19 && n <= 36
	case "dozen1":
		return n >= 1 && n <= 12
	case "dozen2":
		return n >= 13 && n <= 24
	case "dozen3":
		return n >= 25 && n <= 36
	case "column1":
		return n != 0 && n%3 == 1
	case "column2":
		return n != 0 && n%3 == 2
	case "column3":
		return n != 0 && n%3 == 0
	}
	return false
}

func rouletteColor(n int) string {
	switch {
	case n == 0:
		return "green"
	case rouletteRed[n]:
		return "red"
	default:
		return "black"
	}
}

func (e *Engine) playRoulette(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	var p RoulettePrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	multiplier, ok := rouletteMultipliers[p.BetType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown roulette bet type %q", ErrInvalidPrediction, p.BetType)
	}
	if p.BetType == "number" && (p.Value < 0 || p.Value > 36) {
		return nil, fmt.Errorf("%w: roulette number must be between 0 and 36", ErrInvalidPrediction)
	}

	n := e.rng.Intn(37)
	win := rouletteWin(p, n)
	if !win {
		multiplier = 0
	}

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, false),
		Win:        win,
		Result:     RouletteResult{Number: n, Color: rouletteColor(n), Win: win},
	}, nil
}

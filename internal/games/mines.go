package games

import (
	"encoding/json"
	"fmt"
	"math"
)

const minesGridSize = 25 // 5x5 board

type MinesPrediction struct {
	Mines int   `json:"mines"` // 1..24
	Picks []int `json:"picks"` // tiles revealed in order, 0..24
}

type MinesResult struct {
	MinePositions []int `json:"minePositions"`
	Revealed      int   `json:"revealed"`
	HitMine       *int  `json:"hitMine"` // tile that ended the round, nil on a win
	Win           bool  `json:"win"`
}

// MinesMultiplier grows with every revealed gem and with the mine count.
func MinesMultiplier(revealed, mines int) float64 {
	safeTiles := float64(minesGridSize - mines)
	base := 1 + (float64(revealed)/safeTiles)*(float64(mines)/2)
	return math.Pow(base, 1.1+float64(mines)*0.1)
}

func (e *Engine) playMines(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	var p MinesPrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}
	if p.Mines < 1 || p.Mines > minesGridSize-1 {
		return nil, fmt.Errorf("%w: mine count must be between 1 and %d", ErrInvalidPrediction, minesGridSize-1)
	}
	if len(p.Picks) == 0 || len(p.Picks) > minesGridSize-p.Mines {
		return nil, fmt.Errorf("%w: picks must cover between 1 and %d tiles", ErrInvalidPrediction, minesGridSize-p.Mines)
	}
	seen := make(map[int]bool, len(p.Picks))
	for _, tile := range p.Picks {
		if tile < 0 || tile >= minesGridSize || seen[tile] {
			return nil, fmt.Errorf("%w: invalid or repeated tile %d", ErrInvalidPrediction, tile)
		}
		seen[tile] = true
	}

	positions := e.rng.Perm(minesGridSize)[:p.Mines]
	mined := make(map[int]bool, p.Mines)
	for _, pos := range positions {
		mined[pos] = true
	}

	revealed := 0
	var hit *int
	for _, tile := range p.Picks {
		if mined[tile] {
			t := tile
			hit = &t
			break
		}
		revealed++
	}

	win := hit == nil
	multiplier := 0.0
	if win {
		multiplier = MinesMultiplier(revealed, p.Mines)
	}

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, false),
		Win:        win,
		Result:     MinesResult{MinePositions: positions, Revealed: revealed, HitMine: hit, Win: win},
	}, nil
}

package games

import (
	"encoding/json"
	"math"
)

// Outcome is the result of one resolved round: the multiplier applied,
// the amount returned to the player, and the game-specific result payload.
type Outcome struct {
	Multiplier float64
	Payout     float64
	Win        bool
	Push       bool
	Result     any
}

// Engine maps a validated prediction and stake to an Outcome. Pure with
// respect to state: its only dependency is the injected random source.
type Engine struct {
	rng Rand
}

// New returns an engine backed by rng, or the process-wide
// math/rand source when rng is nil.
func New(rng Rand) *Engine {
	if rng == nil {
		rng = systemRand{}
	}
	return &Engine{rng: rng}
}

// Play resolves a single bet. The stake is assumed range-checked by the
// caller; the prediction is validated here per game.
func (e *Engine) Play(game Type, stake float64, prediction json.RawMessage) (*Outcome, error) {
	cfg, ok := ConfigFor(game)
	if !ok {
		return nil, ErrUnknownGame
	}

	var (
		out *Outcome
		err error
	)
	switch game {
	case Dice:
		out, err = e.playDice(cfg, stake, prediction)
	case Coinflip:
		out, err = e.playCoinflip(cfg, stake, prediction)
	case Crash:
		out, err = e.playCrash(cfg, stake, prediction)
	case Blackjack:
		out, err = e.playBlackjack(cfg, stake, prediction)
	case Roulette:
		out, err = e.playRoulette(cfg, stake, prediction)
	case Slots:
		out, err = e.playSlots(cfg, stake, prediction)
	case Mines:
		out, err = e.playMines(cfg, stake, prediction)
	case Plinko:
		out, err = e.playPlinko(cfg, stake, prediction)
	default:
		return nil, ErrUnknownGame
	}
	if err != nil {
		return nil, err
	}

	if out.Payout > cfg.MaxPayout {
		out.Payout = cfg.MaxPayout
	}
	return out, nil
}

// settle applies the general payout rule: stake times multiplier floored to
// currency precision on a win, stake back on a push, zero otherwise.
func settle(stake, multiplier float64, win, push bool) float64 {
	if win {
		return round2(stake * multiplier)
	}
	if push {
		return stake
	}
	return 0
}

func round2(v float64) float64 {
	return math.Floor(v*100) / 100
}

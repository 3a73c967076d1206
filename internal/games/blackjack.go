package games

import (
	"encoding/json"
	"fmt"
)

// Blackjack rounds are dealt by the client; only the terminal hand state is
// submitted and mapped to a payout here. There is no server-side re-deal to
// verify the claimed result against.

type Card struct {
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

type BlackjackPrediction struct {
	Result     string `json:"result"` // "win", "lose" or "push"
	PlayerHand []Card `json:"playerHand"`
	DealerHand []Card `json:"dealerHand"`
}

type BlackjackResult struct {
	PlayerHand []Card `json:"playerHand"`
	DealerHand []Card `json:"dealerHand"`
	Result     string `json:"result"`
	Win        bool   `json:"win"`
}

// IsNatural reports whether hand is a blackjack: exactly two cards
// totalling 21 with aces high and face cards counting ten.
func IsNatural(hand []Card) bool {
	if len(hand) != 2 {
		return false
	}
	total := 0
	for _, c := range hand {
		switch c.Rank {
		case "A":
			total += 11
		case "J", "Q", "K":
			total += 10
		default:
			total += c.Value
		}
	}
	return total == 21
}

func (e *Engine) playBlackjack(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	var p BlackjackPrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrediction, err)
	}

	var (
		multiplier float64
		win        bool
		push       bool
	)
	switch p.Result {
	case "win":
		multiplier = 2
		if IsNatural(p.PlayerHand) {
			multiplier = 2.5 // natural pays 3:2
		}
		win = true
	case "push":
		multiplier = 1
		push = true
	case "lose":
	default:
		return nil, fmt.Errorf("%w: blackjack result must be win, lose or push", ErrInvalidPrediction)
	}

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, push),
		Win:        win,
		Push:       push,
		Result: BlackjackResult{
			PlayerHand: p.PlayerHand,
			DealerHand: p.DealerHand,
			Result:     p.Result,
			Win:        win,
		},
	}, nil
}

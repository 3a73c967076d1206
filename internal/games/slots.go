package games

import (
	"encoding/json"
	"math"
)

// Three-reel slot machine. Each reel is drawn independently from a weighted
// strip; cheap symbols appear more often than the crown.

var slotValues = map[string]float64{
	"🍒": 2, "🍋": 3, "🍊": 4, "🍇": 5, "🔔": 8,
	"⭐": 10, "💎": 15, "🎰": 25, "💰": 50, "👑": 100,
}

var slotStrip = []string{
	"🍒", "🍋", "🍊", "🍇", "🔔", "⭐", "💎", "🎰", "💰", "👑",
	"🍒", "🍋", "🍊", "🍇", "🔔", "⭐", "💎",
	"🍒", "🍋", "🍊", "🍇", "🔔",
	"🍒", "🍋", "🍊",
}

type SlotsResult struct {
	Reels   []string `json:"reels"`
	WinType string   `json:"winType"`
	Win     bool     `json:"win"`
}

func evaluateSlots(reels []string) (multiplier float64, winType string) {
	a, b, c := reels[0], reels[1], reels[2]

	if a == b && b == c {
		return slotValues[a], "three_of_a_kind"
	}
	if a == b || b == c || a == c {
		match := a
		if b == c {
			match = b
		}
		return math.Max(1, math.Floor(slotValues[match]/3)), "two_of_a_kind"
	}

	has := func(s string) bool { return a == s || b == s || c == s }
	if has("🍒") && has("🍋") && has("🍊") {
		return 3, "fruit_combo"
	}
	if has("💎") && has("⭐") {
		return 2, "lucky_stars"
	}
	return 0, ""
}

func (e *Engine) playSlots(cfg Config, stake float64, raw json.RawMessage) (*Outcome, error) {
	// Slots takes no prediction; the payload is accepted and ignored.
	_ = json.Valid(raw)

	reels := []string{
		slotStrip[e.rng.Intn(len(slotStrip))],
		slotStrip[e.rng.Intn(len(slotStrip))],
		slotStrip[e.rng.Intn(len(slotStrip))],
	}

	multiplier, winType := evaluateSlots(reels)
	win := multiplier > 0

	return &Outcome{
		Multiplier: multiplier,
		Payout:     settle(stake, multiplier, win, false),
		Win:        win,
		Result:     SlotsResult{Reels: reels, WinType: winType, Win: win},
	}, nil
}

package games

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSlots(t *testing.T) {
	cases := []struct {
		name       string
		reels      []string
		multiplier float64
		winType    string
	}{
		{"three cherries", []string{"🍒", "🍒", "🍒"}, 2, "three_of_a_kind"},
		{"three crowns", []string{"👑", "👑", "👑"}, 100, "three_of_a_kind"},
		{"two diamonds", []string{"💎", "💎", "🍒"}, 5, "two_of_a_kind"},
		{"two cherries floor to one", []string{"🍒", "🔔", "🍒"}, 1, "two_of_a_kind"},
		{"fruit combo", []string{"🍒", "🍋", "🍊"}, 3, "fruit_combo"},
		{"lucky stars", []string{"💎", "⭐", "🔔"}, 2, "lucky_stars"},
		{"star without diamond loses", []string{"🔔", "⭐", "👑"}, 0, ""},
		{"loss", []string{"🔔", "🍇", "👑"}, 0, ""},
	}

	for _, tc := range cases {
		multiplier, winType := evaluateSlots(tc.reels)
		assert.InDelta(t, tc.multiplier, multiplier, 1e-9, tc.name)
		assert.Equal(t, tc.winType, winType, tc.name)
	}
}

func TestSlotsSpin(t *testing.T) {
	// Strip indexes 0, 10 and 17 are all cherries.
	e := New(&stubRand{ints: []int{0, 10, 17}})

	out, err := e.Play(Slots, 10, json.RawMessage(`{}`))
	require.NoError(t, err)

	assert.True(t, out.Win)
	assert.InDelta(t, 2.0, out.Multiplier, 1e-9)
	assert.InDelta(t, 20.0, out.Payout, 1e-9)

	result := out.Result.(SlotsResult)
	assert.Equal(t, []string{"🍒", "🍒", "🍒"}, result.Reels)
	assert.Equal(t, "three_of_a_kind", result.WinType)
}

func TestSlotsLosingSpin(t *testing.T) {
	// Bell, grape, crown: no pair, no combo.
	e := New(&stubRand{ints: []int{4, 3, 9}})

	out, err := e.Play(Slots, 10, json.RawMessage(`{}`))
	require.NoError(t, err)

	assert.False(t, out.Win)
	assert.Zero(t, out.Payout)
}

package games

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouletteStraightNumberWin(t *testing.T) {
	e := New(&stubRand{ints: []int{17}})

	out, err := e.Play(Roulette, 10, json.RawMessage(`{"betType":"number","value":17}`))
	require.NoError(t, err)

	assert.True(t, out.Win)
	assert.InDelta(t, 36.0, out.Multiplier, 1e-9)
	assert.InDelta(t, 360.0, out.Payout, 1e-9)
	assert.Equal(t, RouletteResult{Number: 17, Color: "black", Win: true}, out.Result)
}

func TestRouletteRedWinPaysDouble(t *testing.T) {
	e := New(&stubRand{ints: []int{32}}) // red

	out, err := e.Play(Roulette, 10, json.RawMessage(`{"betType":"red"}`))
	require.NoError(t, err)

	assert.True(t, out.Win)
	assert.InDelta(t, 2.0, out.Multiplier, 1e-9)
	assert.InDelta(t, 20.0, out.Payout, 1e-9)
}

func TestRouletteZeroBeatsEvenMoneyBets(t *testing.T) {
	for _, betType := range []string{"red", "black", "odd", "even", "low", "high"} {
		e := New(&stubRand{ints: []int{0}})
		pred, _ := json.Marshal(map[string]any{"betType": betType})

		out, err := e.Play(Roulette, 10, pred)
		require.NoError(t, err)
		assert.False(t, out.Win, betType)
		assert.Zero(t, out.Payout, betType)
	}
}

func TestRouletteDozensAndColumns(t *testing.T) {
	cases := []struct {
		betType string
		number  int
		win     bool
	}{
		{"dozen1", 12, true},
		{"dozen2", 13, true},
		{"dozen3", 24, false},
		{"column1", 4, true},
		{"column2", 5, true},
		{"column3", 6, true},
		{"column3", 0, false},
	}
	for _, tc := range cases {
		e := New(&stubRand{ints: []int{tc.number}})
		pred, _ := json.Marshal(map[string]any{"betType": tc.betType})

		out, err := e.Play(Roulette, 10, pred)
		require.NoError(t, err)
		assert.Equal(t, tc.win, out.Win, "%s on %d", tc.betType, tc.number)
	}
}

func TestRouletteInvalidBets(t *testing.T) {
	e := New(nil)

	_, err := e.Play(Roulette, 10, json.RawMessage(`{"betType":"snake"}`))
	assert.ErrorIs(t, err, ErrInvalidPrediction)

	_, err = e.Play(Roulette, 10, json.RawMessage(`{"betType":"number","value":37}`))
	assert.ErrorIs(t, err, ErrInvalidPrediction)
}

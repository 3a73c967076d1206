package games

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceWinScenario(t *testing.T) {
	// Mocked roll 49.99 against target 50 under: win at 1.98x.
	e := New(&stubRand{floats: []float64{0.4999}})

	out, err := e.Play(Dice, 10, json.RawMessage(`{"prediction":"under","target":50}`))
	require.NoError(t, err)

	assert.True(t, out.Win)
	assert.InDelta(t, 1.98, out.Multiplier, 1e-9)
	assert.InDelta(t, 19.80, out.Payout, 1e-9)
	assert.Equal(t, DiceResult{Roll: 49.99, Win: true}, out.Result)
}

func TestDiceTargetItselfLosesBothWays(t *testing.T) {
	// Roll lands exactly on the target: loss for over and under alike.
	for _, prediction := range []string{"over", "under"} {
		e := New(&stubRand{floats: []float64{0.50}})
		pred := json.RawMessage(fmt.Sprintf(`{"prediction":%q,"target":50}`, prediction))

		out, err := e.Play(Dice, 10, pred)
		require.NoError(t, err)
		assert.False(t, out.Win, prediction)
		assert.Zero(t, out.Payout, prediction)
	}
}

func TestDiceTargetBounds(t *testing.T) {
	e := New(nil)
	for _, target := range []int{1, 99, 0, -5, 150} {
		pred := json.RawMessage(fmt.Sprintf(`{"prediction":"over","target":%d}`, target))
		_, err := e.Play(Dice, 10, pred)
		assert.ErrorIs(t, err, ErrInvalidPrediction, target)
	}
}

func TestDiceMultiplierHouseEdgeConsistency(t *testing.T) {
	// multiplier * winChance == 1 - houseEdge for every valid pair.
	cfg, _ := ConfigFor(Dice)
	for target := 2; target <= 98; target++ {
		over := DiceMultiplier(target, "over", cfg.HouseEdge) * float64(100-target) / 100
		under := DiceMultiplier(target, "under", cfg.HouseEdge) * float64(target) / 100

		assert.InDelta(t, 1-cfg.HouseEdge, over, 1e-9, target)
		assert.InDelta(t, 1-cfg.HouseEdge, under, 1e-9, target)
	}
}

func TestDiceFairness(t *testing.T) {
	// Empirical win rate at target 50 over converges to 0.5, expected
	// payout per unit stake to 1 - houseEdge.
	const trials = 200000
	cfg, _ := ConfigFor(Dice)
	e := New(rand.New(rand.NewSource(1)))
	pred := json.RawMessage(`{"prediction":"over","target":50}`)

	wins := 0
	totalPayout := 0.0
	for i := 0; i < trials; i++ {
		out, err := e.Play(Dice, 1, pred)
		require.NoError(t, err)
		if out.Win {
			wins++
		}
		totalPayout += out.Payout
	}

	assert.InDelta(t, 0.5, float64(wins)/trials, 0.01)
	assert.InDelta(t, 1-cfg.HouseEdge, totalPayout/trials, 0.02)
}

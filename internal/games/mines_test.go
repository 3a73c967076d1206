package games

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityPerm puts the mines on the lowest tiles.
func identityPerm() []int {
	p := make([]int, minesGridSize)
	for i := range p {
		p[i] = i
	}
	return p
}

func TestMinesSurvivingPicksWins(t *testing.T) {
	// Mines land on tiles 0..2; picks stay clear of them.
	e := New(&stubRand{perms: [][]int{identityPerm()}})

	out, err := e.Play(Mines, 10, json.RawMessage(`{"mines":3,"picks":[5,6,7]}`))
	require.NoError(t, err)

	assert.True(t, out.Win)
	assert.InDelta(t, MinesMultiplier(3, 3), out.Multiplier, 1e-9)

	result := out.Result.(MinesResult)
	assert.Equal(t, 3, result.Revealed)
	assert.Nil(t, result.HitMine)
}

func TestMinesHittingMineLosesEverything(t *testing.T) {
	e := New(&stubRand{perms: [][]int{identityPerm()}})

	out, err := e.Play(Mines, 10, json.RawMessage(`{"mines":3,"picks":[5,2,7]}`))
	require.NoError(t, err)

	assert.False(t, out.Win)
	assert.Zero(t, out.Payout)

	result := out.Result.(MinesResult)
	assert.Equal(t, 1, result.Revealed) // tile 5 revealed before the hit
	require.NotNil(t, result.HitMine)
	assert.Equal(t, 2, *result.HitMine)
}

func TestMinesMultiplierGrowsWithRisk(t *testing.T) {
	// More revealed gems and more mines both raise the multiplier.
	assert.Greater(t, MinesMultiplier(5, 3), MinesMultiplier(2, 3))
	assert.Greater(t, MinesMultiplier(3, 10), MinesMultiplier(3, 3))

	// Spot check against the closed form.
	want := math.Pow(1+(3.0/20.0)*(5.0/2.0), 1.1+5*0.1)
	assert.InDelta(t, want, MinesMultiplier(3, 5), 1e-9)
}

func TestMinesValidation(t *testing.T) {
	e := New(nil)

	cases := []string{
		`{"mines":0,"picks":[1]}`,
		`{"mines":25,"picks":[1]}`,
		`{"mines":3,"picks":[]}`,
		`{"mines":3,"picks":[25]}`,
		`{"mines":3,"picks":[1,1]}`,
		`{"mines":24,"picks":[0,1]}`,
	}
	for _, raw := range cases {
		_, err := e.Play(Mines, 10, json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrInvalidPrediction, raw)
	}
}

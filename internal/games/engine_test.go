package games

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRand replays fixed values so outcomes are deterministic.
type stubRand struct {
	floats []float64
	ints   []int
	perms  [][]int
	fi     int
	ii     int
	pi     int
}

func (s *stubRand) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *stubRand) Intn(n int) int {
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v
}

func (s *stubRand) Perm(n int) []int {
	p := s.perms[s.pi%len(s.perms)]
	s.pi++
	return p
}

func TestPlayUnknownGame(t *testing.T) {
	e := New(nil)
	_, err := e.Play("poker", 10, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestPlayIsDeterministicGivenRandomness(t *testing.T) {
	pred := json.RawMessage(`{"prediction":"over","target":50}`)

	first, err := New(&stubRand{floats: []float64{0.75}}).Play(Dice, 10, pred)
	require.NoError(t, err)
	second, err := New(&stubRand{floats: []float64{0.75}}).Play(Dice, 10, pred)
	require.NoError(t, err)

	assert.Equal(t, first.Multiplier, second.Multiplier)
	assert.Equal(t, first.Payout, second.Payout)
	assert.Equal(t, first.Win, second.Win)
	assert.Equal(t, first.Result, second.Result)
}

func TestPayoutBoundedByGameCap(t *testing.T) {
	// Force the top plinko slot on the maximum stake; the engine must cap
	// the payout at the configured maximum.
	e := New(&stubRand{floats: []float64{0.9}}) // all right, slot 0, 1000x
	cfg, _ := ConfigFor(Plinko)

	out, err := e.Play(Plinko, cfg.MaxBet, json.RawMessage(`{"risk":"medium"}`))
	require.NoError(t, err)
	assert.LessOrEqual(t, out.Payout, cfg.MaxPayout)
}

func TestPayoutNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := New(rng)

	predictions := map[Type]json.RawMessage{
		Dice:      json.RawMessage(`{"prediction":"under","target":50}`),
		Coinflip:  json.RawMessage(`{"prediction":"heads"}`),
		Crash:     json.RawMessage(`{"cashoutMultiplier":2}`),
		Blackjack: json.RawMessage(`{"result":"lose"}`),
		Roulette:  json.RawMessage(`{"betType":"red"}`),
		Slots:     json.RawMessage(`{}`),
		Mines:     json.RawMessage(`{"mines":3,"picks":[0,1]}`),
		Plinko:    json.RawMessage(`{"risk":"low"}`),
	}

	for game, pred := range predictions {
		cfg, ok := ConfigFor(game)
		require.True(t, ok, game)

		for i := 0; i < 500; i++ {
			out, err := e.Play(game, 10, pred)
			require.NoError(t, err, game)
			assert.GreaterOrEqual(t, out.Payout, 0.0, game)
			assert.LessOrEqual(t, out.Payout, cfg.MaxPayout, game)
		}
	}
}

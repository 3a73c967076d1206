package games

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackjackPushReturnsStake(t *testing.T) {
	e := New(nil)

	out, err := e.Play(Blackjack, 20, json.RawMessage(`{"result":"push"}`))
	require.NoError(t, err)

	assert.False(t, out.Win)
	assert.True(t, out.Push)
	assert.InDelta(t, 20.0, out.Payout, 1e-9)
	assert.InDelta(t, 1.0, out.Multiplier, 1e-9)
}

func TestBlackjackNaturalPaysThreeToTwo(t *testing.T) {
	e := New(nil)
	pred := json.RawMessage(`{"result":"win","playerHand":[{"rank":"A","value":11},{"rank":"K","value":10}]}`)

	out, err := e.Play(Blackjack, 10, pred)
	require.NoError(t, err)

	assert.True(t, out.Win)
	assert.InDelta(t, 2.5, out.Multiplier, 1e-9)
	assert.InDelta(t, 25.0, out.Payout, 1e-9)
}

func TestBlackjackRegularWinPaysEvenMoney(t *testing.T) {
	e := New(nil)
	pred := json.RawMessage(`{"result":"win","playerHand":[{"rank":"9","value":9},{"rank":"7","value":7},{"rank":"5","value":5}]}`)

	out, err := e.Play(Blackjack, 10, pred)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, out.Multiplier, 1e-9)
	assert.InDelta(t, 20.0, out.Payout, 1e-9)
}

func TestBlackjackLossPaysNothing(t *testing.T) {
	e := New(nil)

	out, err := e.Play(Blackjack, 10, json.RawMessage(`{"result":"lose"}`))
	require.NoError(t, err)

	assert.False(t, out.Win)
	assert.False(t, out.Push)
	assert.Zero(t, out.Payout)
}

func TestBlackjackRejectsUnknownResult(t *testing.T) {
	e := New(nil)
	_, err := e.Play(Blackjack, 10, json.RawMessage(`{"result":"split"}`))
	assert.ErrorIs(t, err, ErrInvalidPrediction)
}

func TestIsNatural(t *testing.T) {
	assert.True(t, IsNatural([]Card{{Rank: "A"}, {Rank: "Q"}}))
	assert.True(t, IsNatural([]Card{{Rank: "10", Value: 10}, {Rank: "A"}}))
	assert.False(t, IsNatural([]Card{{Rank: "9", Value: 9}, {Rank: "K"}}))
	assert.False(t, IsNatural([]Card{{Rank: "A"}, {Rank: "5", Value: 5}, {Rank: "5", Value: 5}}))
}

package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAfford(t *testing.T) {
	assert.True(t, CanAfford(100, 100))
	assert.True(t, CanAfford(100, 0.01))
	assert.False(t, CanAfford(100, 100.01))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0.01, 0.01, 1000))
	assert.True(t, InRange(1000, 0.01, 1000))
	assert.False(t, InRange(1000.01, 0.01, 1000))
	assert.False(t, InRange(0.001, 0.01, 1000))
}

func TestValidateAdjustment(t *testing.T) {
	assert.NoError(t, ValidateAdjustment(100, 50, MaxBalance))
	assert.NoError(t, ValidateAdjustment(100, -100, MaxBalance))

	assert.ErrorIs(t, ValidateAdjustment(100, -100.01, MaxBalance), ErrBalanceBelowZero)
	assert.ErrorIs(t, ValidateAdjustment(500000, 1000000, 1000000), ErrBalanceAboveMax)
}

package wallet

import "errors"

var (
	ErrNotFound         = errors.New("account not found")
	ErrBalanceBelowZero = errors.New("cannot reduce balance below zero")
	ErrBalanceAboveMax  = errors.New("cannot increase balance above the maximum")
)

// CanAfford reports whether balance covers the stake.
func CanAfford(balance, stake float64) bool {
	return stake <= balance
}

// InRange reports whether the stake falls within the game's bet limits.
func InRange(stake, minBet, maxBet float64) bool {
	return stake >= minBet && stake <= maxBet
}

// ValidateAdjustment gates an admin balance change: the resulting balance
// must stay within [0, maxBalance].
func ValidateAdjustment(currentBalance, delta, maxBalance float64) error {
	next := currentBalance + delta
	if next < 0 {
		return ErrBalanceBelowZero
	}
	if next > maxBalance {
		return ErrBalanceAboveMax
	}
	return nil
}

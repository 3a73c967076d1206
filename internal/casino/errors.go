package casino

import "errors"

var (
	// ErrInvalidAmount and ErrInsufficientFunds are distinguished so the
	// UI can render different messages.
	ErrInvalidAmount     = errors.New("bet amount outside the game's limits")
	ErrInsufficientFunds = errors.New("insufficient balance for this bet")

	// ErrStorage wraps persistence failures. Steps already committed are
	// not compensated; the log carries enough context to reconcile.
	ErrStorage = errors.New("storage failure")
)

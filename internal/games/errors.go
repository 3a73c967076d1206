package games

import "errors"

var (
	ErrUnknownGame       = errors.New("unknown game type")
	ErrInvalidPrediction = errors.New("invalid prediction")
)

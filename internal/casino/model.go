package casino

import "encoding/json"

const StatusFinished = "finished"

// Bet is one resolved game round. Created and finished in the same
// operation; there is no pending state.
type Bet struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	GameType   string          `json:"game_type"`
	Amount     float64         `json:"amount"`
	Multiplier float64         `json:"multiplier"`
	Prediction json.RawMessage `json:"prediction"`
	Result     json.RawMessage `json:"result"`
	Payout     float64         `json:"payout"`
	Status     string          `json:"status"`
	CreatedAt  int64           `json:"created_at"`
	FinishedAt int64           `json:"finished_at"`
}

// PlaceBetResult is what the request layer gets back.
type PlaceBetResult struct {
	Bet        *Bet    `json:"bet"`
	NewBalance float64 `json:"newBalance"`
	Win        bool    `json:"win"`
}

// BetSettled is the payload published on the event bus after a bet commits.
type BetSettled struct {
	Bet        *Bet
	NewBalance float64
	Win        bool
}

// UserStats summarizes one account's betting history.
type UserStats struct {
	TotalBets    int     `json:"totalBets"`
	TotalWagered float64 `json:"totalWagered"`
	TotalWon     float64 `json:"totalWon"`
	NetProfit    float64 `json:"netProfit"`
	WinRate      float64 `json:"winRate"`
	FavoriteGame string  `json:"favoriteGame"`
}

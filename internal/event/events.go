package event

const (
	EventBetSettled      = "bet.settled"
	EventBalanceAdjusted = "balance.adjusted"
)

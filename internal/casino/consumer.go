package casino

import (
	"casino-platform/internal/event"
)

// Notifier is the outbound real-time channel. Best-effort; the coordinator
// never depends on delivery.
type Notifier interface {
	NotifyAccount(accountID, eventName string, payload any)
	Broadcast(eventName string, payload any)
}

// RegisterConsumers wires settled bets to the notification channel. Runs on
// bus goroutines after the bet has committed, so a slow or failing push
// cannot unwind a wager.
func RegisterConsumers(bus *event.Bus, notifier Notifier) {

	bus.Subscribe(event.EventBetSettled, func(payload interface{}) {
		res, ok := payload.(*BetSettled)
		if !ok {
			return
		}

		notifier.NotifyAccount(res.Bet.UserID, "bet-result", res.Bet)
		notifier.NotifyAccount(res.Bet.UserID, "balance-update", res.NewBalance)

		notifier.Broadcast("game-update", map[string]any{
			"game":   res.Bet.GameType,
			"payout": res.Bet.Payout,
			"win":    res.Win,
		})
	})
}

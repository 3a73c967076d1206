package admin

import (
	"casino-platform/internal/event"
)

type Notifier interface {
	NotifyAccount(accountID, eventName string, payload any)
}

// RegisterConsumers pushes balance adjustments to the affected account.
func RegisterConsumers(bus *event.Bus, notifier Notifier) {
	bus.Subscribe(event.EventBalanceAdjusted, func(payload interface{}) {
		adj, ok := payload.(*BalanceAdjusted)
		if !ok {
			return
		}
		notifier.NotifyAccount(adj.UserID, "balance-update", adj.NewBalance)
	})
}

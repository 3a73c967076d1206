package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	BetsPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_bets_total",
			Help: "Total settled bets",
		},
		[]string{"game", "outcome"},
	)

	AmountWagered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_wagered_total",
			Help: "Total amount wagered",
		},
	)

	AmountPaidOut = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_payout_total",
			Help: "Total amount paid out",
		},
	)

	BalanceUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_balance_updates_total",
			Help: "Total wallet balance updates",
		},
	)
)

func Init() {
	prometheus.MustRegister(BetsPlaced)
	prometheus.MustRegister(AmountWagered)
	prometheus.MustRegister(AmountPaidOut)
	prometheus.MustRegister(BalanceUpdates)
}

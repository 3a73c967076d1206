package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"casino-platform/internal/casino"
	"casino-platform/internal/logger"
	"casino-platform/internal/wallet"
)

// DailyStats logs a platform summary once a day: realized RTP, totals
// wagered and paid out, and the sum of all balances.
type DailyStats struct {
	tracker *casino.Tracker
	wallet  *wallet.Service
}

func NewDailyStats(tracker *casino.Tracker, w *wallet.Service) *DailyStats {
	return &DailyStats{tracker: tracker, wallet: w}
}

func (j *DailyStats) Start(ctx context.Context) {
	c := cron.New()
	c.AddFunc("@daily", j.report)
	c.Start()

	<-ctx.Done()
	c.Stop()
}

func (j *DailyStats) report() {
	wagered, payout := j.tracker.Totals()
	total, err := j.wallet.TotalBalance()
	if err != nil {
		logger.Log.Warn("daily stats: total balance query failed", zap.Error(err))
	}

	logger.Log.Info("daily platform stats",
		zap.Float64("wagered", wagered),
		zap.Float64("payout", payout),
		zap.Float64("rtp", j.tracker.RTP()),
		zap.Float64("total_balance", total))
}

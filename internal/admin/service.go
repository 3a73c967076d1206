package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"casino-platform/internal/casino"
	"casino-platform/internal/event"
	"casino-platform/internal/ledger"
	"casino-platform/internal/logger"
	"casino-platform/internal/monitoring"
	"casino-platform/internal/wallet"
)

// Adjustment is the outcome of an admin balance change.
type Adjustment struct {
	UserID          string  `json:"user_id"`
	PreviousBalance float64 `json:"previous_balance"`
	NewBalance      float64 `json:"new_balance"`
	Delta           float64 `json:"adjustment"`
	TransactionID   string  `json:"transaction_id"`
}

// BalanceAdjusted is published on the event bus after an adjustment commits.
type BalanceAdjusted struct {
	UserID     string
	NewBalance float64
}

type Auditor interface {
	Log(adminID, action, targetID, details string)
}

type Service struct {
	db     *sql.DB
	wallet *wallet.Service
	ledger *ledger.Service
	casino *casino.Service
	audit  Auditor
	bus    *event.Bus
}

func NewService(db *sql.DB, w *wallet.Service, l *ledger.Service, c *casino.Service, audit Auditor, bus *event.Bus) *Service {
	return &Service{db: db, wallet: w, ledger: l, casino: c, audit: audit, bus: bus}
}

// AdjustBalance applies a signed delta to an account. The new balance must
// stay within [0, MaxBalance]; the write and its admin_adjustment ledger
// entry commit together.
func (s *Service) AdjustBalance(ctx context.Context, adminID, userID string, delta float64, description string) (*Adjustment, error) {
	if description == "" {
		description = fmt.Sprintf("Admin adjustment by %s", adminID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.storageErr(err, userID, "begin")
	}
	defer tx.Rollback()

	balance, err := s.wallet.BalanceTx(tx, userID)
	if err != nil {
		if err == wallet.ErrNotFound {
			return nil, err
		}
		return nil, s.storageErr(err, userID, "read balance")
	}

	if err := wallet.ValidateAdjustment(balance, delta, wallet.MaxBalance); err != nil {
		return nil, err
	}

	newBalance := balance + delta
	if err := s.wallet.UpdateBalanceTx(tx, userID, newBalance); err != nil {
		return nil, s.storageErr(err, userID, "balance update")
	}

	txID, err := s.ledger.Record(tx, ledger.Entry{
		UserID:        userID,
		Type:          ledger.TypeAdminAdjustment,
		Amount:        delta,
		BalanceBefore: balance,
		BalanceAfter:  newBalance,
		Description:   description,
	})
	if err != nil {
		return nil, s.storageErr(err, userID, "ledger entry")
	}

	if err := tx.Commit(); err != nil {
		return nil, s.storageErr(err, userID, "commit")
	}

	monitoring.BalanceUpdates.Inc()

	details, _ := json.Marshal(map[string]any{
		"amount":         delta,
		"balance_before": balance,
		"balance_after":  newBalance,
		"description":    description,
	})
	s.audit.Log(adminID, "adjust_balance", userID, string(details))

	s.bus.Publish(event.EventBalanceAdjusted, &BalanceAdjusted{UserID: userID, NewBalance: newBalance})

	return &Adjustment{
		UserID:          userID,
		PreviousBalance: balance,
		NewBalance:      newBalance,
		Delta:           delta,
		TransactionID:   txID,
	}, nil
}

func (s *Service) ListUsers(limit, offset int) ([]*wallet.Account, error) {
	return s.wallet.List(limit, offset)
}

// UserDetail bundles an account with its recent bets and transactions.
func (s *Service) UserDetail(userID string) (*wallet.Account, []*casino.Bet, []ledger.Entry, error) {
	account, err := s.wallet.Get(userID)
	if err != nil {
		return nil, nil, nil, err
	}
	bets, err := s.casino.History(userID, 50)
	if err != nil {
		return nil, nil, nil, err
	}
	entries, err := s.ledger.ListByUser(userID, 50)
	if err != nil {
		return nil, nil, nil, err
	}
	return account, bets, entries, nil
}

func (s *Service) ListTransactions(limit, offset int) ([]ledger.Entry, error) {
	return s.ledger.ListAll(limit, offset)
}

// Dashboard aggregates platform stats for the admin UI.
type Dashboard struct {
	TotalBalance       float64                   `json:"totalBalance"`
	RTP                float64                   `json:"rtp"`
	Today              PeriodStats               `json:"today"`
	Week               PeriodStats               `json:"week"`
	Month              PeriodStats               `json:"month"`
	TopPlayers         []casino.LeaderboardEntry `json:"topPlayers"`
	RecentTransactions []ledger.Entry            `json:"recentTransactions"`
}

type PeriodStats struct {
	Bets    int     `json:"bets"`
	Wagered float64 `json:"wagered"`
	Payout  float64 `json:"payout"`
	Profit  float64 `json:"profit"`
}

func (s *Service) Dashboard() (*Dashboard, error) {
	total, err := s.wallet.TotalBalance()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.periodStats(midnight.Unix())
	if err != nil {
		return nil, err
	}
	week, err := s.periodStats(midnight.AddDate(0, 0, -7).Unix())
	if err != nil {
		return nil, err
	}
	month, err := s.periodStats(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Unix())
	if err != nil {
		return nil, err
	}

	recent, err := s.ledger.ListAll(20, 0)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalBalance:       total,
		RTP:                s.casino.Stats().RTP(),
		Today:              today,
		Week:               week,
		Month:              month,
		TopPlayers:         s.casino.Leaderboard().Top(10),
		RecentTransactions: recent,
	}, nil
}

func (s *Service) periodStats(since int64) (PeriodStats, error) {
	count, wagered, payout, err := s.casino.BetCountsSince(since)
	if err != nil {
		return PeriodStats{}, err
	}
	return PeriodStats{
		Bets:    count,
		Wagered: wagered,
		Payout:  payout,
		Profit:  wagered - payout,
	}, nil
}

func (s *Service) storageErr(err error, userID, stage string) error {
	logger.Log.Error("balance adjustment storage failure",
		zap.String("user_id", userID),
		zap.String("stage", stage),
		zap.Error(err))
	return fmt.Errorf("%w at %s: %v", casino.ErrStorage, stage, err)
}

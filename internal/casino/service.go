package casino

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casino-platform/internal/event"
	"casino-platform/internal/games"
	"casino-platform/internal/ledger"
	"casino-platform/internal/logger"
	"casino-platform/internal/monitoring"
	"casino-platform/internal/wallet"
)

// Service is the only mutating entry point for placing a bet. It holds no
// state between calls; every settlement runs in its own storage transaction.
type Service struct {
	db     *sql.DB
	engine *games.Engine
	wallet *wallet.Service
	ledger *ledger.Service
	bus    *event.Bus
	stats  *Tracker
	board  *Leaderboard
}

func NewService(db *sql.DB, engine *games.Engine, w *wallet.Service, l *ledger.Service, bus *event.Bus) *Service {
	return &Service{
		db:     db,
		engine: engine,
		wallet: w,
		ledger: l,
		bus:    bus,
		stats:  NewTracker(),
		board:  NewLeaderboard(),
	}
}

func (s *Service) Stats() *Tracker           { return s.stats }
func (s *Service) Leaderboard() *Leaderboard { return s.board }

// PlaceBet validates the wager, resolves the game, and persists the bet
// record, balance update and ledger entries as one atomic unit per account.
// actingUID is the caller-identity credential recorded on the bet row;
// empty means the service identity.
func (s *Service) PlaceBet(ctx context.Context, uid string, game games.Type, amount float64,
	prediction json.RawMessage, actingUID string) (*PlaceBetResult, error) {

	cfg, ok := games.ConfigFor(game)
	if !ok {
		return nil, games.ErrUnknownGame
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.storageErr(err, uid, "", "begin")
	}
	defer tx.Rollback()

	balance, err := s.wallet.BalanceTx(tx, uid)
	if err != nil {
		if err == wallet.ErrNotFound {
			return nil, err
		}
		return nil, s.storageErr(err, uid, "", "read balance")
	}

	if !wallet.CanAfford(balance, amount) {
		return nil, ErrInsufficientFunds
	}
	if !wallet.InRange(amount, cfg.MinBet, cfg.MaxBet) {
		return nil, ErrInvalidAmount
	}

	outcome, err := s.engine.Play(game, amount, prediction)
	if err != nil {
		return nil, err
	}

	resultJSON, err := json.Marshal(outcome.Result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	now := time.Now().Unix()
	bet := &Bet{
		ID:         uuid.New().String(),
		UserID:     uid,
		GameType:   string(game),
		Amount:     amount,
		Multiplier: outcome.Multiplier,
		Prediction: prediction,
		Result:     resultJSON,
		Payout:     outcome.Payout,
		Status:     StatusFinished,
		CreatedAt:  now,
		FinishedAt: now,
	}

	if err := s.insertBet(tx, bet, actingUID); err != nil {
		return nil, s.storageErr(err, uid, bet.ID, "bet record")
	}

	newBalance := balance - amount + outcome.Payout
	if err := s.wallet.UpdateBalanceTx(tx, uid, newBalance); err != nil {
		return nil, s.storageErr(err, uid, bet.ID, "balance update")
	}

	if _, err := s.ledger.Record(tx, ledger.Entry{
		UserID:        uid,
		Type:          ledger.TypeBet,
		Amount:        -amount,
		BalanceBefore: balance,
		BalanceAfter:  balance - amount,
		Description:   fmt.Sprintf("%s bet", game),
	}); err != nil {
		return nil, s.storageErr(err, uid, bet.ID, "bet ledger entry")
	}

	// A push returns the stake through the payout but is not a win, so it
	// gets no paired win entry.
	if outcome.Win && outcome.Payout > 0 {
		if _, err := s.ledger.Record(tx, ledger.Entry{
			UserID:        uid,
			Type:          ledger.TypeWin,
			Amount:        outcome.Payout,
			BalanceBefore: balance - amount,
			BalanceAfter:  newBalance,
			Description:   fmt.Sprintf("%s win", game),
		}); err != nil {
			return nil, s.storageErr(err, uid, bet.ID, "win ledger entry")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, s.storageErr(err, uid, bet.ID, "commit")
	}

	s.record(bet, outcome)
	s.bus.Publish(event.EventBetSettled, &BetSettled{Bet: bet, NewBalance: newBalance, Win: outcome.Win})

	return &PlaceBetResult{Bet: bet, NewBalance: newBalance, Win: outcome.Win}, nil
}

func (s *Service) insertBet(tx *sql.Tx, b *Bet, actingUID string) error {
	var acting any
	if actingUID != "" {
		acting = actingUID
	}
	_, err := tx.Exec(`
	INSERT INTO bets(id, user_id, game_type, amount, multiplier, prediction, result, payout, status, acting_uid, created_at, finished_at)
	VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
	`, b.ID, b.UserID, b.GameType, b.Amount, b.Multiplier,
		string(b.Prediction), string(b.Result), b.Payout, b.Status, acting, b.CreatedAt, b.FinishedAt)
	return err
}

func (s *Service) record(bet *Bet, outcome *games.Outcome) {
	s.stats.Record(bet.Amount, bet.Payout)
	s.board.Record(bet.UserID, bet.Payout-bet.Amount)

	result := "loss"
	if outcome.Win {
		result = "win"
	} else if outcome.Push {
		result = "push"
	}
	monitoring.BetsPlaced.WithLabelValues(bet.GameType, result).Inc()
	monitoring.AmountWagered.Add(bet.Amount)
	monitoring.AmountPaidOut.Add(bet.Payout)
	monitoring.BalanceUpdates.Inc()
}

func (s *Service) storageErr(err error, uid, betID, stage string) error {
	logger.Log.Error("bet settlement storage failure",
		zap.String("user_id", uid),
		zap.String("bet_id", betID),
		zap.String("stage", stage),
		zap.Error(err))
	return fmt.Errorf("%w at %s: %v", ErrStorage, stage, err)
}

// History returns the account's most recent bets.
func (s *Service) History(uid string, limit int) ([]*Bet, error) {
	rows, err := s.db.Query(`
	SELECT id, user_id, game_type, amount, multiplier, prediction, result, payout, status, created_at, finished_at
	FROM bets WHERE user_id=? ORDER BY created_at DESC, rowid DESC LIMIT ?`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Bet
	for rows.Next() {
		var b Bet
		var prediction, result string
		if err := rows.Scan(&b.ID, &b.UserID, &b.GameType, &b.Amount, &b.Multiplier,
			&prediction, &result, &b.Payout, &b.Status, &b.CreatedAt, &b.FinishedAt); err != nil {
			return nil, err
		}
		b.Prediction = json.RawMessage(prediction)
		b.Result = json.RawMessage(result)
		out = append(out, &b)
	}
	return out, rows.Err()
}

// UserStats aggregates one account's betting history.
func (s *Service) UserStats(uid string) (*UserStats, error) {
	var stats UserStats
	var wins int
	err := s.db.QueryRow(`
	SELECT COUNT(*),
	       COALESCE(SUM(amount), 0),
	       COALESCE(SUM(payout), 0),
	       COALESCE(SUM(CASE WHEN payout > amount THEN 1 ELSE 0 END), 0)
	FROM bets WHERE user_id=?`, uid).Scan(&stats.TotalBets, &stats.TotalWagered, &stats.TotalWon, &wins)
	if err != nil {
		return nil, err
	}
	stats.NetProfit = stats.TotalWon - stats.TotalWagered
	if stats.TotalBets > 0 {
		stats.WinRate = float64(wins) / float64(stats.TotalBets)
	}

	err = s.db.QueryRow(`
	SELECT game_type FROM bets WHERE user_id=?
	GROUP BY game_type ORDER BY COUNT(*) DESC LIMIT 1`, uid).Scan(&stats.FavoriteGame)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	return &stats, nil
}

// BetCountsSince returns bet count, wagered and payout totals since ts,
// for the admin dashboard.
func (s *Service) BetCountsSince(ts int64) (count int, wagered, payout float64, err error) {
	err = s.db.QueryRow(`
	SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(payout), 0)
	FROM bets WHERE created_at >= ?`, ts).Scan(&count, &wagered, &payout)
	return
}

package ledger

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Entry types.
const (
	TypeDeposit         = "deposit"
	TypeWithdrawal      = "withdrawal"
	TypeBet             = "bet"
	TypeWin             = "win"
	TypeAdminAdjustment = "admin_adjustment"
)

// Entry is an immutable record of one balance change. Entries are
// append-only; nothing in this package updates or deletes them.
type Entry struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	BalanceBefore float64 `json:"balance_before"`
	BalanceAfter  float64 `json:"balance_after"`
	Description   string  `json:"description"`
	CreatedAt     int64   `json:"created_at"`
}

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Record appends an entry inside an open transaction. The entry must
// balance: balance_after == balance_before + amount.
func (s *Service) Record(tx *sql.Tx, e Entry) (string, error) {
	if math.Abs(e.BalanceBefore+e.Amount-e.BalanceAfter) > 1e-6 {
		return "", fmt.Errorf("ledger: unbalanced %s entry for %s: %f + %f != %f",
			e.Type, e.UserID, e.BalanceBefore, e.Amount, e.BalanceAfter)
	}

	id := uuid.New().String()
	_, err := tx.Exec(`
	INSERT INTO transactions(id, user_id, type, amount, balance_before, balance_after, description, created_at)
	VALUES (?,?,?,?,?,?,?,?)
	`, id, e.UserID, e.Type, e.Amount, e.BalanceBefore, e.BalanceAfter, e.Description, time.Now().Unix())
	return id, err
}

func (s *Service) ListByUser(userID string, limit int) ([]Entry, error) {
	return s.query(`
	SELECT id, user_id, type, amount, balance_before, balance_after, description, created_at
	FROM transactions WHERE user_id=? ORDER BY created_at DESC, rowid DESC LIMIT ?`, userID, limit)
}

func (s *Service) ListAll(limit, offset int) ([]Entry, error) {
	return s.query(`
	SELECT id, user_id, type, amount, balance_before, balance_after, description, created_at
	FROM transactions ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`, limit, offset)
}

// SumByUser totals all signed entry amounts for one account. Chained with
// the default starting balance it must equal the account's live balance.
func (s *Service) SumByUser(userID string) (float64, error) {
	var sum float64
	err := s.db.QueryRow(`
	SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id=?`, userID).Scan(&sum)
	return sum, err
}

func (s *Service) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Amount,
			&e.BalanceBefore, &e.BalanceAfter, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

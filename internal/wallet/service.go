package wallet

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Create registers a new account with the default starting balance.
func (s *Service) Create(username, role string) (*Account, error) {
	now := time.Now().Unix()
	a := &Account{
		ID:        uuid.New().String(),
		Username:  username,
		Role:      role,
		Balance:   DefaultBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.Exec(`
	INSERT INTO accounts(id, username, role, balance, created_at, updated_at)
	VALUES (?,?,?,?,?,?)
	`, a.ID, a.Username, a.Role, a.Balance, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(id string) (*Account, error) {
	return scanAccount(s.db.QueryRow(`
	SELECT id, username, role, balance, created_at, updated_at
	FROM accounts WHERE id=?`, id))
}

func (s *Service) List(limit, offset int) ([]*Account, error) {
	rows, err := s.db.Query(`
	SELECT id, username, role, balance, created_at, updated_at
	FROM accounts ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Role, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// TotalBalance sums every account balance, for the admin dashboard.
func (s *Service) TotalBalance() (float64, error) {
	var total float64
	err := s.db.QueryRow(`SELECT COALESCE(SUM(balance), 0) FROM accounts`).Scan(&total)
	return total, err
}

// BalanceTx reads the current balance inside an open transaction.
func (s *Service) BalanceTx(tx *sql.Tx, id string) (float64, error) {
	var balance float64
	err := tx.QueryRow(`SELECT balance FROM accounts WHERE id=?`, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return balance, err
}

// UpdateBalanceTx writes the new balance inside an open transaction.
func (s *Service) UpdateBalanceTx(tx *sql.Tx, id string, newBalance float64) error {
	res, err := tx.Exec(`UPDATE accounts SET balance=?, updated_at=? WHERE id=?`,
		newBalance, time.Now().Unix(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAccount(row *sql.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Username, &a.Role, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

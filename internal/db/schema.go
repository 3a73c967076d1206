package db

import "database/sql"

func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL DEFAULT 'player',
			balance REAL NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS bets (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES accounts(id),
			game_type TEXT NOT NULL,
			amount REAL NOT NULL,
			multiplier REAL NOT NULL,
			prediction TEXT NOT NULL,
			result TEXT NOT NULL,
			payout REAL NOT NULL,
			status TEXT NOT NULL DEFAULT 'finished',
			acting_uid TEXT,
			created_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_bets_user ON bets(user_id, created_at DESC);`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES accounts(id),
			type TEXT NOT NULL,
			amount REAL NOT NULL,
			balance_before REAL NOT NULL,
			balance_after REAL NOT NULL,
			description TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tx_user ON transactions(user_id, created_at DESC);`,

		`CREATE TABLE IF NOT EXISTS audit_logs (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			action TEXT NOT NULL,
			target_id TEXT,
			details TEXT,
			created_at INTEGER NOT NULL
		);`,
	}

	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

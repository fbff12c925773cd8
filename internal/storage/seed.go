package storage

import (
	"context"
	"fmt"

	"spendwise/internal/core"
)

// SeedDemo populates the demo household on an empty database so the
// sqlite backend matches the in-memory one on first run. A database
// with any friends already in it is left untouched.
func (r *SQLiteRepository) SeedDemo(ctx context.Context) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM friends`).Scan(&n); err != nil {
		return fmt.Errorf("count friends: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	friends := []core.Friend{
		{ID: "f1", Name: "Varun", Balance: core.Money{Paise: 125000}},
		{ID: "f2", Name: "Rohan", Balance: core.Money{Paise: -45000}},
		{ID: "f3", Name: "Isha"},
	}
	for _, f := range friends {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO friends (id, name, balance_paise) VALUES (?, ?, ?)`,
			f.ID, f.Name, f.Balance.Paise); err != nil {
			return fmt.Errorf("seed friend: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO emis (id, name, monthly_amount_paise, due_date)
		VALUES ('m1', 'MacBook Air EMI', 550000, '2024-11-05')`); err != nil {
		return fmt.Errorf("seed emi: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO goals (id, type, target_amount_paise, period, current_progress_paise)
		VALUES ('g1', 'savings', 5000000, 'monthly', 1250000)`); err != nil {
		return fmt.Errorf("seed goal: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO bank_accounts (id, bank_name, account_type, balance_paise, last_four) VALUES
		('b1', 'ICICI Bank', 'Savings', 14250000, '8821'),
		('b2', 'HDFC Bank', 'Savings', 2840000, '1024')`); err != nil {
		return fmt.Errorf("seed bank accounts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE cash_balance SET opening_paise = 1000000, current_paise = 850000 WHERE id = 1`); err != nil {
		return fmt.Errorf("seed cash balance: %w", err)
	}

	return tx.Commit()
}

// Package storage is the sqlite backend. It persists the full household
// ledger and carries the month_summaries table the sync worker maintains.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"spendwise/internal/core"
	"spendwise/internal/ledger"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB

	now   func() time.Time
	newID func() string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:    db,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AddExpense implements store.ExpenseStore. The insert and the cash
// debit happen in one transaction.
func (r *SQLiteRepository) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return core.Expense{}, fmt.Errorf("encode tags: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Expense{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e.ID = r.newID()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO expenses (id, name, category, subcategory, tags, amount_paise, spent_on, method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Category, e.Subcategory, string(tags),
		e.Amount.Paise, e.Date.Format(dateLayout), string(e.Method))
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	if e.Method == core.PayCash {
		_, err = tx.ExecContext(ctx,
			`UPDATE cash_balance SET current_paise = current_paise - ? WHERE id = 1`,
			e.Amount.Paise)
		if err != nil {
			return core.Expense{}, fmt.Errorf("debit cash balance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return core.Expense{}, fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", e.ID,
		"name", e.Name,
		"amount_paise", e.Amount.Paise,
		"method", e.Method)

	return e, nil
}

// Expenses implements store.ExpenseStore, newest insert first.
func (r *SQLiteRepository) Expenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, subcategory, tags, amount_paise, spent_on, method
		FROM expenses ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanExpense(rows *sql.Rows) (core.Expense, error) {
	var (
		e       core.Expense
		tags    string
		spentOn string
		method  string
	)
	if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Subcategory, &tags,
		&e.Amount.Paise, &spentOn, &method); err != nil {
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return core.Expense{}, fmt.Errorf("decode tags: %w", err)
	}
	d, err := time.Parse(dateLayout, spentOn)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse spent_on: %w", err)
	}
	e.Date = core.Date{Time: d}
	e.Method = core.PaymentMethod(method)
	return e, nil
}

func (r *SQLiteRepository) AddSubscription(ctx context.Context, s core.Subscription) (core.Subscription, error) {
	if err := s.Validate(); err != nil {
		return core.Subscription{}, err
	}
	s.ID = r.newID()
	s.Status = core.StatusActive
	s.CreatedAt = r.now()

	renewal := ""
	if !s.NextRenewal.IsZero() {
		renewal = s.NextRenewal.Format(dateLayout)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, category, subcategory, amount_paise, cycle,
			next_renewal, auto_pay, status, created_at, payment_source, usage_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Category, s.Subcategory, s.Amount.Paise, string(s.Cycle),
		renewal, s.AutoPay, string(s.Status), s.CreatedAt.Format(time.RFC3339),
		s.PaymentSource, s.UsageScore)
	if err != nil {
		return core.Subscription{}, fmt.Errorf("insert subscription: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) Subscriptions(ctx context.Context) ([]core.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, subcategory, amount_paise, cycle, next_renewal,
			auto_pay, status, created_at, payment_source, usage_score
		FROM subscriptions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var out []core.Subscription
	for rows.Next() {
		var (
			s         core.Subscription
			cycle     string
			renewal   string
			status    string
			createdAt string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Subcategory, &s.Amount.Paise,
			&cycle, &renewal, &s.AutoPay, &status, &createdAt, &s.PaymentSource, &s.UsageScore); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		s.Cycle = core.BillingCycle(cycle)
		s.Status = core.SubscriptionStatus(status)
		if renewal != "" {
			d, err := time.Parse(dateLayout, renewal)
			if err != nil {
				return nil, fmt.Errorf("parse next_renewal: %w", err)
			}
			s.NextRenewal = core.Date{Time: d}
		}
		if createdAt != "" {
			t, err := time.Parse(time.RFC3339, createdAt)
			if err != nil {
				return nil, fmt.Errorf("parse created_at: %w", err)
			}
			s.CreatedAt = t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CancelSubscription(ctx context.Context, id string) (core.Subscription, error) {
	return r.setSubscriptionStatus(ctx, id, core.StatusCancelled)
}

func (r *SQLiteRepository) RenewSubscription(ctx context.Context, id string) (core.Subscription, error) {
	return r.setSubscriptionStatus(ctx, id, core.StatusActive)
}

func (r *SQLiteRepository) setSubscriptionStatus(ctx context.Context, id string, status core.SubscriptionStatus) (core.Subscription, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return core.Subscription{}, fmt.Errorf("update subscription status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Subscription{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.Subscription{}, fmt.Errorf("subscription %q: %w", id, core.ErrUnknownEntity)
	}
	subs, err := r.Subscriptions(ctx)
	if err != nil {
		return core.Subscription{}, err
	}
	for _, s := range subs {
		if s.ID == id {
			return s, nil
		}
	}
	return core.Subscription{}, fmt.Errorf("subscription %q: %w", id, core.ErrUnknownEntity)
}

// UpdateRenewal moves a subscription's next renewal date. Used by the
// worker's renewal sweep.
func (r *SQLiteRepository) UpdateRenewal(ctx context.Context, id string, next core.Date) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET next_renewal = ? WHERE id = ?`,
		next.Format(dateLayout), id)
	if err != nil {
		return fmt.Errorf("update renewal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("subscription %q: %w", id, core.ErrUnknownEntity)
	}
	return nil
}

func (r *SQLiteRepository) Friends(ctx context.Context) ([]core.Friend, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, balance_paise FROM friends ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	defer rows.Close()

	var out []core.Friend
	for rows.Next() {
		var f core.Friend
		if err := rows.Scan(&f.ID, &f.Name, &f.Balance.Paise); err != nil {
			return nil, fmt.Errorf("scan friend: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// AddFriend registers a friend with a zero starting balance.
func (r *SQLiteRepository) AddFriend(ctx context.Context, name string) (core.Friend, error) {
	if strings.TrimSpace(name) == "" {
		return core.Friend{}, core.ErrEmptyName
	}
	f := core.Friend{ID: r.newID(), Name: name}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO friends (id, name, balance_paise) VALUES (?, ?, 0)`, f.ID, f.Name); err != nil {
		return core.Friend{}, fmt.Errorf("insert friend: %w", err)
	}
	return f, nil
}

func (r *SQLiteRepository) SharedExpenses(ctx context.Context) ([]core.SharedExpense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, amount_paise, paid_by, spent_on, involved_friends
		FROM shared_expenses ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list shared expenses: %w", err)
	}
	defer rows.Close()

	var out []core.SharedExpense
	for rows.Next() {
		var (
			e        core.SharedExpense
			spentOn  string
			involved string
		)
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount.Paise, &e.PaidBy, &spentOn, &involved); err != nil {
			return nil, fmt.Errorf("scan shared expense: %w", err)
		}
		d, err := time.Parse(dateLayout, spentOn)
		if err != nil {
			return nil, fmt.Errorf("parse spent_on: %w", err)
		}
		e.Date = core.Date{Time: d}
		if err := json.Unmarshal([]byte(involved), &e.InvolvedFriends); err != nil {
			return nil, fmt.Errorf("decode involved_friends: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RecordSharedExpense validates the split against the friend roster,
// then applies every balance delta and the insert in one transaction.
func (r *SQLiteRepository) RecordSharedExpense(ctx context.Context, e core.SharedExpense) (core.SharedExpense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.SharedExpense{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id FROM friends`)
	if err != nil {
		return core.SharedExpense{}, fmt.Errorf("list friend ids: %w", err)
	}
	known := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return core.SharedExpense{}, fmt.Errorf("scan friend id: %w", err)
		}
		known[id] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return core.SharedExpense{}, err
	}
	rows.Close()

	deltas, err := ledger.Deltas(e, known)
	if err != nil {
		return core.SharedExpense{}, err
	}

	e.ID = r.newID()
	involved, err := json.Marshal(e.InvolvedFriends)
	if err != nil {
		return core.SharedExpense{}, fmt.Errorf("encode involved_friends: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO shared_expenses (id, description, amount_paise, paid_by, spent_on, involved_friends)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Description, e.Amount.Paise, e.PaidBy, e.Date.Format(dateLayout), string(involved))
	if err != nil {
		return core.SharedExpense{}, fmt.Errorf("insert shared expense: %w", err)
	}

	for id, d := range deltas {
		if _, err := tx.ExecContext(ctx,
			`UPDATE friends SET balance_paise = balance_paise + ? WHERE id = ?`, d, id); err != nil {
			return core.SharedExpense{}, fmt.Errorf("apply balance delta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return core.SharedExpense{}, fmt.Errorf("commit: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) Settlements(ctx context.Context) ([]core.Settlement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, friend_id, from_id, to_id, amount_paise, settled_at, note
		FROM settlements ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	defer rows.Close()

	var out []core.Settlement
	for rows.Next() {
		var (
			s         core.Settlement
			settledAt string
		)
		if err := rows.Scan(&s.ID, &s.FriendID, &s.FromID, &s.ToID, &s.Amount.Paise, &settledAt, &s.Note); err != nil {
			return nil, fmt.Errorf("scan settlement: %w", err)
		}
		t, err := time.Parse(time.RFC3339, settledAt)
		if err != nil {
			return nil, fmt.Errorf("parse settled_at: %w", err)
		}
		s.SettledAt = t
		out = append(out, s)
	}
	return out, rows.Err()
}

// Settle reads the friend's balance, writes the settlement record, and
// zeroes the balance in one transaction. Zero balances settle to nil.
func (r *SQLiteRepository) Settle(ctx context.Context, friendID string) (*core.Settlement, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var f core.Friend
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, balance_paise FROM friends WHERE id = ?`, friendID).
		Scan(&f.ID, &f.Name, &f.Balance.Paise)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("friend %q: %w", friendID, core.ErrUnknownEntity)
	}
	if err != nil {
		return nil, fmt.Errorf("load friend: %w", err)
	}

	settlement := ledger.NewSettlement(f, r.now())
	if settlement == nil {
		return nil, nil
	}
	settlement.ID = r.newID()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO settlements (id, friend_id, from_id, to_id, amount_paise, settled_at, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.FriendID, settlement.FromID, settlement.ToID,
		settlement.Amount.Paise, settlement.SettledAt.Format(time.RFC3339), settlement.Note)
	if err != nil {
		return nil, fmt.Errorf("insert settlement: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE friends SET balance_paise = 0 WHERE id = ?`, friendID); err != nil {
		return nil, fmt.Errorf("zero balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return settlement, nil
}

func (r *SQLiteRepository) EMIs(ctx context.Context) ([]core.EMI, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, monthly_amount_paise, due_date FROM emis ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list emis: %w", err)
	}
	defer rows.Close()

	var out []core.EMI
	for rows.Next() {
		var (
			e   core.EMI
			due string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.MonthlyAmount.Paise, &due); err != nil {
			return nil, fmt.Errorf("scan emi: %w", err)
		}
		d, err := time.Parse(dateLayout, due)
		if err != nil {
			return nil, fmt.Errorf("parse due_date: %w", err)
		}
		e.DueDate = core.Date{Time: d}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Goals(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, target_amount_paise, period, current_progress_paise FROM goals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var out []core.Goal
	for rows.Next() {
		var (
			g     core.Goal
			gtype string
		)
		if err := rows.Scan(&g.ID, &gtype, &g.TargetAmount.Paise, &g.Period, &g.CurrentProgress.Paise); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g.Type = core.GoalType(gtype)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateGoalTarget(ctx context.Context, id string, target core.Money) (core.Goal, error) {
	if err := target.Validate(); err != nil {
		return core.Goal{}, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET target_amount_paise = ? WHERE id = ?`, target.Paise, id)
	if err != nil {
		return core.Goal{}, fmt.Errorf("update goal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Goal{}, fmt.Errorf("goal %q: %w", id, core.ErrUnknownEntity)
	}
	goals, err := r.Goals(ctx)
	if err != nil {
		return core.Goal{}, err
	}
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
	}
	return core.Goal{}, fmt.Errorf("goal %q: %w", id, core.ErrUnknownEntity)
}

func (r *SQLiteRepository) BankAccounts(ctx context.Context) ([]core.BankAccount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, bank_name, account_type, balance_paise, last_four FROM bank_accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var out []core.BankAccount
	for rows.Next() {
		var b core.BankAccount
		if err := rows.Scan(&b.ID, &b.BankName, &b.AccountType, &b.Balance.Paise, &b.LastFour); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CashBalance(ctx context.Context) (core.CashBalance, error) {
	var c core.CashBalance
	err := r.db.QueryRowContext(ctx,
		`SELECT opening_paise, current_paise FROM cash_balance WHERE id = 1`).
		Scan(&c.Opening.Paise, &c.Current.Paise)
	if err != nil {
		return core.CashBalance{}, fmt.Errorf("load cash balance: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) SetCashBalance(ctx context.Context, current core.Money) (core.CashBalance, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE cash_balance SET current_paise = ? WHERE id = 1`, current.Paise); err != nil {
		return core.CashBalance{}, fmt.Errorf("set cash balance: %w", err)
	}
	return r.CashBalance(ctx)
}

// ExpenseByID loads a single expense with its sync flag.
func (r *SQLiteRepository) ExpenseByID(ctx context.Context, id string) (core.Expense, bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, subcategory, tags, amount_paise, spent_on, method, synced
		FROM expenses WHERE id = ?`, id)
	if err != nil {
		return core.Expense{}, false, fmt.Errorf("load expense: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return core.Expense{}, false, err
		}
		return core.Expense{}, false, fmt.Errorf("expense %q: %w", id, core.ErrUnknownEntity)
	}

	var (
		e       core.Expense
		tags    string
		spentOn string
		method  string
		synced  bool
	)
	if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Subcategory, &tags,
		&e.Amount.Paise, &spentOn, &method, &synced); err != nil {
		return core.Expense{}, false, fmt.Errorf("scan expense: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return core.Expense{}, false, fmt.Errorf("decode tags: %w", err)
	}
	d, err := time.Parse(dateLayout, spentOn)
	if err != nil {
		return core.Expense{}, false, fmt.Errorf("parse spent_on: %w", err)
	}
	e.Date = core.Date{Time: d}
	e.Method = core.PaymentMethod(method)
	return e, synced, nil
}

// UnsyncedExpenses returns up to limit expenses the worker has not yet
// folded into month_summaries, oldest first.
func (r *SQLiteRepository) UnsyncedExpenses(ctx context.Context, limit int) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, subcategory, tags, amount_paise, spent_on, method
		FROM expenses WHERE synced = 0 ORDER BY seq LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list unsynced expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// MarkExpenseSynced flags an expense as folded into month_summaries.
func (r *SQLiteRepository) MarkExpenseSynced(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense %q: %w", id, core.ErrUnknownEntity)
	}
	return nil
}

// AddToMonthSummary accumulates paise into the (year, month) rollup row.
func (r *SQLiteRepository) AddToMonthSummary(ctx context.Context, year int, month time.Month, paise int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO month_summaries (year, month, total_paise, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (year, month)
		DO UPDATE SET total_paise = total_paise + excluded.total_paise, updated_at = excluded.updated_at`,
		year, int(month), paise, r.now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert month summary: %w", err)
	}
	return nil
}

// MonthSummary returns the precomputed total for a month, zero when the
// worker has not written the row yet.
func (r *SQLiteRepository) MonthSummary(ctx context.Context, year int, month time.Month) (core.Money, error) {
	var paise int64
	err := r.db.QueryRowContext(ctx,
		`SELECT total_paise FROM month_summaries WHERE year = ? AND month = ?`,
		year, int(month)).Scan(&paise)
	if err == sql.ErrNoRows {
		return core.Money{}, nil
	}
	if err != nil {
		return core.Money{}, fmt.Errorf("load month summary: %w", err)
	}
	return core.Money{Paise: paise}, nil
}

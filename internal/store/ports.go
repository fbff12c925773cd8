// Package store defines the outbound ports the HTTP layer and services
// depend on. Adapters (in-memory state, sqlite) implement these.
package store

import (
	"context"

	"spendwise/internal/core"
)

type (
	ExpenseStore interface {
		// AddExpense validates, assigns an id, and records the expense.
		// Cash expenses also debit the tracked cash balance.
		AddExpense(ctx context.Context, e core.Expense) (core.Expense, error)
		// Expenses returns the expense ledger, most recent first.
		Expenses(ctx context.Context) ([]core.Expense, error)
	}

	SubscriptionStore interface {
		AddSubscription(ctx context.Context, s core.Subscription) (core.Subscription, error)
		Subscriptions(ctx context.Context) ([]core.Subscription, error)
		// CancelSubscription moves a subscription to cancelled. Cancelling
		// an already-cancelled subscription is a no-op.
		CancelSubscription(ctx context.Context, id string) (core.Subscription, error)
		// RenewSubscription moves a cancelled subscription back to active.
		RenewSubscription(ctx context.Context, id string) (core.Subscription, error)
	}

	// LedgerStore is the shared-expense ledger between the user and their
	// friends. RecordSharedExpense must be atomic: either every balance
	// delta applies and the expense is recorded, or nothing changes.
	LedgerStore interface {
		Friends(ctx context.Context) ([]core.Friend, error)
		// AddFriend registers a friend with a zero starting balance.
		AddFriend(ctx context.Context, name string) (core.Friend, error)
		SharedExpenses(ctx context.Context) ([]core.SharedExpense, error)
		Settlements(ctx context.Context) ([]core.Settlement, error)
		RecordSharedExpense(ctx context.Context, e core.SharedExpense) (core.SharedExpense, error)
		// Settle resolves a friend's balance to zero and appends an
		// auditable settlement record. Returns nil for an already-settled
		// friend (no record is written).
		Settle(ctx context.Context, friendID string) (*core.Settlement, error)
	}

	PlannerStore interface {
		EMIs(ctx context.Context) ([]core.EMI, error)
		Goals(ctx context.Context) ([]core.Goal, error)
		UpdateGoalTarget(ctx context.Context, id string, target core.Money) (core.Goal, error)
		BankAccounts(ctx context.Context) ([]core.BankAccount, error)
		CashBalance(ctx context.Context) (core.CashBalance, error)
		SetCashBalance(ctx context.Context, current core.Money) (core.CashBalance, error)
	}

	// Store is the full persistence surface a backend must provide.
	Store interface {
		ExpenseStore
		SubscriptionStore
		LedgerStore
		PlannerStore
	}
)

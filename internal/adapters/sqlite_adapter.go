// Package adapters composes storage and services into the store.Store
// surface the HTTP layer consumes.
package adapters

import (
	"context"

	"spendwise/internal/core"
	"spendwise/internal/services"
	"spendwise/internal/storage"
	"spendwise/internal/store"
)

// SQLiteAdapter routes expense writes through the expense service so
// the sync notification fires, and everything else straight to the
// repository.
type SQLiteAdapter struct {
	*storage.SQLiteRepository
	expenses *services.ExpenseService
}

var _ store.Store = (*SQLiteAdapter)(nil)

func NewSQLiteAdapter(repo *storage.SQLiteRepository, expenses *services.ExpenseService) *SQLiteAdapter {
	return &SQLiteAdapter{
		SQLiteRepository: repo,
		expenses:         expenses,
	}
}

func (a *SQLiteAdapter) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	return a.expenses.CreateExpense(ctx, e)
}

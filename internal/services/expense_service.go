// Package services provides business logic and orchestration on top of
// the storage ports.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"spendwise/internal/core"
	"spendwise/internal/store"
)

// Publisher is the outbound notification port. Satisfied by the AMQP
// client; nil means notifications are disabled.
type Publisher interface {
	PublishExpenseSaved(ctx context.Context, id string) error
}

// ExpenseService saves expenses locally and notifies the sync worker.
type ExpenseService struct {
	store     store.Store
	publisher Publisher
}

func NewExpenseService(st store.Store, publisher Publisher) *ExpenseService {
	return &ExpenseService{
		store:     st,
		publisher: publisher,
	}
}

// CreateExpense saves the expense first, then publishes the sync
// notification. A publish failure never fails the request; the worker's
// pending sweep picks the expense up later.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	saved, err := s.store.AddExpense(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	if s.publisher == nil {
		slog.WarnContext(ctx, "Publisher not available, skipping sync message")
		return saved, nil
	}
	if err := s.publisher.PublishExpenseSaved(ctx, saved.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"id", saved.ID, "error", err)
	}
	return saved, nil
}

// Close releases the store and publisher when they hold resources.
func (s *ExpenseService) Close() error {
	var errs []error
	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}
	if c, ok := s.publisher.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}
	return nil
}

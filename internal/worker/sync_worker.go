// Package worker folds saved expenses into the month_summaries rollup
// and keeps subscription renewal dates moving forward.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spendwise/internal/amqp"
	"spendwise/internal/core"
	"spendwise/internal/services"
	"spendwise/internal/storage"
)

// SyncWorker consumes saved-expense notifications and maintains the
// precomputed monthly totals. The periodic pending sweep is the backup
// for lost AMQP messages.
type SyncWorker struct {
	storage   *storage.SQLiteRepository
	batchSize int
}

func NewSyncWorker(storage *storage.SQLiteRepository, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   storage,
		batchSize: batchSize,
	}
}

// HandleSavedMessage processes a single saved-expense message.
// Already-synced and deleted expenses are skipped without error so
// redeliveries stay harmless.
func (w *SyncWorker) HandleSavedMessage(ctx context.Context, msg *amqp.ExpenseSavedMessage) error {
	slog.InfoContext(ctx, "Processing saved-expense message", "id", msg.ID)

	expense, synced, err := w.storage.ExpenseByID(ctx, msg.ID)
	if errors.Is(err, core.ErrUnknownEntity) {
		slog.WarnContext(ctx, "Expense in message no longer exists", "id", msg.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get expense from storage: %w", err)
	}
	if synced {
		slog.InfoContext(ctx, "Expense already synced, skipping", "id", msg.ID)
		return nil
	}

	return w.fold(ctx, expense)
}

func (w *SyncWorker) fold(ctx context.Context, e core.Expense) error {
	if err := w.storage.AddToMonthSummary(ctx, e.Date.Year(), e.Date.Month(), e.Amount.Paise); err != nil {
		return fmt.Errorf("fold into month summary: %w", err)
	}
	if err := w.storage.MarkExpenseSynced(ctx, e.ID); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	slog.InfoContext(ctx, "Folded expense into month summary",
		"id", e.ID,
		"year", e.Date.Year(),
		"month", int(e.Date.Month()),
		"amount_paise", e.Amount.Paise)
	return nil
}

// ProcessPendingExpenses folds any expenses that haven't been synced
// yet. This is a backup mechanism in case AMQP messages are lost.
func (w *SyncWorker) ProcessPendingExpenses(ctx context.Context) error {
	pending, err := w.storage.UnsyncedExpenses(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending expenses: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending expenses", "count", len(pending))

	for _, e := range pending {
		if err := w.fold(ctx, e); err != nil {
			slog.ErrorContext(ctx, "Failed to fold expense", "id", e.ID, "error", err)
			continue
		}
	}
	return nil
}

// RenewalSweep advances the renewal date of every lapsed active
// subscription past now.
func (w *SyncWorker) RenewalSweep(ctx context.Context, now time.Time) error {
	subs, err := w.storage.Subscriptions(ctx)
	if err != nil {
		return fmt.Errorf("list subscriptions: %w", err)
	}

	for _, s := range services.DueSubscriptions(subs, now) {
		next, err := services.AdvancePastDue(s, now)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to compute next renewal", "id", s.ID, "error", err)
			continue
		}
		if err := w.storage.UpdateRenewal(ctx, s.ID, next); err != nil {
			slog.ErrorContext(ctx, "Failed to update renewal", "id", s.ID, "error", err)
			continue
		}
		slog.InfoContext(ctx, "Advanced subscription renewal",
			"id", s.ID,
			"name", s.Name,
			"next_renewal", next.Format("2006-01-02"))
	}
	return nil
}

// Run executes the periodic sweeps until ctx ends. An immediate pass
// runs on startup to recover from downtime.
func (w *SyncWorker) Run(ctx context.Context, interval time.Duration) error {
	if err := w.ProcessPendingExpenses(ctx); err != nil {
		slog.ErrorContext(ctx, "Startup pending sweep failed", "error", err)
	}
	if err := w.RenewalSweep(ctx, time.Now()); err != nil {
		slog.ErrorContext(ctx, "Startup renewal sweep failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.ProcessPendingExpenses(ctx); err != nil {
				slog.ErrorContext(ctx, "Pending sweep failed", "error", err)
			}
			if err := w.RenewalSweep(ctx, time.Now()); err != nil {
				slog.ErrorContext(ctx, "Renewal sweep failed", "error", err)
			}
		}
	}
}

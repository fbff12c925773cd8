// Package report produces category-bucketed and time-windowed spend totals
// for display. Every function is a pure computation over a snapshot: no
// state, no side effects, repeatable.
package report

import (
	"sort"
	"time"

	"spendwise/internal/core"
)

// CategoryTotal is one bucket of the category rollup.
type CategoryTotal struct {
	Category string
	Total    core.Money
}

// ByCategory buckets expenses and active subscriptions by category.
// Subscription amounts are normalized to monthly-equivalent paise before
// bucketing. Buckets are sorted descending by total; equal totals keep
// first-seen order, so the result is independent of permutations that
// preserve the first occurrence of each category.
func ByCategory(expenses []core.Expense, subs []core.Subscription) []CategoryTotal {
	totals := make(map[string]int64)
	order := make(map[string]int)
	next := 0
	add := func(category string, paise int64) {
		if _, ok := totals[category]; !ok {
			order[category] = next
			next++
		}
		totals[category] += paise
	}

	for _, e := range expenses {
		add(e.Category, e.Amount.Paise)
	}
	for _, s := range subs {
		if s.Status != core.StatusActive {
			continue
		}
		add(s.Category, core.MonthlyEquivalent(s.Amount, s.Cycle).Paise)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, CategoryTotal{Category: cat, Total: core.Money{Paise: total}})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total.Paise != out[j].Total.Paise {
			return out[i].Total.Paise > out[j].Total.Paise
		}
		return order[out[i].Category] < order[out[j].Category]
	})
	return out
}

// InWindow sums expense amounts with dates in [start, end).
func InWindow(expenses []core.Expense, start, end time.Time) core.Money {
	var total int64
	for _, e := range expenses {
		d := e.Date.Time
		if !d.Before(start) && d.Before(end) {
			total += e.Amount.Paise
		}
	}
	return core.Money{Paise: total}
}

// MonthTotal sums expenses for a calendar month, comparing year and month
// components only (not a rolling 30-day window).
func MonthTotal(expenses []core.Expense, year int, month time.Month) core.Money {
	var total int64
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			total += e.Amount.Paise
		}
	}
	return core.Money{Paise: total}
}

// TrailingTotal sums expenses in the inclusive rolling window
// [now-days, now], anchored at now.
func TrailingTotal(expenses []core.Expense, now time.Time, days int) core.Money {
	start := now.AddDate(0, 0, -days)
	var total int64
	for _, e := range expenses {
		d := e.Date.Time
		if !d.Before(start) && !d.After(now) {
			total += e.Amount.Paise
		}
	}
	return core.Money{Paise: total}
}

// DashboardStats is the rollup the dashboard hero cards display.
type DashboardStats struct {
	TotalMonthlySpend core.Money
	MonthlySubSpend   core.Money
	MonthlyEMISpend   core.Money
	MonthExpenseSpend core.Money
	WeeklySpend       core.Money
	TopCategories     []CategoryTotal
}

// Stats computes the dashboard rollup for the given instant: monthly
// subscription spend over active subscriptions, EMI load, calendar-month
// and trailing-7-day expense spend, and the top five category buckets.
func Stats(expenses []core.Expense, subs []core.Subscription, emis []core.EMI, now time.Time) DashboardStats {
	var stats DashboardStats
	for _, s := range subs {
		if s.Status != core.StatusActive {
			continue
		}
		stats.MonthlySubSpend.Paise += core.MonthlyEquivalent(s.Amount, s.Cycle).Paise
	}
	for _, e := range emis {
		stats.MonthlyEMISpend.Paise += e.MonthlyAmount.Paise
	}
	stats.MonthExpenseSpend = MonthTotal(expenses, now.Year(), now.Month())
	stats.WeeklySpend = TrailingTotal(expenses, now, 7)
	stats.TotalMonthlySpend = core.Money{
		Paise: stats.MonthlySubSpend.Paise + stats.MonthlyEMISpend.Paise + stats.MonthExpenseSpend.Paise,
	}

	top := ByCategory(expenses, subs)
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopCategories = top
	return stats
}

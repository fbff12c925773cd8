package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spendwise/internal/core"
	"spendwise/internal/ledger"
	"spendwise/internal/report"
	"spendwise/internal/store"
)

// Snapshot is the aggregate view the insight rules and the advisory
// prompt are computed from.
type Snapshot struct {
	Expenses      []core.Expense
	Subscriptions []core.Subscription
	EMIs          []core.EMI
	Goals         []core.Goal
	Friends       []core.Friend
	Cash          core.CashBalance
}

// BuildSnapshot loads everything the insight rules need in one place.
func BuildSnapshot(ctx context.Context, st store.Store) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Expenses, err = st.Expenses(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load expenses: %w", err)
	}
	if snap.Subscriptions, err = st.Subscriptions(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load subscriptions: %w", err)
	}
	if snap.EMIs, err = st.EMIs(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load emis: %w", err)
	}
	if snap.Goals, err = st.Goals(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load goals: %w", err)
	}
	if snap.Friends, err = st.Friends(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load friends: %w", err)
	}
	if snap.Cash, err = st.CashBalance(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("load cash balance: %w", err)
	}
	return snap, nil
}

// RuleInsights produces deterministic advisory insights from a
// snapshot. Always available, no external calls.
func RuleInsights(snap Snapshot, now time.Time) []core.Insight {
	var out []core.Insight

	monthSpend := report.MonthTotal(snap.Expenses, now.Year(), now.Month())
	if monthSpend.Paise > 0 {
		// A tenth of the month's discretionary spend is the savings nudge.
		estimate := core.Money{Paise: monthSpend.Paise / 10}
		out = append(out, core.Insight{
			Text: fmt.Sprintf("Based on your recent spending, you could save an estimated %s this month by reducing impulse purchases.", estimate),
			Type: "savings_suggestion",
			Metadata: map[string]any{
				"area": "spending_habits",
			},
		})
	}

	counts := map[string]int{}
	for _, s := range snap.Subscriptions {
		if s.Status == core.StatusActive {
			counts[s.Category]++
		}
	}
	for _, ct := range report.ByCategory(nil, snap.Subscriptions) {
		if n := counts[ct.Category]; n >= 2 {
			out = append(out, core.Insight{
				Text: fmt.Sprintf("You have %d subscriptions in the %q category. Consolidating them could save you money.", n, ct.Category),
				Type: "subscription_analysis",
				Metadata: map[string]any{
					"category": ct.Category,
					"count":    n,
				},
			})
		}
	}

	for _, s := range snap.Subscriptions {
		if s.Status == core.StatusActive && s.UsageScore > 0 && s.UsageScore < 20 {
			out = append(out, core.Insight{
				Text: fmt.Sprintf("You barely use %s (usage score %d). Cancelling it would free up %s per month.", s.Name, s.UsageScore, core.MonthlyEquivalent(s.Amount, s.Cycle)),
				Type: "usage_alert",
				Metadata: map[string]any{
					"subscription": s.Name,
					"usage_score":  s.UsageScore,
				},
			})
		}
	}

	if sum := ledger.Summarize(snap.Friends); sum.TotalOwed.Paise > 0 {
		out = append(out, core.Insight{
			Text: fmt.Sprintf("Friends owe you %s in total. Settling up would improve your cash position.", sum.TotalOwed),
			Type: "settlement_reminder",
			Metadata: map[string]any{
				"total_owed_paise": sum.TotalOwed.Paise,
			},
		})
	}

	return out
}

// ContextSummary renders the snapshot as plain text for the advisory
// prompt. Amounts only, no names of people other than friends the user
// already tracks.
func ContextSummary(snap Snapshot, now time.Time) string {
	var b strings.Builder
	stats := report.Stats(snap.Expenses, snap.Subscriptions, snap.EMIs, now)

	fmt.Fprintf(&b, "Monthly spend: %s (subscriptions %s, EMIs %s, expenses %s).\n",
		stats.TotalMonthlySpend, stats.MonthlySubSpend, stats.MonthlyEMISpend, stats.MonthExpenseSpend)
	fmt.Fprintf(&b, "Spend in the last 7 days: %s.\n", stats.WeeklySpend)
	if len(stats.TopCategories) > 0 {
		b.WriteString("Top categories:")
		for _, ct := range stats.TopCategories {
			fmt.Fprintf(&b, " %s %s;", ct.Category, ct.Total)
		}
		b.WriteString("\n")
	}

	active := 0
	for _, s := range snap.Subscriptions {
		if s.Status == core.StatusActive {
			active++
		}
	}
	fmt.Fprintf(&b, "Active subscriptions: %d of %d.\n", active, len(snap.Subscriptions))

	for _, g := range snap.Goals {
		fmt.Fprintf(&b, "Goal (%s, %s): target %s, progress %s.\n",
			g.Type, g.Period, g.TargetAmount, g.CurrentProgress)
	}

	sum := ledger.Summarize(snap.Friends)
	fmt.Fprintf(&b, "Shared ledger: owed %s, owing %s, net %s.\n",
		sum.TotalOwed, sum.TotalOwing, sum.Net)
	fmt.Fprintf(&b, "Cash in hand: %s.\n", snap.Cash.Current)

	return b.String()
}

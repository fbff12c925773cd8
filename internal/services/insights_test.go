package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"spendwise/internal/core"
	"spendwise/internal/state"
)

func TestRuleInsightsFromSeed(t *testing.T) {
	snap, err := BuildSnapshot(context.Background(), state.NewSeeded())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	now := time.Date(2024, 11, 6, 9, 0, 0, 0, time.UTC)

	insights := RuleInsights(snap, now)
	byType := map[string]core.Insight{}
	for _, in := range insights {
		byType[in.Type] = in
	}

	if _, ok := byType["savings_suggestion"]; !ok {
		t.Fatal("expected a savings suggestion for a month with spend")
	}

	// Seed has Netflix and Spotify active under Entertainment.
	sub, ok := byType["subscription_analysis"]
	if !ok {
		t.Fatal("expected subscription analysis")
	}
	if sub.Metadata["category"] != "Entertainment" || sub.Metadata["count"] != 2 {
		t.Fatalf("unexpected metadata %v", sub.Metadata)
	}

	// Adobe Creative Cloud sits at usage score 12.
	usage, ok := byType["usage_alert"]
	if !ok {
		t.Fatal("expected usage alert for low-usage subscription")
	}
	if !strings.Contains(usage.Text, "Adobe Creative Cloud") {
		t.Fatalf("unexpected usage alert: %s", usage.Text)
	}

	// Varun owes ₹1250.
	settle, ok := byType["settlement_reminder"]
	if !ok {
		t.Fatal("expected settlement reminder")
	}
	if settle.Metadata["total_owed_paise"] != int64(125000) {
		t.Fatalf("unexpected metadata %v", settle.Metadata)
	}
}

func TestRuleInsightsEmptySnapshot(t *testing.T) {
	insights := RuleInsights(Snapshot{}, time.Now())
	if len(insights) != 0 {
		t.Fatalf("expected no insights for empty snapshot, got %+v", insights)
	}
}

func TestContextSummaryMentionsKeyFigures(t *testing.T) {
	snap, err := BuildSnapshot(context.Background(), state.NewSeeded())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	now := time.Date(2024, 11, 6, 9, 0, 0, 0, time.UTC)

	summary := ContextSummary(snap, now)
	for _, want := range []string{
		"Monthly spend",
		"Active subscriptions: 5 of 7",
		"Goal (savings, monthly)",
		"Cash in hand",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

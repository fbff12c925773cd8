// This file implements the Strategy Pattern for subscription renewal
// scheduling. Each billing cycle has its own advancer that encapsulates
// how the next renewal date moves forward.

package services

import (
	"fmt"
	"time"

	"spendwise/internal/core"
)

// RenewalAdvancer is the strategy interface for moving a subscription's
// renewal date to the next occurrence.
type RenewalAdvancer interface {
	// Next returns the renewal date that follows the given one.
	Next(after core.Date) core.Date
}

// MonthlyAdvancer implements RenewalAdvancer for monthly subscriptions.
type MonthlyAdvancer struct{}

func (MonthlyAdvancer) Next(after core.Date) core.Date {
	return core.Date{Time: after.AddDate(0, 1, 0)}
}

// YearlyAdvancer implements RenewalAdvancer for yearly subscriptions.
type YearlyAdvancer struct{}

func (YearlyAdvancer) Next(after core.Date) core.Date {
	return core.Date{Time: after.AddDate(1, 0, 0)}
}

// renewalStrategies maps billing cycles to their advancers.
var renewalStrategies = map[core.BillingCycle]RenewalAdvancer{
	core.Monthly: MonthlyAdvancer{},
	core.Yearly:  YearlyAdvancer{},
}

// GetRenewalAdvancer returns the advancer for a billing cycle.
func GetRenewalAdvancer(cycle core.BillingCycle) (RenewalAdvancer, error) {
	advancer, ok := renewalStrategies[cycle]
	if !ok {
		return nil, fmt.Errorf("no renewal advancer for cycle %q", cycle)
	}
	return advancer, nil
}

// DueSubscriptions returns the active subscriptions whose renewal date
// is on or before now. Subscriptions without a renewal date are skipped.
func DueSubscriptions(subs []core.Subscription, now time.Time) []core.Subscription {
	var due []core.Subscription
	for _, s := range subs {
		if s.Status != core.StatusActive || s.NextRenewal.IsZero() {
			continue
		}
		if !s.NextRenewal.After(now) {
			due = append(due, s)
		}
	}
	return due
}

// AdvancePastDue returns the first renewal date strictly after now,
// stepping the cycle forward as many times as needed. A subscription
// that lapsed several cycles ago lands on the next future date, not on
// a stale intermediate one.
func AdvancePastDue(s core.Subscription, now time.Time) (core.Date, error) {
	advancer, err := GetRenewalAdvancer(s.Cycle)
	if err != nil {
		return core.Date{}, err
	}
	next := s.NextRenewal
	for !next.After(now) {
		next = advancer.Next(next)
	}
	return next, nil
}

// Package ledger implements the shared-expense friend ledger: equal splits
// with deterministic paise allocation, conservation-checked balance deltas,
// and auditable settlements.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"spendwise/internal/core"
)

// ErrInvalidSplit is the sentinel wrapped by every InvalidSplitError.
var ErrInvalidSplit = errors.New("invalid split")

// InvalidSplitError reports a shared expense that failed validation.
// No state is mutated when it is returned.
type InvalidSplitError struct {
	Reason string
}

func (e *InvalidSplitError) Error() string {
	return fmt.Sprintf("invalid split: %s", e.Reason)
}

func (e *InvalidSplitError) Unwrap() error { return ErrInvalidSplit }

func invalidSplit(format string, args ...any) error {
	return &InvalidSplitError{Reason: fmt.Sprintf(format, args...)}
}

// Split divides amountPaise equally across n participants using
// largest-remainder allocation: every share is amount/n, and the first
// amount%n participants receive one extra paisa. Shares always sum to
// exactly amountPaise.
func Split(amountPaise int64, n int) []int64 {
	shares := make([]int64, n)
	base := amountPaise / int64(n)
	rem := amountPaise % int64(n)
	for i := range shares {
		shares[i] = base
		if int64(i) < rem {
			shares[i]++
		}
	}
	return shares
}

// Validate checks a shared expense against the friend set without touching
// any balances. Returns an *InvalidSplitError on the first violation.
func Validate(exp core.SharedExpense, friendIDs map[string]bool) error {
	if exp.Amount.Paise <= 0 {
		return invalidSplit("amount must be positive, got %d paise", exp.Amount.Paise)
	}
	if len(exp.InvolvedFriends) == 0 {
		return invalidSplit("no participants involved")
	}
	if exp.PaidBy != core.SelfID && !friendIDs[exp.PaidBy] {
		return invalidSplit("unknown payer %q", exp.PaidBy)
	}
	seen := make(map[string]bool, len(exp.InvolvedFriends))
	for _, id := range exp.InvolvedFriends {
		if id == exp.PaidBy {
			return invalidSplit("payer %q repeated in participants", id)
		}
		if seen[id] {
			return invalidSplit("duplicate participant %q", id)
		}
		seen[id] = true
		if id != core.SelfID && !friendIDs[id] {
			return invalidSplit("unknown friend %q", id)
		}
	}
	return nil
}

// Deltas computes the per-friend balance adjustments for a validated shared
// expense. Shares are allocated payer-first, then involved participants in
// input order.
//
// When the user pays, each involved friend owes their share. When a friend
// pays, that friend is credited the shares owed by everyone else and each
// other involved friend is debited theirs; the user's own share stays
// implicit in the payer's credit. The deltas plus the user's implicit
// position always net to zero.
func Deltas(exp core.SharedExpense, friendIDs map[string]bool) (map[string]int64, error) {
	if err := Validate(exp, friendIDs); err != nil {
		return nil, err
	}

	n := len(exp.InvolvedFriends) + 1
	shares := Split(exp.Amount.Paise, n)
	payerShare, rest := shares[0], shares[1:]

	deltas := make(map[string]int64, n)
	if exp.PaidBy == core.SelfID {
		for i, id := range exp.InvolvedFriends {
			deltas[id] += rest[i]
		}
		return deltas, nil
	}

	deltas[exp.PaidBy] -= exp.Amount.Paise - payerShare
	for i, id := range exp.InvolvedFriends {
		if id == core.SelfID {
			continue
		}
		deltas[id] += rest[i]
	}
	return deltas, nil
}

// UserDelta returns the balancing entry for the expense: the negated
// sum of the friend deltas, negative when the split increases what the
// user is owed. Sum of friend deltas plus UserDelta is always zero.
func UserDelta(deltas map[string]int64) int64 {
	var sum int64
	for _, d := range deltas {
		sum += d
	}
	return -sum
}

// NewSettlement builds the audit record for zeroing a friend's balance.
// Returns nil for an already-settled friend: settling zero is a no-op.
func NewSettlement(f core.Friend, now time.Time) *core.Settlement {
	if f.Balance.Paise == 0 {
		return nil
	}
	s := &core.Settlement{
		FriendID:  f.ID,
		Amount:    core.Money{Paise: f.Balance.Paise},
		SettledAt: now,
	}
	if f.Balance.Paise > 0 {
		s.FromID = f.ID
		s.ToID = core.SelfID
	} else {
		s.FromID = core.SelfID
		s.ToID = f.ID
		s.Amount.Paise = -s.Amount.Paise
	}
	return s
}

// BalanceSummary is the display rollup over all friend balances.
type BalanceSummary struct {
	Net        core.Money // sum of all balances; positive = owed to the user overall
	TotalOwed  core.Money // total others owe the user
	TotalOwing core.Money // total the user owes others
}

// Summarize folds the friend set into a net balance with owed/owing split.
func Summarize(friends []core.Friend) BalanceSummary {
	var s BalanceSummary
	for _, f := range friends {
		s.Net.Paise += f.Balance.Paise
		if f.Balance.Paise > 0 {
			s.TotalOwed.Paise += f.Balance.Paise
		} else {
			s.TotalOwing.Paise -= f.Balance.Paise
		}
	}
	return s
}

// Package state is the in-memory backend. It keeps everything behind a
// single mutex and is the default when no database is configured.
package state

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"spendwise/internal/core"
	"spendwise/internal/ledger"
)

type Store struct {
	mu            sync.Mutex
	expenses      []core.Expense
	subscriptions []core.Subscription
	friends       []core.Friend
	shared        []core.SharedExpense
	settlements   []core.Settlement
	emis          []core.EMI
	goals         []core.Goal
	banks         []core.BankAccount
	cash          core.CashBalance

	now   func() time.Time
	newID func() string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// AddExpense records a validated expense at the head of the ledger.
// Cash expenses debit the tracked cash balance in the same critical
// section, so callers never observe one without the other.
func (s *Store) AddExpense(_ context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.newID()
	s.expenses = append([]core.Expense{e}, s.expenses...)
	if e.Method == core.PayCash {
		s.cash.Current.Paise -= e.Amount.Paise
	}
	return e, nil
}

func (s *Store) Expenses(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...), nil
}

func (s *Store) AddSubscription(_ context.Context, sub core.Subscription) (core.Subscription, error) {
	if err := sub.Validate(); err != nil {
		return core.Subscription{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.ID = s.newID()
	sub.Status = core.StatusActive
	sub.CreatedAt = s.now()
	s.subscriptions = append(s.subscriptions, sub)
	return sub, nil
}

func (s *Store) Subscriptions(_ context.Context) ([]core.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Subscription(nil), s.subscriptions...), nil
}

func (s *Store) CancelSubscription(_ context.Context, id string) (core.Subscription, error) {
	return s.setSubscriptionStatus(id, core.StatusCancelled)
}

func (s *Store) RenewSubscription(_ context.Context, id string) (core.Subscription, error) {
	return s.setSubscriptionStatus(id, core.StatusActive)
}

func (s *Store) setSubscriptionStatus(id string, status core.SubscriptionStatus) (core.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subscriptions {
		if s.subscriptions[i].ID == id {
			s.subscriptions[i].Status = status
			return s.subscriptions[i], nil
		}
	}
	return core.Subscription{}, fmt.Errorf("subscription %q: %w", id, core.ErrUnknownEntity)
}

func (s *Store) Friends(_ context.Context) ([]core.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Friend(nil), s.friends...), nil
}

// AddFriend registers a friend with a zero starting balance.
func (s *Store) AddFriend(_ context.Context, name string) (core.Friend, error) {
	if strings.TrimSpace(name) == "" {
		return core.Friend{}, core.ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f := core.Friend{ID: s.newID(), Name: name}
	s.friends = append(s.friends, f)
	return f, nil
}

func (s *Store) SharedExpenses(_ context.Context) ([]core.SharedExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.SharedExpense(nil), s.shared...), nil
}

func (s *Store) Settlements(_ context.Context) ([]core.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Settlement(nil), s.settlements...), nil
}

// RecordSharedExpense computes balance deltas up front and only then
// mutates, so a rejected split leaves every balance untouched.
func (s *Store) RecordSharedExpense(_ context.Context, e core.SharedExpense) (core.SharedExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]bool, len(s.friends))
	for _, f := range s.friends {
		known[f.ID] = true
	}
	deltas, err := ledger.Deltas(e, known)
	if err != nil {
		return core.SharedExpense{}, err
	}

	e.ID = s.newID()
	e.InvolvedFriends = append([]string(nil), e.InvolvedFriends...)
	s.shared = append([]core.SharedExpense{e}, s.shared...)
	for i := range s.friends {
		if d, ok := deltas[s.friends[i].ID]; ok {
			s.friends[i].Balance.Paise += d
		}
	}
	return e, nil
}

// Settle zeroes a friend's balance and appends the settlement record in
// one step. A zero balance settles to nil with no record.
func (s *Store) Settle(_ context.Context, friendID string) (*core.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.friends {
		if s.friends[i].ID != friendID {
			continue
		}
		settlement := ledger.NewSettlement(s.friends[i], s.now())
		if settlement == nil {
			return nil, nil
		}
		settlement.ID = s.newID()
		s.friends[i].Balance = core.Money{}
		s.settlements = append([]core.Settlement{*settlement}, s.settlements...)
		return settlement, nil
	}
	return nil, fmt.Errorf("friend %q: %w", friendID, core.ErrUnknownEntity)
}

func (s *Store) EMIs(_ context.Context) ([]core.EMI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.EMI(nil), s.emis...), nil
}

func (s *Store) Goals(_ context.Context) ([]core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Goal(nil), s.goals...), nil
}

func (s *Store) UpdateGoalTarget(_ context.Context, id string, target core.Money) (core.Goal, error) {
	if err := target.Validate(); err != nil {
		return core.Goal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i].TargetAmount = target
			return s.goals[i], nil
		}
	}
	return core.Goal{}, fmt.Errorf("goal %q: %w", id, core.ErrUnknownEntity)
}

func (s *Store) BankAccounts(_ context.Context) ([]core.BankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.BankAccount(nil), s.banks...), nil
}

func (s *Store) CashBalance(_ context.Context) (core.CashBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cash, nil
}

func (s *Store) SetCashBalance(_ context.Context, current core.Money) (core.CashBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cash.Current = current
	return s.cash, nil
}

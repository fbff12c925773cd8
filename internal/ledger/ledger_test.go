package ledger

import (
	"errors"
	"testing"
	"time"

	"spendwise/internal/core"
)

var knownFriends = map[string]bool{"f1": true, "f2": true, "f3": true}

func TestSplitConservation(t *testing.T) {
	cases := []struct {
		amount int64
		n      int
	}{
		{300000, 3},
		{100000, 3}, // indivisible: 33334+33333+33333
		{1, 2},
		{99999, 7},
	}
	for i, tc := range cases {
		shares := Split(tc.amount, tc.n)
		if len(shares) != tc.n {
			t.Fatalf("case %d expected %d shares, got %d", i, tc.n, len(shares))
		}
		var sum int64
		for j, s := range shares {
			sum += s
			if j > 0 && s > shares[j-1] {
				t.Fatalf("case %d shares not allocated largest-first: %v", i, shares)
			}
		}
		if sum != tc.amount {
			t.Fatalf("case %d shares sum to %d, want %d", i, sum, tc.amount)
		}
	}
}

func TestDeltasUserPays(t *testing.T) {
	// User pays ₹3000 split among self + 2 friends: each friend owes ₹1000.
	exp := core.SharedExpense{
		Description:     "Dinner at Social",
		Amount:          core.Money{Paise: 300000},
		PaidBy:          core.SelfID,
		InvolvedFriends: []string{"f1", "f2"},
	}
	deltas, err := Deltas(exp, knownFriends)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deltas["f1"] != 100000 || deltas["f2"] != 100000 {
		t.Fatalf("expected each friend to owe 100000, got %v", deltas)
	}
	if UserDelta(deltas) != -200000 {
		t.Fatalf("expected user delta -200000, got %d", UserDelta(deltas))
	}
}

func TestDeltasFriendPaysWithUserInvolved(t *testing.T) {
	// f2 pays ₹900 for f1 and the user: three-way split of ₹300 each.
	exp := core.SharedExpense{
		Description:     "Movie Tickets",
		Amount:          core.Money{Paise: 90000},
		PaidBy:          "f2",
		InvolvedFriends: []string{"f1", core.SelfID},
	}
	deltas, err := Deltas(exp, knownFriends)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deltas["f2"] != -60000 {
		t.Fatalf("payer should be credited 60000, got %d", deltas["f2"])
	}
	if deltas["f1"] != 30000 {
		t.Fatalf("f1 should owe 30000, got %d", deltas["f1"])
	}
	// User owes their ₹300 share, carried implicitly.
	if UserDelta(deltas) != 30000 {
		t.Fatalf("expected user delta 30000, got %d", UserDelta(deltas))
	}
}

func TestDeltasClosedSplitAmongFriends(t *testing.T) {
	// Split not involving the user nets to zero across friends.
	exp := core.SharedExpense{
		Amount:          core.Money{Paise: 50000},
		PaidBy:          "f1",
		InvolvedFriends: []string{"f2"},
	}
	deltas, err := Deltas(exp, knownFriends)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if UserDelta(deltas) != 0 {
		t.Fatalf("closed split must conserve, user delta %d", UserDelta(deltas))
	}
	if deltas["f1"] != -25000 || deltas["f2"] != 25000 {
		t.Fatalf("unexpected deltas %v", deltas)
	}
}

func TestDeltasIndivisibleAmountConserves(t *testing.T) {
	exp := core.SharedExpense{
		Amount:          core.Money{Paise: 100000},
		PaidBy:          core.SelfID,
		InvolvedFriends: []string{"f1", "f2"},
	}
	deltas, err := Deltas(exp, knownFriends)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Payer absorbs the extra paisa: friends owe 33333 each.
	if deltas["f1"] != 33333 || deltas["f2"] != 33333 {
		t.Fatalf("unexpected deltas %v", deltas)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		exp  core.SharedExpense
	}{
		{"zero amount", core.SharedExpense{Amount: core.Money{Paise: 0}, PaidBy: core.SelfID, InvolvedFriends: []string{"f1"}}},
		{"negative amount", core.SharedExpense{Amount: core.Money{Paise: -100}, PaidBy: core.SelfID, InvolvedFriends: []string{"f1"}}},
		{"empty participants", core.SharedExpense{Amount: core.Money{Paise: 100}, PaidBy: core.SelfID}},
		{"unknown payer", core.SharedExpense{Amount: core.Money{Paise: 100}, PaidBy: "ghost", InvolvedFriends: []string{"f1"}}},
		{"unknown friend", core.SharedExpense{Amount: core.Money{Paise: 100}, PaidBy: core.SelfID, InvolvedFriends: []string{"ghost"}}},
		{"duplicate participant", core.SharedExpense{Amount: core.Money{Paise: 100}, PaidBy: core.SelfID, InvolvedFriends: []string{"f1", "f1"}}},
		{"payer repeated", core.SharedExpense{Amount: core.Money{Paise: 100}, PaidBy: "f1", InvolvedFriends: []string{"f1", "f2"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Deltas(tc.exp, knownFriends)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidSplit) {
				t.Fatalf("expected ErrInvalidSplit, got %v", err)
			}
			var splitErr *InvalidSplitError
			if !errors.As(err, &splitErr) {
				t.Fatalf("expected *InvalidSplitError, got %T", err)
			}
		})
	}
}

func TestNewSettlement(t *testing.T) {
	now := time.Date(2024, 11, 6, 10, 0, 0, 0, time.UTC)

	s := NewSettlement(core.Friend{ID: "f1", Balance: core.Money{Paise: 125000}}, now)
	if s == nil {
		t.Fatal("expected settlement for positive balance")
	}
	if s.FromID != "f1" || s.ToID != core.SelfID || s.Amount.Paise != 125000 {
		t.Fatalf("unexpected settlement %+v", s)
	}

	s = NewSettlement(core.Friend{ID: "f2", Balance: core.Money{Paise: -45000}}, now)
	if s.FromID != core.SelfID || s.ToID != "f2" || s.Amount.Paise != 45000 {
		t.Fatalf("unexpected settlement %+v", s)
	}

	// Settling a settled friend is a no-op.
	if s := NewSettlement(core.Friend{ID: "f3"}, now); s != nil {
		t.Fatalf("expected nil settlement for zero balance, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	friends := []core.Friend{
		{ID: "f1", Balance: core.Money{Paise: 125000}},
		{ID: "f2", Balance: core.Money{Paise: -45000}},
		{ID: "f3"},
	}
	sum := Summarize(friends)
	if sum.Net.Paise != 80000 {
		t.Fatalf("expected net 80000, got %d", sum.Net.Paise)
	}
	if sum.TotalOwed.Paise != 125000 || sum.TotalOwing.Paise != 45000 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"spendwise/internal/core"
	"spendwise/internal/state"
)

type fakePublisher struct {
	ids []string
	err error
}

func (p *fakePublisher) PublishExpenseSaved(_ context.Context, id string) error {
	if p.err != nil {
		return p.err
	}
	p.ids = append(p.ids, id)
	return nil
}

func TestCreateExpensePublishes(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewExpenseService(state.New(), pub)

	saved, err := svc.CreateExpense(context.Background(), core.Expense{
		Name: "Chai", Category: "Food",
		Amount: core.Money{Paise: 2000},
		Date:   core.NewDate(2024, 11, 6), Method: core.PayUPI,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(pub.ids) != 1 || pub.ids[0] != saved.ID {
		t.Fatalf("expected publish for %q, got %v", saved.ID, pub.ids)
	}
}

func TestCreateExpenseSurvivesPublishFailure(t *testing.T) {
	st := state.New()
	svc := NewExpenseService(st, &fakePublisher{err: errors.New("broker down")})

	if _, err := svc.CreateExpense(context.Background(), core.Expense{
		Name: "Chai", Category: "Food",
		Amount: core.Money{Paise: 2000},
		Date:   core.NewDate(2024, 11, 6), Method: core.PayUPI,
	}); err != nil {
		t.Fatalf("publish failure must not fail the save: %v", err)
	}
	if got, _ := st.Expenses(context.Background()); len(got) != 1 {
		t.Fatalf("expense not saved")
	}
}

func TestCreateExpenseNilPublisher(t *testing.T) {
	svc := NewExpenseService(state.New(), nil)
	if _, err := svc.CreateExpense(context.Background(), core.Expense{
		Name: "Chai", Category: "Food",
		Amount: core.Money{Paise: 2000},
		Date:   core.NewDate(2024, 11, 6), Method: core.PayUPI,
	}); err != nil {
		t.Fatalf("nil publisher must be fine: %v", err)
	}
}

func TestCreateExpenseRejectsInvalidWithoutPublishing(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewExpenseService(state.New(), pub)

	if _, err := svc.CreateExpense(context.Background(), core.Expense{Name: "x"}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(pub.ids) != 0 {
		t.Fatalf("rejected expense was published")
	}
}

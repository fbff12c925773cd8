package report

import (
	"reflect"
	"testing"
	"time"

	"spendwise/internal/core"
)

func expense(name, category string, paise int64, date core.Date) core.Expense {
	return core.Expense{
		Name:     name,
		Category: category,
		Amount:   core.Money{Paise: paise},
		Date:     date,
		Method:   core.PayUPI,
	}
}

func TestByCategoryDescendingWithSubscriptions(t *testing.T) {
	day := core.NewDate(2024, 11, 4)
	expenses := []core.Expense{
		expense("Blue Tokai Coffee", "Food", 35000, day),
		expense("Grocery Run", "Essentials", 120000, day),
		expense("Rickshaw Ride", "Transport", 6000, day),
	}
	subs := []core.Subscription{
		{Name: "Netflix", Category: "Entertainment", Amount: core.Money{Paise: 49900}, Cycle: core.Monthly, Status: core.StatusActive},
		{Name: "Old Gym", Category: "Health", Amount: core.Money{Paise: 250000}, Cycle: core.Monthly, Status: core.StatusCancelled},
	}

	got := ByCategory(expenses, subs)
	want := []CategoryTotal{
		{Category: "Essentials", Total: core.Money{Paise: 120000}},
		{Category: "Entertainment", Total: core.Money{Paise: 49900}},
		{Category: "Food", Total: core.Money{Paise: 35000}},
		{Category: "Transport", Total: core.Money{Paise: 6000}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestByCategoryOrderIndependent(t *testing.T) {
	day := core.NewDate(2024, 11, 1)
	a := expense("a", "Food", 100, day)
	b := expense("b", "Transport", 200, day)
	c := expense("c", "Food", 50, day)

	first := ByCategory([]core.Expense{a, b, c}, nil)
	second := ByCategory([]core.Expense{c, a, b}, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("permuted input changed result: %+v vs %+v", first, second)
	}
}

func TestByCategoryIdempotent(t *testing.T) {
	expenses := []core.Expense{expense("a", "Food", 100, core.NewDate(2024, 11, 1))}
	first := ByCategory(expenses, nil)
	second := ByCategory(expenses, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated call changed result")
	}
}

func TestYearlyMonthlyEquivalent(t *testing.T) {
	// Yearly ₹1499 contributes ₹124.92, not ₹1499.
	subs := []core.Subscription{
		{Name: "Amazon Prime", Category: "Shopping", Amount: core.Money{Paise: 149900}, Cycle: core.Yearly, Status: core.StatusActive},
	}
	got := ByCategory(nil, subs)
	if len(got) != 1 || got[0].Total.Paise != 12492 {
		t.Fatalf("expected 12492 paise for yearly sub, got %+v", got)
	}
}

func TestInWindowHalfOpen(t *testing.T) {
	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	expenses := []core.Expense{
		expense("in", "Food", 100, core.NewDate(2024, 11, 1)),
		expense("boundary", "Food", 200, core.NewDate(2024, 12, 1)), // excluded: end is open
		expense("before", "Food", 400, core.NewDate(2024, 10, 31)),
	}
	if got := InWindow(expenses, start, end); got.Paise != 100 {
		t.Fatalf("expected 100, got %d", got.Paise)
	}
}

func TestMonthTotalCalendarCompare(t *testing.T) {
	expenses := []core.Expense{
		expense("nov", "Food", 100, core.NewDate(2024, 11, 30)),
		expense("oct", "Food", 200, core.NewDate(2024, 10, 2)),
		expense("lastyear", "Food", 400, core.NewDate(2023, 11, 15)),
	}
	if got := MonthTotal(expenses, 2024, time.November); got.Paise != 100 {
		t.Fatalf("expected 100, got %d", got.Paise)
	}
}

func TestTrailingTotalInclusive(t *testing.T) {
	now := time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)
	expenses := []core.Expense{
		expense("today", "Food", 100, core.NewDate(2024, 11, 8)),
		expense("edge", "Food", 200, core.NewDate(2024, 11, 1)), // exactly 7 days back: included
		expense("old", "Food", 400, core.NewDate(2024, 10, 20)),
	}
	if got := TrailingTotal(expenses, now, 7); got.Paise != 300 {
		t.Fatalf("expected 300, got %d", got.Paise)
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2024, 11, 6, 9, 0, 0, 0, time.UTC)
	expenses := []core.Expense{
		expense("Grocery Run", "Essentials", 120000, core.NewDate(2024, 11, 3)),
		expense("Old", "Food", 5000, core.NewDate(2024, 9, 1)),
	}
	subs := []core.Subscription{
		{Name: "Netflix", Category: "Entertainment", Amount: core.Money{Paise: 49900}, Cycle: core.Monthly, Status: core.StatusActive},
	}
	emis := []core.EMI{
		{Name: "MacBook Air EMI", MonthlyAmount: core.Money{Paise: 550000}},
	}

	stats := Stats(expenses, subs, emis, now)
	if stats.MonthlySubSpend.Paise != 49900 {
		t.Fatalf("sub spend: got %d", stats.MonthlySubSpend.Paise)
	}
	if stats.MonthlyEMISpend.Paise != 550000 {
		t.Fatalf("emi spend: got %d", stats.MonthlyEMISpend.Paise)
	}
	if stats.MonthExpenseSpend.Paise != 120000 {
		t.Fatalf("month expense spend: got %d", stats.MonthExpenseSpend.Paise)
	}
	if stats.WeeklySpend.Paise != 120000 {
		t.Fatalf("weekly spend: got %d", stats.WeeklySpend.Paise)
	}
	want := 49900 + 550000 + 120000
	if stats.TotalMonthlySpend.Paise != int64(want) {
		t.Fatalf("total monthly spend: got %d, want %d", stats.TotalMonthlySpend.Paise, want)
	}
}

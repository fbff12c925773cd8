package state

import (
	"time"

	"spendwise/internal/core"
)

// NewSeeded returns a store pre-populated with a demo household so the
// dashboard has something to show on first run.
func NewSeeded() *Store {
	s := New()
	s.subscriptions = []core.Subscription{
		{ID: "1", Name: "Netflix", Category: "Entertainment", Subcategory: "Streaming", Amount: core.Money{Paise: 49900}, Cycle: core.Monthly, NextRenewal: core.NewDate(2024, 11, 20), AutoPay: true, Status: core.StatusActive, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), PaymentSource: "ICICI Bank • 8821", UsageScore: 88},
		{ID: "2", Name: "Spotify", Category: "Entertainment", Subcategory: "Music", Amount: core.Money{Paise: 11900}, Cycle: core.Monthly, NextRenewal: core.NewDate(2024, 11, 15), AutoPay: true, Status: core.StatusActive, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), PaymentSource: "HDFC Bank • 1024", UsageScore: 92},
		{ID: "3", Name: "Amazon Prime", Category: "Shopping", Subcategory: "Membership", Amount: core.Money{Paise: 149900}, Cycle: core.Yearly, NextRenewal: core.NewDate(2024, 12, 5), AutoPay: false, Status: core.StatusActive, CreatedAt: time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC), PaymentSource: "Credit Card • 4455", UsageScore: 45},
		{ID: "4", Name: "ChatGPT Plus", Category: "Productivity", Subcategory: "AI", Amount: core.Money{Paise: 165000}, Cycle: core.Monthly, NextRenewal: core.NewDate(2024, 11, 28), AutoPay: true, Status: core.StatusActive, CreatedAt: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), PaymentSource: "UPI ID • @axl", UsageScore: 98},
		{ID: "5", Name: "Adobe Creative Cloud", Category: "Design", Subcategory: "Professional", Amount: core.Money{Paise: 423000}, Cycle: core.Monthly, NextRenewal: core.NewDate(2024, 11, 10), AutoPay: true, Status: core.StatusActive, CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), PaymentSource: "ICICI Bank • 8821", UsageScore: 12},
		{ID: "6", Name: "Old Gym", Category: "Health", Subcategory: "Fitness", Amount: core.Money{Paise: 250000}, Cycle: core.Monthly, NextRenewal: core.NewDate(2024, 11, 10), AutoPay: false, Status: core.StatusCancelled, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "7", Name: "Premium News", Category: "Education", Subcategory: "News", Amount: core.Money{Paise: 29900}, Cycle: core.Monthly, NextRenewal: core.NewDate(2024, 11, 10), AutoPay: false, Status: core.StatusCancelled, CreatedAt: time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)},
	}
	s.expenses = []core.Expense{
		{ID: "e1", Name: "Blue Tokai Coffee", Category: "Food", Subcategory: "Cafe", Tags: []string{"work"}, Amount: core.Money{Paise: 35000}, Date: core.NewDate(2024, 11, 4), Method: core.PayUPI},
		{ID: "e2", Name: "Grocery Run", Category: "Essentials", Subcategory: "Groceries", Tags: []string{"home"}, Amount: core.Money{Paise: 120000}, Date: core.NewDate(2024, 11, 3), Method: core.PayCard},
		{ID: "e3", Name: "Rickshaw Ride", Category: "Transport", Subcategory: "Commute", Tags: []string{"travel"}, Amount: core.Money{Paise: 6000}, Date: core.NewDate(2024, 11, 4), Method: core.PayCash},
	}
	s.friends = []core.Friend{
		{ID: "f1", Name: "Varun", Balance: core.Money{Paise: 125000}},
		{ID: "f2", Name: "Rohan", Balance: core.Money{Paise: -45000}},
		{ID: "f3", Name: "Isha"},
	}
	s.shared = []core.SharedExpense{
		{ID: "s1", Description: "Dinner at Social", Amount: core.Money{Paise: 300000}, PaidBy: core.SelfID, Date: core.NewDate(2024, 11, 5), InvolvedFriends: []string{"f1", "f2"}},
		{ID: "s2", Description: "Movie Tickets", Amount: core.Money{Paise: 90000}, PaidBy: "f2", Date: core.NewDate(2024, 11, 4), InvolvedFriends: []string{"f1", core.SelfID}},
	}
	s.emis = []core.EMI{
		{ID: "m1", Name: "MacBook Air EMI", MonthlyAmount: core.Money{Paise: 550000}, DueDate: core.NewDate(2024, 11, 5)},
	}
	s.goals = []core.Goal{
		{ID: "g1", Type: core.GoalSavings, TargetAmount: core.Money{Paise: 5000000}, Period: "monthly", CurrentProgress: core.Money{Paise: 1250000}},
	}
	s.banks = []core.BankAccount{
		{ID: "b1", BankName: "ICICI Bank", AccountType: "Savings", Balance: core.Money{Paise: 14250000}, LastFour: "8821"},
		{ID: "b2", BankName: "HDFC Bank", AccountType: "Savings", Balance: core.Money{Paise: 2840000}, LastFour: "1024"},
	}
	s.cash = core.CashBalance{
		Opening: core.Money{Paise: 1000000},
		Current: core.Money{Paise: 850000},
	}
	return s
}

package core

import (
	"errors"
	"strings"
	"time"
)

// SelfID is the literal identity of the application user inside the
// shared-expense ledger. A SharedExpense payer or participant equal to
// SelfID refers to the user; everything else is a friend id.
const SelfID = "me"

const (
	Monthly BillingCycle = "monthly"
	Yearly  BillingCycle = "yearly"
)

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
)

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
	PayUPI  PaymentMethod = "upi"
)

const (
	GoalSavings          GoalType = "savings"
	GoalExpenseReduction GoalType = "expense_reduction"
)

type (
	BillingCycle       string
	SubscriptionStatus string
	PaymentMethod      string
	GoalType           string

	Date struct {
		time.Time
	}

	// Money is an amount in integer paise. Balances may be negative;
	// input amounts must validate positive.
	Money struct {
		Paise int64
	}

	// Subscription is a recurring cost with a two-state lifecycle:
	// active -> cancelled (cancel) and cancelled -> active (renew).
	Subscription struct {
		ID            string
		Name          string
		Category      string
		Subcategory   string
		Amount        Money
		Cycle         BillingCycle
		NextRenewal   Date
		AutoPay       bool
		Status        SubscriptionStatus
		CreatedAt     time.Time
		PaymentSource string
		UsageScore    int
	}

	// Expense is a personal, non-shared outlay. Immutable once created,
	// appended to the ledger most-recent-first.
	Expense struct {
		ID          string
		Name        string
		Category    string
		Subcategory string
		Tags        []string
		Amount      Money
		Date        Date
		Method      PaymentMethod
	}

	// Friend carries the signed net balance between the friend and the
	// user: positive means the friend owes the user, negative means the
	// user owes the friend.
	Friend struct {
		ID      string
		Name    string
		Balance Money
	}

	// SharedExpense is an outlay paid by one party and split equally
	// across the payer plus every involved participant. InvolvedFriends
	// holds friend ids and may include SelfID; it never repeats PaidBy.
	SharedExpense struct {
		ID              string
		Description     string
		Amount          Money
		PaidBy          string
		Date            Date
		InvolvedFriends []string
	}

	// Settlement is the auditable record of a balance being resolved to
	// zero. FromID pays ToID; Amount is always positive.
	Settlement struct {
		ID        string
		FriendID  string
		FromID    string
		ToID      string
		Amount    Money
		SettledAt time.Time
		Note      string
	}

	EMI struct {
		ID            string
		Name          string
		MonthlyAmount Money
		DueDate       Date
	}

	Goal struct {
		ID              string
		Type            GoalType
		TargetAmount    Money
		Period          string // weekly | monthly
		CurrentProgress Money
	}

	BankAccount struct {
		ID          string
		BankName    string
		AccountType string
		Balance     Money
		LastFour    string
	}

	CashBalance struct {
		Opening Money
		Current Money
	}

	// Insight is advisory text produced from an aggregate snapshot.
	Insight struct {
		Text     string
		Type     string
		Metadata map[string]any
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidCycle  = errors.New("invalid billing cycle")
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrUnknownEntity = errors.New("unknown entity")
	ErrInvalidGoal   = errors.New("invalid goal")
)

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (c BillingCycle) Validate() error {
	switch c {
	case Monthly, Yearly:
		return nil
	}
	return ErrInvalidCycle
}

func (p PaymentMethod) Validate() error {
	switch p {
	case PayCash, PayCard, PayUPI:
		return nil
	}
	return ErrInvalidMethod
}

// Validate rejects non-positive amounts. Only call on input amounts;
// balances are allowed to be negative or zero.
func (m Money) Validate() error {
	if m.Paise <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Name)) == 0 {
		return ErrEmptyName
	}
	if len(e.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return e.Method.Validate()
}

func (s Subscription) Validate() error {
	if len(strings.TrimSpace(s.Name)) == 0 {
		return ErrEmptyName
	}
	if err := s.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Category) == "" {
		return ErrEmptyCategory
	}
	return s.Cycle.Validate()
}

func (g Goal) Validate() error {
	switch g.Type {
	case GoalSavings, GoalExpenseReduction:
	default:
		return ErrInvalidGoal
	}
	if g.Period != "weekly" && g.Period != "monthly" {
		return ErrInvalidGoal
	}
	return g.TargetAmount.Validate()
}

package http

import (
	"time"

	"spendwise/internal/core"
	"spendwise/internal/ledger"
	"spendwise/internal/report"
)

// Wire shapes. Amounts travel as integer paise plus a formatted rupee
// string; input amounts are decimal strings ("350" or "350.50").

type expenseDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AmountPaise int64    `json:"amount_paise"`
	Amount      string   `json:"amount"`
	Date        string   `json:"date"`
	Method      string   `json:"method"`
}

func toExpenseDTO(e core.Expense) expenseDTO {
	return expenseDTO{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Tags:        e.Tags,
		AmountPaise: e.Amount.Paise,
		Amount:      e.Amount.String(),
		Date:        e.Date.Format("2006-01-02"),
		Method:      string(e.Method),
	}
}

type subscriptionDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory,omitempty"`
	AmountPaise   int64  `json:"amount_paise"`
	Amount        string `json:"amount"`
	Cycle         string `json:"cycle"`
	NextRenewal   string `json:"next_renewal,omitempty"`
	AutoPay       bool   `json:"auto_pay"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
	PaymentSource string `json:"payment_source,omitempty"`
	UsageScore    int    `json:"usage_score,omitempty"`
}

func toSubscriptionDTO(s core.Subscription) subscriptionDTO {
	dto := subscriptionDTO{
		ID:            s.ID,
		Name:          s.Name,
		Category:      s.Category,
		Subcategory:   s.Subcategory,
		AmountPaise:   s.Amount.Paise,
		Amount:        s.Amount.String(),
		Cycle:         string(s.Cycle),
		AutoPay:       s.AutoPay,
		Status:        string(s.Status),
		PaymentSource: s.PaymentSource,
		UsageScore:    s.UsageScore,
	}
	if !s.NextRenewal.IsZero() {
		dto.NextRenewal = s.NextRenewal.Format("2006-01-02")
	}
	if !s.CreatedAt.IsZero() {
		dto.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

type friendDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BalancePaise int64  `json:"balance_paise"`
	Balance      string `json:"balance"`
}

func toFriendDTO(f core.Friend) friendDTO {
	return friendDTO{
		ID:           f.ID,
		Name:         f.Name,
		BalancePaise: f.Balance.Paise,
		Balance:      f.Balance.String(),
	}
}

type sharedExpenseDTO struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	AmountPaise     int64    `json:"amount_paise"`
	Amount          string   `json:"amount"`
	PaidBy          string   `json:"paid_by"`
	Date            string   `json:"date"`
	InvolvedFriends []string `json:"involved_friends"`
}

func toSharedExpenseDTO(e core.SharedExpense) sharedExpenseDTO {
	return sharedExpenseDTO{
		ID:              e.ID,
		Description:     e.Description,
		AmountPaise:     e.Amount.Paise,
		Amount:          e.Amount.String(),
		PaidBy:          e.PaidBy,
		Date:            e.Date.Format("2006-01-02"),
		InvolvedFriends: e.InvolvedFriends,
	}
}

type settlementDTO struct {
	ID          string `json:"id"`
	FriendID    string `json:"friend_id"`
	FromID      string `json:"from_id"`
	ToID        string `json:"to_id"`
	AmountPaise int64  `json:"amount_paise"`
	Amount      string `json:"amount"`
	SettledAt   string `json:"settled_at"`
	Note        string `json:"note,omitempty"`
}

func toSettlementDTO(s core.Settlement) settlementDTO {
	return settlementDTO{
		ID:          s.ID,
		FriendID:    s.FriendID,
		FromID:      s.FromID,
		ToID:        s.ToID,
		AmountPaise: s.Amount.Paise,
		Amount:      s.Amount.String(),
		SettledAt:   s.SettledAt.Format(time.RFC3339),
		Note:        s.Note,
	}
}

type summaryDTO struct {
	NetPaise        int64 `json:"net_paise"`
	TotalOwedPaise  int64 `json:"total_owed_paise"`
	TotalOwingPaise int64 `json:"total_owing_paise"`
}

func toSummaryDTO(s ledger.BalanceSummary) summaryDTO {
	return summaryDTO{
		NetPaise:        s.Net.Paise,
		TotalOwedPaise:  s.TotalOwed.Paise,
		TotalOwingPaise: s.TotalOwing.Paise,
	}
}

type emiDTO struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	MonthlyAmountPaise int64  `json:"monthly_amount_paise"`
	MonthlyAmount      string `json:"monthly_amount"`
	DueDate            string `json:"due_date"`
}

func toEMIDTO(e core.EMI) emiDTO {
	return emiDTO{
		ID:                 e.ID,
		Name:               e.Name,
		MonthlyAmountPaise: e.MonthlyAmount.Paise,
		MonthlyAmount:      e.MonthlyAmount.String(),
		DueDate:            e.DueDate.Format("2006-01-02"),
	}
}

type goalDTO struct {
	ID                   string `json:"id"`
	Type                 string `json:"type"`
	TargetAmountPaise    int64  `json:"target_amount_paise"`
	TargetAmount         string `json:"target_amount"`
	Period               string `json:"period"`
	CurrentProgressPaise int64  `json:"current_progress_paise"`
	CurrentProgress      string `json:"current_progress"`
}

func toGoalDTO(g core.Goal) goalDTO {
	return goalDTO{
		ID:                   g.ID,
		Type:                 string(g.Type),
		TargetAmountPaise:    g.TargetAmount.Paise,
		TargetAmount:         g.TargetAmount.String(),
		Period:               g.Period,
		CurrentProgressPaise: g.CurrentProgress.Paise,
		CurrentProgress:      g.CurrentProgress.String(),
	}
}

type bankAccountDTO struct {
	ID           string `json:"id"`
	BankName     string `json:"bank_name"`
	AccountType  string `json:"account_type"`
	BalancePaise int64  `json:"balance_paise"`
	Balance      string `json:"balance"`
	LastFour     string `json:"last_four"`
}

func toBankAccountDTO(b core.BankAccount) bankAccountDTO {
	return bankAccountDTO{
		ID:           b.ID,
		BankName:     b.BankName,
		AccountType:  b.AccountType,
		BalancePaise: b.Balance.Paise,
		Balance:      b.Balance.String(),
		LastFour:     b.LastFour,
	}
}

type cashDTO struct {
	OpeningPaise int64  `json:"opening_paise"`
	CurrentPaise int64  `json:"current_paise"`
	Current      string `json:"current"`
}

func toCashDTO(c core.CashBalance) cashDTO {
	return cashDTO{
		OpeningPaise: c.Opening.Paise,
		CurrentPaise: c.Current.Paise,
		Current:      c.Current.String(),
	}
}

type categoryTotalDTO struct {
	Category   string `json:"category"`
	TotalPaise int64  `json:"total_paise"`
	Total      string `json:"total"`
}

type dashboardResponse struct {
	TotalMonthlySpendPaise int64              `json:"total_monthly_spend_paise"`
	MonthlySubSpendPaise   int64              `json:"monthly_subscription_spend_paise"`
	MonthlyEMISpendPaise   int64              `json:"monthly_emi_spend_paise"`
	MonthExpenseSpendPaise int64              `json:"month_expense_spend_paise"`
	WeeklySpendPaise       int64              `json:"weekly_spend_paise"`
	TopCategories          []categoryTotalDTO `json:"top_categories"`
	GeneratedAt            string             `json:"generated_at"`
}

func toDashboardResponse(stats report.DashboardStats, at time.Time) dashboardResponse {
	resp := dashboardResponse{
		TotalMonthlySpendPaise: stats.TotalMonthlySpend.Paise,
		MonthlySubSpendPaise:   stats.MonthlySubSpend.Paise,
		MonthlyEMISpendPaise:   stats.MonthlyEMISpend.Paise,
		MonthExpenseSpendPaise: stats.MonthExpenseSpend.Paise,
		WeeklySpendPaise:       stats.WeeklySpend.Paise,
		TopCategories:          make([]categoryTotalDTO, 0, len(stats.TopCategories)),
		GeneratedAt:            at.Format(time.RFC3339),
	}
	for _, ct := range stats.TopCategories {
		resp.TopCategories = append(resp.TopCategories, categoryTotalDTO{
			Category:   ct.Category,
			TotalPaise: ct.Total.Paise,
			Total:      ct.Total.String(),
		})
	}
	return resp
}

type insightDTO struct {
	Text     string         `json:"text"`
	Type     string         `json:"type"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type insightsResponse struct {
	Insights    []insightDTO `json:"insights"`
	GeneratedAt string       `json:"generated_at"`
}

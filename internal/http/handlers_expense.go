package http

import (
	"net/http"
	"strings"

	"spendwise/internal/core"
)

type createExpenseRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Tags        []string `json:"tags"`
	Amount      string   `json:"amount"`
	Date        string   `json:"date"`
	Method      string   `json:"method"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listExpenses(w, r)
	case http.MethodPost:
		s.createExpense(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.store.Expenses(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]expenseDTO, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseDTO(e))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Date is optional on input; an omitted date means today.
	today := s.now().UTC()
	date := core.NewDate(today.Year(), int(today.Month()), today.Day())
	if req.Date != "" {
		if date, err = parseDate(req.Date); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
			return
		}
	}

	expense := core.Expense{
		Name:        sanitizeInput(req.Name),
		Category:    sanitizeInput(req.Category),
		Subcategory: sanitizeInput(req.Subcategory),
		Tags:        req.Tags,
		Amount:      core.Money{Paise: paise},
		Date:        date,
		Method:      core.PaymentMethod(strings.ToLower(strings.TrimSpace(req.Method))),
	}

	saved, err := s.store.AddExpense(r.Context(), expense)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()
	respondJSON(w, http.StatusCreated, toExpenseDTO(saved))
}

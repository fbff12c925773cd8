package http

import (
	"net/http"
	"strings"

	"spendwise/internal/core"
)

type createSubscriptionRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
	Amount        string `json:"amount"`
	Cycle         string `json:"cycle"`
	NextRenewal   string `json:"next_renewal"`
	AutoPay       bool   `json:"auto_pay"`
	PaymentSource string `json:"payment_source"`
	UsageScore    int    `json:"usage_score"`
}

func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listSubscriptions(w, r)
	case http.MethodPost:
		s.createSubscription(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.store.Subscriptions(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]subscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toSubscriptionDTO(sub))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) createSubscription(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sub := core.Subscription{
		Name:          sanitizeInput(req.Name),
		Category:      sanitizeInput(req.Category),
		Subcategory:   sanitizeInput(req.Subcategory),
		Amount:        core.Money{Paise: paise},
		Cycle:         core.BillingCycle(strings.ToLower(strings.TrimSpace(req.Cycle))),
		AutoPay:       req.AutoPay,
		PaymentSource: sanitizeInput(req.PaymentSource),
		UsageScore:    req.UsageScore,
	}
	if req.NextRenewal != "" {
		if sub.NextRenewal, err = parseDate(req.NextRenewal); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "next_renewal must be YYYY-MM-DD")
			return
		}
	}

	saved, err := s.store.AddSubscription(r.Context(), sub)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()
	respondJSON(w, http.StatusCreated, toSubscriptionDTO(saved))
}

func (s *Server) handleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	sub, err := s.store.CancelSubscription(r.Context(), r.PathValue("id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()
	respondJSON(w, http.StatusOK, toSubscriptionDTO(sub))
}

func (s *Server) handleRenewSubscription(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	sub, err := s.store.RenewSubscription(r.Context(), r.PathValue("id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()
	respondJSON(w, http.StatusOK, toSubscriptionDTO(sub))
}

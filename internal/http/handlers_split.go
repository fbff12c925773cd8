package http

import (
	"net/http"

	"spendwise/internal/core"
	"spendwise/internal/ledger"
)

type createFriendRequest struct {
	Name string `json:"name"`
}

type createSharedExpenseRequest struct {
	Description     string   `json:"description"`
	Amount          string   `json:"amount"`
	PaidBy          string   `json:"paid_by"`
	Date            string   `json:"date"`
	InvolvedFriends []string `json:"involved_friends"`
}

func (s *Server) handleFriends(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listFriends(w, r)
	case http.MethodPost:
		s.createFriend(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) listFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := s.store.Friends(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]friendDTO, 0, len(friends))
	for _, f := range friends {
		out = append(out, toFriendDTO(f))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) createFriend(w http.ResponseWriter, r *http.Request) {
	var req createFriendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	friend, err := s.store.AddFriend(r.Context(), sanitizeInput(req.Name))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()
	respondJSON(w, http.StatusCreated, toFriendDTO(friend))
}

func (s *Server) handleSharedExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listSharedExpenses(w, r)
	case http.MethodPost:
		s.createSharedExpense(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) listSharedExpenses(w http.ResponseWriter, r *http.Request) {
	shared, err := s.store.SharedExpenses(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]sharedExpenseDTO, 0, len(shared))
	for _, e := range shared {
		out = append(out, toSharedExpenseDTO(e))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) createSharedExpense(w http.ResponseWriter, r *http.Request) {
	var req createSharedExpenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	paise, err := core.ParseDecimalToPaise(req.Amount)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	today := s.now().UTC()
	date := core.NewDate(today.Year(), int(today.Month()), today.Day())
	if req.Date != "" {
		if date, err = parseDate(req.Date); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
			return
		}
	}

	expense := core.SharedExpense{
		Description:     sanitizeInput(req.Description),
		Amount:          core.Money{Paise: paise},
		PaidBy:          req.PaidBy,
		Date:            date,
		InvolvedFriends: req.InvolvedFriends,
	}

	saved, err := s.store.RecordSharedExpense(r.Context(), expense)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()
	respondJSON(w, http.StatusCreated, toSharedExpenseDTO(saved))
}

func (s *Server) handleSettle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	settlement, err := s.store.Settle(r.Context(), r.PathValue("id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()

	// A nil settlement means the friend was already settled up.
	if settlement == nil {
		respondJSON(w, http.StatusOK, map[string]any{"settlement": nil})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"settlement": toSettlementDTO(*settlement)})
}

func (s *Server) handleSettlements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	settlements, err := s.store.Settlements(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]settlementDTO, 0, len(settlements))
	for _, st := range settlements {
		out = append(out, toSettlementDTO(st))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleSplitSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	friends, err := s.store.Friends(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSummaryDTO(ledger.Summarize(friends)))
}

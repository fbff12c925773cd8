package http

import (
	"net/http"

	"spendwise/internal/core"
)

type updateGoalRequest struct {
	TargetAmount string `json:"target_amount"`
}

type updateCashRequest struct {
	Current string `json:"current"`
}

func (s *Server) handleEMIs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	emis, err := s.store.EMIs(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]emiDTO, 0, len(emis))
	for _, e := range emis {
		out = append(out, toEMIDTO(e))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	goals, err := s.store.Goals(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalDTO(g))
	}
	respondJSON(w, http.StatusOK, out)
}

// handleUpdateGoal adjusts a goal's target amount. Progress is derived
// from spending and is not writable here.
func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		methodNotAllowed(w, "PUT, PATCH")
		return
	}
	var req updateGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	paise, err := core.ParseDecimalToPaise(req.TargetAmount)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	goal, err := s.store.UpdateGoalTarget(r.Context(), r.PathValue("id"), core.Money{Paise: paise})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.invalidateDerived()
	respondJSON(w, http.StatusOK, toGoalDTO(goal))
}

func (s *Server) handleBankAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	accounts, err := s.store.BankAccounts(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	out := make([]bankAccountDTO, 0, len(accounts))
	for _, b := range accounts {
		out = append(out, toBankAccountDTO(b))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCash(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cash, err := s.store.CashBalance(r.Context())
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, toCashDTO(cash))
	case http.MethodPut:
		var req updateCashRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		paise, err := core.ParseDecimalToPaise(req.Current)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		cash, err := s.store.SetCashBalance(r.Context(), core.Money{Paise: paise})
		if err != nil {
			respondStoreError(w, err)
			return
		}
		s.invalidateDerived()
		respondJSON(w, http.StatusOK, toCashDTO(cash))
	default:
		methodNotAllowed(w, "GET, PUT")
	}
}

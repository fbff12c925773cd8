package http

import (
	"net/http"

	"spendwise/internal/report"
)

const dashboardCacheKey = "dashboard"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	if cached, ok := s.dashCache.Get(dashboardCacheKey); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	ctx := r.Context()
	expenses, err := s.store.Expenses(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	subs, err := s.store.Subscriptions(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	emis, err := s.store.EMIs(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	now := s.now()
	resp := toDashboardResponse(report.Stats(expenses, subs, emis, now), now)
	s.dashCache.Set(dashboardCacheKey, resp)
	respondJSON(w, http.StatusOK, resp)
}

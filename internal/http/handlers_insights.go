package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"spendwise/internal/advisor"
	"spendwise/internal/services"
)

const insightsCacheKey = "insights"

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback"`
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	if cached, ok := s.insightCache.Get(insightsCacheKey); ok {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	snap, err := services.BuildSnapshot(r.Context(), s.store)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	now := s.now()
	insights := services.RuleInsights(snap, now)
	resp := insightsResponse{
		Insights:    make([]insightDTO, 0, len(insights)),
		GeneratedAt: now.Format(time.RFC3339),
	}
	for _, in := range insights {
		resp.Insights = append(resp.Insights, insightDTO{
			Text:     in.Text,
			Type:     in.Type,
			Metadata: in.Metadata,
		})
	}
	s.insightCache.Set(insightsCacheKey, resp)
	respondJSON(w, http.StatusOK, resp)
}

// handleAsk answers a free-form question about the user's finances. The
// configured advisor gets the first shot; if it is unavailable the
// deterministic fallback answers instead, flagged in the response.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req askRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	question := sanitizeInput(req.Question)
	if strings.TrimSpace(question) == "" {
		respondError(w, http.StatusUnprocessableEntity, "question is required")
		return
	}

	ctx := r.Context()
	snap, err := services.BuildSnapshot(ctx, s.store)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	summary := services.ContextSummary(snap, s.now())

	if s.advisor != nil {
		answer, err := s.advisor.Advise(ctx, summary, question)
		if err == nil {
			respondJSON(w, http.StatusOK, askResponse{Answer: answer})
			return
		}
		if !errors.Is(err, advisor.ErrAdvisoryUnavailable) {
			slog.ErrorContext(ctx, "Advisor failed", "error", err)
		}
	}

	answer, err := advisor.Static{}.Advise(ctx, summary, question)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, askResponse{Answer: answer, Fallback: true})
}

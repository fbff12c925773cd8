// Package http exposes the JSON API: expense and subscription
// tracking, the dashboard rollup, the shared-expense ledger, planner
// surfaces, and advisory insights.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spendwise/internal/advisor"
	"spendwise/internal/cache"
	"spendwise/internal/store"
)

type Server struct {
	http.Server
	store       store.Store
	advisor     advisor.TextAdvisor
	rateLimiter *rateLimiter

	// Derived views are cached between writes.
	dashCache    *cache.LRUCache[dashboardResponse]
	insightCache *cache.LRUCache[insightsResponse]

	cacheManager *cache.Manager
	shutdownOnce sync.Once

	startedAt time.Time
	now       func() time.Time
}

// NewServer configures routes, returning a ready-to-run http.Server.
// A nil advisor disables the ask endpoint's model path; rule-based
// insights keep working.
func NewServer(addr string, st store.Store, adv advisor.TextAdvisor) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:        st,
		advisor:      adv,
		rateLimiter:  newRateLimiter(),
		dashCache:    cache.NewLRUCache[dashboardResponse](10, 30*time.Second),
		insightCache: cache.NewLRUCache[insightsResponse](10, time.Minute),
		cacheManager: cache.NewManager(),
		startedAt:    time.Now(),
		now:          time.Now,
	}

	s.cacheManager.Register(s.dashCache)
	s.cacheManager.Register(s.insightCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	mux.HandleFunc("/api/expenses", s.withSecurityHeaders(s.handleExpenses))
	mux.HandleFunc("/api/subscriptions", s.withSecurityHeaders(s.handleSubscriptions))
	mux.HandleFunc("/api/subscriptions/{id}/cancel", s.withSecurityHeaders(s.handleCancelSubscription))
	mux.HandleFunc("/api/subscriptions/{id}/renew", s.withSecurityHeaders(s.handleRenewSubscription))
	mux.HandleFunc("/api/dashboard", s.withSecurityHeaders(s.handleDashboard))

	mux.HandleFunc("/api/split/friends", s.withSecurityHeaders(s.handleFriends))
	mux.HandleFunc("/api/split/friends/{id}/settle", s.withSecurityHeaders(s.handleSettle))
	mux.HandleFunc("/api/split/expenses", s.withSecurityHeaders(s.handleSharedExpenses))
	mux.HandleFunc("/api/split/settlements", s.withSecurityHeaders(s.handleSettlements))
	mux.HandleFunc("/api/split/net", s.withSecurityHeaders(s.handleSplitSummary))

	mux.HandleFunc("/api/emis", s.withSecurityHeaders(s.handleEMIs))
	mux.HandleFunc("/api/goals", s.withSecurityHeaders(s.handleGoals))
	mux.HandleFunc("/api/goals/{id}", s.withSecurityHeaders(s.handleUpdateGoal))
	mux.HandleFunc("/api/accounts", s.withSecurityHeaders(s.handleBankAccounts))
	mux.HandleFunc("/api/cash", s.withSecurityHeaders(s.handleCash))

	mux.HandleFunc("/api/insights", s.withSecurityHeaders(s.handleInsights))
	mux.HandleFunc("/api/insights/ask", s.withSecurityHeaders(s.handleAsk))

	return s
}

// invalidateDerived drops cached rollups after any write.
func (s *Server) invalidateDerived() {
	s.dashCache.Purge()
	s.insightCache.Purge()
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.StopCleanup()
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withSecurityHeaders adds security headers, rate limiting, and request
// logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		// Rate limit mutating requests only.
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

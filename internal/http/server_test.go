package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spendwise/internal/state"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer(":0", state.NewSeeded(), nil)
	t.Cleanup(func() { s.rateLimiter.stop(); s.cacheManager.StopCleanup() })
	return s
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestHealthAndReady(t *testing.T) {
	s := newTestServer(t)
	if rec := do(t, s, http.MethodGet, "/healthz", nil); rec.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/readyz", nil); rec.Code != http.StatusOK {
		t.Fatalf("readyz: %d", rec.Code)
	}
}

func TestCreateAndListExpenses(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/expenses", map[string]any{
		"name":     "Chai",
		"category": "Food",
		"amount":   "45.50",
		"date":     "2025-08-20",
		"method":   "upi",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d body %s", rec.Code, rec.Body.String())
	}
	created := decode[expenseDTO](t, rec)
	if created.ID == "" || created.AmountPaise != 4550 {
		t.Fatalf("created: %+v", created)
	}

	list := decode[[]expenseDTO](t, do(t, s, http.MethodGet, "/api/expenses", nil))
	if len(list) != 4 || list[0].Name != "Chai" {
		t.Fatalf("expected new expense first of 4, got %d, first %q", len(list), list[0].Name)
	}
}

func TestCreateExpenseRejectsBadAmount(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/expenses", map[string]any{
		"name":     "Chai",
		"category": "Food",
		"amount":   "-45",
		"method":   "upi",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCreateExpenseRejectsUnknownFields(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/expenses", map[string]any{
		"name": "Chai", "category": "Food", "amount": "45", "method": "upi",
		"paid": true,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	s := newTestServer(t)

	subs := decode[[]subscriptionDTO](t, do(t, s, http.MethodGet, "/api/subscriptions", nil))
	if len(subs) != 7 {
		t.Fatalf("seed subscriptions: %d", len(subs))
	}
	var target string
	for _, sub := range subs {
		if sub.Status == "active" {
			target = sub.ID
			break
		}
	}

	rec := do(t, s, http.MethodPost, "/api/subscriptions/"+target+"/cancel", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: %d", rec.Code)
	}
	if got := decode[subscriptionDTO](t, rec); got.Status != "cancelled" {
		t.Fatalf("status after cancel: %q", got.Status)
	}

	rec = do(t, s, http.MethodPost, "/api/subscriptions/"+target+"/renew", nil)
	if got := decode[subscriptionDTO](t, rec); got.Status != "active" {
		t.Fatalf("status after renew: %q", got.Status)
	}

	if rec := do(t, s, http.MethodPost, "/api/subscriptions/nope/cancel", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: %d", rec.Code)
	}
}

func TestDashboardTotals(t *testing.T) {
	s := newTestServer(t)
	dash := decode[dashboardResponse](t, do(t, s, http.MethodGet, "/api/dashboard", nil))

	// Active seed subscriptions normalized to monthly paise.
	if dash.MonthlySubSpendPaise != 662292 {
		t.Fatalf("sub spend: %d", dash.MonthlySubSpendPaise)
	}
	if dash.MonthlyEMISpendPaise != 550000 {
		t.Fatalf("emi spend: %d", dash.MonthlyEMISpendPaise)
	}
	if len(dash.TopCategories) == 0 || len(dash.TopCategories) > 5 {
		t.Fatalf("top categories: %d", len(dash.TopCategories))
	}
}

func TestDashboardCacheInvalidatedOnWrite(t *testing.T) {
	s := newTestServer(t)

	first := decode[dashboardResponse](t, do(t, s, http.MethodGet, "/api/dashboard", nil))

	do(t, s, http.MethodPost, "/api/expenses", map[string]any{
		"name": "Lunch", "category": "Food", "amount": "250", "method": "card",
	})

	second := decode[dashboardResponse](t, do(t, s, http.MethodGet, "/api/dashboard", nil))
	if second.MonthExpenseSpendPaise != first.MonthExpenseSpendPaise+25000 {
		t.Fatalf("stale dashboard: first %d second %d", first.MonthExpenseSpendPaise, second.MonthExpenseSpendPaise)
	}
}

func TestSplitEndpoints(t *testing.T) {
	s := newTestServer(t)

	friends := decode[[]friendDTO](t, do(t, s, http.MethodGet, "/api/split/friends", nil))
	if len(friends) != 3 {
		t.Fatalf("seed friends: %d", len(friends))
	}

	summary := decode[summaryDTO](t, do(t, s, http.MethodGet, "/api/split/net", nil))
	if summary.NetPaise != 80000 || summary.TotalOwedPaise != 125000 || summary.TotalOwingPaise != 45000 {
		t.Fatalf("summary: %+v", summary)
	}

	rec := do(t, s, http.MethodPost, "/api/split/expenses", map[string]any{
		"description":      "Brunch",
		"amount":           "900",
		"paid_by":          "me",
		"involved_friends": []string{"f1", "f2"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("record: %d body %s", rec.Code, rec.Body.String())
	}

	// f1 and f2 each pick up a 30000 paise share.
	friends = decode[[]friendDTO](t, do(t, s, http.MethodGet, "/api/split/friends", nil))
	for _, f := range friends {
		switch f.ID {
		case "f1":
			if f.BalancePaise != 155000 {
				t.Fatalf("f1 balance: %d", f.BalancePaise)
			}
		case "f2":
			if f.BalancePaise != -15000 {
				t.Fatalf("f2 balance: %d", f.BalancePaise)
			}
		}
	}
}

func TestCreateFriend(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/split/friends", map[string]any{"name": "Priya"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create friend: %d body %s", rec.Code, rec.Body.String())
	}
	created := decode[friendDTO](t, rec)
	if created.ID == "" || created.BalancePaise != 0 {
		t.Fatalf("created friend: %+v", created)
	}

	friends := decode[[]friendDTO](t, do(t, s, http.MethodGet, "/api/split/friends", nil))
	if len(friends) != 4 {
		t.Fatalf("expected 4 friends, got %d", len(friends))
	}

	// A split naming the new friend is accepted.
	rec = do(t, s, http.MethodPost, "/api/split/expenses", map[string]any{
		"description":      "Coffee",
		"amount":           "200",
		"paid_by":          "me",
		"involved_friends": []string{created.ID},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("split with new friend: %d body %s", rec.Code, rec.Body.String())
	}

	if rec := do(t, s, http.MethodPost, "/api/split/friends", map[string]any{"name": "  "}); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("blank name: %d", rec.Code)
	}
}

func TestSplitRejectsUnknownParticipant(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/split/expenses", map[string]any{
		"description":      "Ghost dinner",
		"amount":           "100",
		"paid_by":          "me",
		"involved_friends": []string{"f1", "stranger"},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body %s", rec.Code, rec.Body.String())
	}

	// Nothing may have been applied.
	summary := decode[summaryDTO](t, do(t, s, http.MethodGet, "/api/split/net", nil))
	if summary.NetPaise != 80000 {
		t.Fatalf("balances changed on rejected split: %+v", summary)
	}
}

func TestSettleFlow(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/split/friends/f1/settle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("settle: %d", rec.Code)
	}
	resp := decode[map[string]*settlementDTO](t, rec)
	st := resp["settlement"]
	if st == nil || st.FromID != "f1" || st.ToID != "me" || st.AmountPaise != 125000 {
		t.Fatalf("settlement: %+v", st)
	}

	// Settling again is a no-op with a null settlement.
	rec = do(t, s, http.MethodPost, "/api/split/friends/f1/settle", nil)
	if resp := decode[map[string]*settlementDTO](t, rec); resp["settlement"] != nil {
		t.Fatalf("expected null settlement, got %+v", resp["settlement"])
	}

	settlements := decode[[]settlementDTO](t, do(t, s, http.MethodGet, "/api/split/settlements", nil))
	if len(settlements) != 1 {
		t.Fatalf("settlement records: %d", len(settlements))
	}

	if rec := do(t, s, http.MethodPost, "/api/split/friends/nope/settle", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown friend: %d", rec.Code)
	}
}

func TestPlannerEndpoints(t *testing.T) {
	s := newTestServer(t)

	emis := decode[[]emiDTO](t, do(t, s, http.MethodGet, "/api/emis", nil))
	if len(emis) != 1 || emis[0].MonthlyAmountPaise != 550000 {
		t.Fatalf("emis: %+v", emis)
	}

	banks := decode[[]bankAccountDTO](t, do(t, s, http.MethodGet, "/api/accounts", nil))
	if len(banks) != 2 {
		t.Fatalf("accounts: %d", len(banks))
	}

	rec := do(t, s, http.MethodPut, "/api/goals/g1", map[string]any{"target_amount": "60000"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update goal: %d body %s", rec.Code, rec.Body.String())
	}
	goal := decode[goalDTO](t, rec)
	if goal.TargetAmountPaise != 6000000 || goal.CurrentProgressPaise != 1250000 {
		t.Fatalf("goal after update: %+v", goal)
	}

	if rec := do(t, s, http.MethodPut, "/api/goals/nope", map[string]any{"target_amount": "1"}); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown goal: %d", rec.Code)
	}
}

func TestCashEndpoint(t *testing.T) {
	s := newTestServer(t)

	cash := decode[cashDTO](t, do(t, s, http.MethodGet, "/api/cash", nil))
	if cash.CurrentPaise != 850000 || cash.OpeningPaise != 1000000 {
		t.Fatalf("seed cash: %+v", cash)
	}

	rec := do(t, s, http.MethodPut, "/api/cash", map[string]any{"current": "9000"})
	if rec.Code != http.StatusOK {
		t.Fatalf("set cash: %d", rec.Code)
	}
	if got := decode[cashDTO](t, rec); got.CurrentPaise != 900000 {
		t.Fatalf("cash after set: %+v", got)
	}
}

func TestInsightsEndpoint(t *testing.T) {
	s := newTestServer(t)
	resp := decode[insightsResponse](t, do(t, s, http.MethodGet, "/api/insights", nil))
	if len(resp.Insights) == 0 {
		t.Fatalf("no insights from seeded data")
	}
	types := map[string]bool{}
	for _, in := range resp.Insights {
		types[in.Type] = true
	}
	// Seed data trips the usage and settlement rules.
	if !types["usage_alert"] || !types["settlement_reminder"] {
		t.Fatalf("insight types: %v", types)
	}
}

func TestAskFallsBackWithoutAdvisor(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/insights/ask", map[string]any{"question": "Where does my money go?"})
	if rec.Code != http.StatusOK {
		t.Fatalf("ask: %d body %s", rec.Code, rec.Body.String())
	}
	resp := decode[askResponse](t, rec)
	if !resp.Fallback || resp.Answer == "" {
		t.Fatalf("expected fallback answer, got %+v", resp)
	}

	if rec := do(t, s, http.MethodPost, "/api/insights/ask", map[string]any{"question": "  "}); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("blank question: %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodDelete, "/api/expenses", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if rec.Header().Get("Allow") == "" {
		t.Fatalf("missing Allow header")
	}
}

func TestSecurityHeadersPresent(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/expenses", nil)
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing nosniff header")
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("missing frame options header")
	}
}

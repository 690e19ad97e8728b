package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_reparos/internal/config"

	"github.com/gin-gonic/gin"
)

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{
			Env:                 "test",
			SeedDemoData:        true,
			DefaultDeadlineDays: 30,
			DashboardMonths:     6,
		},
		HTTP:  config.HTTPConfig{Port: "0", CORSAllowOrigins: "*"},
		Store: config.StoreConfig{Backend: config.StoreMemory},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a, err := New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("app init: %v", err)
	}
	t.Cleanup(a.Close)
	return a.Router()
}

func call(t *testing.T, r *gin.Engine, method, path, body string, out any) int {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: invalid json %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func TestApp_SeededLedgerFlow(t *testing.T) {
	r := newTestRouter(t)

	var summary map[string]float64
	if code := call(t, r, http.MethodGet, "/v1/finance/summary", "", &summary); code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d", code)
	}
	if summary["total_revenue"] != 6800 || summary["total_expenses"] != 730 || summary["net_profit"] != 6070 || summary["average_ticket"] != 2266.67 {
		t.Fatalf("unexpected seeded summary: %+v", summary)
	}

	var quotes []map[string]any
	call(t, r, http.MethodGet, "/v1/quotes", "", &quotes)
	if len(quotes) != 3 || quotes[0]["id"] != "seed-quote-2" || quotes[0]["status"] != "pendente" {
		t.Fatalf("unexpected quotes: %+v", quotes)
	}

	var svc map[string]any
	if code := call(t, r, http.MethodPatch, "/v1/quotes/seed-quote-2/accept", `{"deadline":"2024-02-28"}`, &svc); code != http.StatusOK {
		t.Fatalf("accept: expected 200, got %d (%+v)", code, svc)
	}
	if svc["quote_id"] != "seed-quote-2" || svc["value"] != 3200.0 || svc["client_name"] != "Maria Santos" {
		t.Fatalf("unexpected service: %+v", svc)
	}

	var conflict map[string]any
	if code := call(t, r, http.MethodPatch, "/v1/quotes/seed-quote-2/reject", "", &conflict); code != http.StatusConflict {
		t.Fatalf("reject after accept: expected 409, got %d", code)
	}
	if conflict["code"] != "INVALID_TRANSITION" {
		t.Fatalf("unexpected error body: %+v", conflict)
	}

	var services []map[string]any
	call(t, r, http.MethodGet, "/v1/services", "", &services)
	if len(services) != 6 {
		t.Fatalf("expected 6 in-progress services, got %d", len(services))
	}
	for _, s := range services {
		if _, ok := s["urgency"].(map[string]any); !ok {
			t.Fatalf("service without urgency: %+v", s)
		}
	}

	svcID, _ := svc["id"].(string)
	var fact map[string]any
	if code := call(t, r, http.MethodPatch, "/v1/services/"+svcID+"/finalize", `{"finished_at":"2024-02-20"}`, &fact); code != http.StatusOK {
		t.Fatalf("finalize: expected 200, got %d (%+v)", code, fact)
	}

	call(t, r, http.MethodGet, "/v1/finance/summary", "", &summary)
	if summary["total_revenue"] != 10000 || summary["average_ticket"] != 2500 || summary["net_profit"] != 9270 {
		t.Fatalf("unexpected summary after finalize: %+v", summary)
	}
}

func TestApp_CreateQuoteAndExpense(t *testing.T) {
	r := newTestRouter(t)

	var created map[string]any
	if code := call(t, r, http.MethodPost, "/v1/quotes", `{"client_name":"Ana Costa","address":"Rua do Sol, 321","service_type":"pintura","value":"2100,50"}`, &created); code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%+v)", code, created)
	}
	if created["value"] != 2100.5 || created["status"] != "pendente" {
		t.Fatalf("unexpected quote: %+v", created)
	}

	var invalid map[string]any
	if code := call(t, r, http.MethodPost, "/v1/quotes", `{"client_name":"Ana","address":"Rua","service_type":"eletrica","value":10}`, &invalid); code != http.StatusBadRequest {
		t.Fatalf("invalid type: expected 400, got %d", code)
	}

	var expense map[string]any
	if code := call(t, r, http.MethodPost, "/v1/finance/expenses", `{"description":"Lixas","value":70}`, &expense); code != http.StatusCreated {
		t.Fatalf("expense: expected 201, got %d (%+v)", code, expense)
	}
	var expenses []map[string]any
	call(t, r, http.MethodGet, "/v1/finance/expenses", "", &expenses)
	if len(expenses) != 3 || expenses[0]["description"] != "Lixas" {
		t.Fatalf("unexpected expenses: %+v", expenses)
	}

	var missing map[string]any
	if code := call(t, r, http.MethodGet, "/v1/quotes/nope", "", &missing); code != http.StatusNotFound {
		t.Fatalf("get missing: expected 404, got %d", code)
	}
}

func TestApp_PingDashboardAndDocs(t *testing.T) {
	r := newTestRouter(t)

	var pong map[string]any
	if code := call(t, r, http.MethodGet, "/v1/ping", "", &pong); code != http.StatusOK || pong["message"] != "pong" || pong["store"] != "memory" {
		t.Fatalf("unexpected ping: %d %+v", code, pong)
	}

	var stats map[string]any
	if code := call(t, r, http.MethodGet, "/v1/dashboard", "", &stats); code != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", code)
	}
	months, _ := stats["monthly_revenue"].([]any)
	if len(months) != 6 || stats["repairs_in_progress"] != 2.0 || stats["paintings_in_progress"] != 3.0 {
		t.Fatalf("unexpected dashboard: %+v", stats)
	}

	var doc map[string]any
	if code := call(t, r, http.MethodGet, "/swagger-doc.json", "", &doc); code != http.StatusOK || doc["basePath"] != "/v1" {
		t.Fatalf("unexpected swagger doc: %d", code)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Backend = "postgres"
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

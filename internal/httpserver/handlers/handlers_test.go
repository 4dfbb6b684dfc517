package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"domainsight/internal/alerts"
	"domainsight/internal/chain"
	"domainsight/internal/domain"
	"domainsight/internal/httpserver/deps"
	"domainsight/internal/insight"
	"domainsight/internal/logger"
	"domainsight/internal/model"
	"domainsight/internal/sources/subgraph"
)

var testNow = time.Unix(1_700_000_000, 0)

func fakeChainServer(t *testing.T, records []domain.Record) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		if strings.Contains(req.Query, "GetDomains") {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"names": records},
			})
			return
		}

		name, _ := req.Variables["name"].(string)
		for _, rec := range records {
			if rec.Name == name {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"data": map[string]any{"name": rec},
				})
				return
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"name": nil},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testDeps(t *testing.T, actionsEnabled bool) deps.Deps {
	t.Helper()

	records := []domain.Record{
		{
			Name:   "crypto.eth",
			TLD:    "eth",
			Expiry: testNow.Unix() + 90*domain.SecondsPerDay,
			Owner:  "0xabc",
			Activities: []domain.Activity{
				{Type: "TRANSFER", Timestamp: testNow.Unix() - 1000},
			},
		},
		{
			Name:   "urgent.ai",
			TLD:    "ai",
			Expiry: testNow.Unix() + 3*domain.SecondsPerDay,
		},
	}
	srv := fakeChainServer(t, records)

	data := domain.DefaultScoringData()
	forest, err := model.Train(data.Samples, model.Config{Trees: 10})
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	client := subgraph.New(map[string]string{"testnet": srv.URL}, "testnet", 2*time.Second)
	log := logger.New("error", false)

	svc := insight.New(insight.Options{
		Logger:   log,
		Data:     data,
		Model:    forest,
		Client:   client,
		AlertLog: alerts.NewLog(),
		AlertCfg: alerts.Config{ExpiryThresholdDays: 7, MinScore: 0},
		TimeNow:  func() time.Time { return testNow },
	})

	return deps.Deps{
		Logger:             log,
		StartTime:          time.Now(),
		TimeNow:            func() time.Time { return testNow },
		Insight:            svc,
		Actions:            chain.NewSimulator(func() time.Time { return testNow }),
		ActionsEnabled:     actionsEnabled,
		PrimaryChain:       "testnet",
		SyncInterval:       30 * time.Second,
		AlertCheckInterval: time.Minute,
	}
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestScoreHandler(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, Score(d), http.MethodPost, "/api/score-domain", `{"domainName":"crypto.eth"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var result insight.ScoreResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.DomainName != "crypto.eth" {
		t.Errorf("DomainName = %v, want crypto.eth", result.DomainName)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("Score = %v, want within [0,100]", result.Score)
	}
	if len(result.Recommendations) == 0 {
		t.Error("Recommendations empty, want at least one")
	}
}

func TestScoreHandlerValidation(t *testing.T) {
	d := testDeps(t, false)

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "missing name", body: `{}`, expected: http.StatusBadRequest},
		{name: "blank name", body: `{"domainName":"  "}`, expected: http.StatusBadRequest},
		{name: "malformed json", body: `{`, expected: http.StatusBadRequest},
		{name: "unknown chain", body: `{"domainName":"crypto.eth","chain":"sidechain"}`, expected: http.StatusBadRequest},
		{name: "unknown domain", body: `{"domainName":"missing.eth"}`, expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, Score(d), http.MethodPost, "/api/score-domain", tt.body)
			if rr.Code != tt.expected {
				t.Errorf("status = %v, want %v (body: %s)", rr.Code, tt.expected, rr.Body.String())
			}
		})
	}
}

func TestScoreHandlerUpstreamFailure(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(bad.Close)

	data := domain.DefaultScoringData()
	forest, err := model.Train(data.Samples, model.Config{Trees: 10})
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	log := logger.New("error", false)
	svc := insight.New(insight.Options{
		Logger:   log,
		Data:     data,
		Model:    forest,
		Client:   subgraph.New(map[string]string{"testnet": bad.URL}, "testnet", time.Second),
		AlertLog: alerts.NewLog(),
	})
	d := deps.Deps{Logger: log, Insight: svc, PrimaryChain: "testnet", TimeNow: time.Now}

	rr := doJSON(t, Score(d), http.MethodPost, "/api/score-domain", `{"domainName":"crypto.eth"}`)
	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %v, want 502 (body: %s)", rr.Code, rr.Body.String())
	}
}

func TestTrendsHandler(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, Trends(d), http.MethodGet, "/api/trends", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", rr.Code)
	}

	var trends domain.TrendSummary
	if err := json.NewDecoder(rr.Body).Decode(&trends); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if trends.TotalDomains != 2 {
		t.Errorf("TotalDomains = %v, want 2", trends.TotalDomains)
	}
}

func TestCheckExpiringHandler(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, CheckExpiring(d), http.MethodPost, "/api/check-expiring-domains", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var resp checkExpiringResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Checked != 2 {
		t.Errorf("Checked = %v, want 2", resp.Checked)
	}
	if resp.NewAlerts != 1 {
		t.Errorf("NewAlerts = %v, want 1", resp.NewAlerts)
	}

	// Rerun deduplicates.
	rr = doJSON(t, CheckExpiring(d), http.MethodPost, "/api/check-expiring-domains", "")
	resp = checkExpiringResponse{}
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp.NewAlerts != 0 {
		t.Errorf("rerun NewAlerts = %v, want 0", resp.NewAlerts)
	}
}

func TestListAlertsHandler(t *testing.T) {
	d := testDeps(t, false)

	// Populate via a scan first.
	doJSON(t, CheckExpiring(d), http.MethodPost, "/api/check-expiring-domains", "")

	rr := doJSON(t, ListAlerts(d), http.MethodGet, "/api/alerts", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", rr.Code)
	}

	var resp listAlertsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Alerts) != 1 {
		t.Errorf("alerts = %v (total %v), want 1", len(resp.Alerts), resp.Total)
	}

	rr = doJSON(t, ListAlerts(d), http.MethodGet, "/api/alerts?limit=abc", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid limit status = %v, want 400", rr.Code)
	}
}

func TestRecentAlertsHandler(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, RecentAlerts(d), http.MethodGet, "/api/alerts/recent", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var resp recentAlertsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ScanError != "" {
		t.Errorf("ScanError = %q, want empty", resp.ScanError)
	}
	if resp.NewAlerts != 1 {
		t.Errorf("NewAlerts = %v, want 1", resp.NewAlerts)
	}
	// The scan stamps alerts with the handler clock, so the fresh alert
	// falls inside the one-hour window.
	if len(resp.Alerts) != 1 {
		t.Errorf("Alerts length = %v, want 1", len(resp.Alerts))
	}
}

func TestRecommendHandlerWithScore(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, Recommend(d), http.MethodPost, "/api/recommend-actions",
		`{"domainName":"crypto.eth","score":85,"features":{"hasKeyword":true,"tldRarity":0.9,"expiryDays":10}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var resp recommendResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Score != 85 {
		t.Errorf("Score = %v, want 85", resp.Score)
	}
	// Tier pair plus keyword, rarity and expiry add-ons.
	if len(resp.Recommendations) != 5 {
		t.Errorf("Recommendations length = %v, want 5", len(resp.Recommendations))
	}
}

func TestExecuteActionHandler(t *testing.T) {
	d := testDeps(t, true)

	rr := doJSON(t, ExecuteAction(d), http.MethodPost, "/api/execute-action",
		`{"action":"tokenize","domainName":"crypto.eth"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var resp actionResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if !strings.HasPrefix(resp.Result.TransactionHash, "0x") {
		t.Errorf("TransactionHash = %q, want 0x prefix", resp.Result.TransactionHash)
	}
}

func TestExecuteActionHandlerValidation(t *testing.T) {
	d := testDeps(t, true)

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "missing action", body: `{"domainName":"crypto.eth"}`, expected: http.StatusBadRequest},
		{name: "missing domain", body: `{"action":"tokenize"}`, expected: http.StatusBadRequest},
		{name: "unsupported action", body: `{"action":"burn","domainName":"crypto.eth"}`, expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, ExecuteAction(d), http.MethodPost, "/api/execute-action", tt.body)
			if rr.Code != tt.expected {
				t.Errorf("status = %v, want %v", rr.Code, tt.expected)
			}
		})
	}
}

func TestExecuteActionHandlerDisabled(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, ExecuteAction(d), http.MethodPost, "/api/execute-action",
		`{"action":"tokenize","domainName":"crypto.eth"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %v, want 503", rr.Code)
	}
}

func TestSyncStatusHandler(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, SyncStatus(d), http.MethodGet, "/api/state-sync/status", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", rr.Code)
	}

	var resp syncStatusResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Mode != "on-demand" {
		t.Errorf("Mode = %v, want on-demand", resp.Mode)
	}
	if resp.PrimaryChain != "testnet" {
		t.Errorf("PrimaryChain = %v, want testnet", resp.PrimaryChain)
	}
	if resp.PersistenceEnabled {
		t.Error("PersistenceEnabled = true, want false without redis")
	}
}

func TestHealthzHandler(t *testing.T) {
	d := testDeps(t, false)

	rr := doJSON(t, Healthz(d), http.MethodGet, "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", rr.Code)
	}

	var resp healthzResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %v, want ok", resp.Status)
	}
}

package api

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"cloud-cost/clouds"
	"cloud-cost/core/analysis"
	"cloud-cost/core/compare"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	"cloud-cost/internal/metrics"
)

func setupTestAPI(t *testing.T) http.Handler {
	t.Helper()

	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	registry := clouds.GetDefaultRegistry()
	resolver, err := registry.Resolver(types.ProviderAWS, types.ProviderGCP, pricing.WithObserver(m.ObserveQuote))
	if err != nil {
		t.Fatalf("failed to build resolver: %v", err)
	}
	analyzer := analysis.New(resolver, compare.MustNew(nil, compare.WithLogger(zap.NewNop())),
		analysis.WithDefaultRegions("us-east-1", "us-central1"),
		analysis.WithLogger(zap.NewNop()),
	)
	handler := NewHandler(analyzer, registry, m, zap.NewNop(), "test")

	return NewRouter(handler, zap.NewNop(), RouterConfig{Metrics: m})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	if resp.Error.Code != code {
		t.Errorf("expected code %s, got %s (%s)", code, resp.Error.Code, resp.Error.Message)
	}
	if resp.RequestID == "" {
		t.Error("expected a request_id in the error envelope")
	}
	return resp
}

func TestHealthAndVersion(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var health HealthResponse
	decodeBody(t, w, &health)
	if health.Status != "healthy" || health.Version != "test" {
		t.Errorf("unexpected health response %+v", health)
	}

	w = do(t, h, "GET", "/version", "")
	var version VersionResponse
	decodeBody(t, w, &version)
	if version.Engine != "cloud-cost" || version.APIVersion != "v1" {
		t.Errorf("unexpected version response %+v", version)
	}
}

func TestListProvidersAndTemplates(t *testing.T) {
	h := setupTestAPI(t)

	var providers []struct {
		Provider string `json:"provider"`
	}
	decodeBody(t, do(t, h, "GET", "/providers", ""), &providers)
	if len(providers) != 2 || providers[0].Provider != "aws" || providers[1].Provider != "gcp" {
		t.Errorf("unexpected providers %+v", providers)
	}

	var templates []analysis.Template
	decodeBody(t, do(t, h, "GET", "/templates", ""), &templates)
	if len(templates) != 3 {
		t.Errorf("expected 3 templates, got %d", len(templates))
	}
}

func TestCompareComputeWithPrices(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/compare/compute", `{
		"a": {"provider": "aws", "resource": "m5.large", "price_per_month": 100},
		"b": {"provider": "gcp", "resource": "n2-standard-2", "price_per_month": 150},
		"workload": {"type": "general"}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result types.ComputeComparison
	decodeBody(t, w, &result)
	if result.Recommendation.Winner != types.ProviderAWS {
		t.Errorf("expected aws to win, got %s", result.Recommendation.Winner)
	}
	if math.Abs(result.CostSavingsPercentage-100.0/3) > 1e-6 {
		t.Errorf("savings percentage = %v", result.CostSavingsPercentage)
	}
}

func TestCompareComputeFromCatalog(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/compare/compute", `{"a": {"resource": "t3.medium"}, "b": {"resource": "e2-medium"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result types.ComputeComparison
	decodeBody(t, w, &result)
	if math.Abs(result.A.MonthlyCost-29.952) > 1e-9 || math.Abs(result.B.MonthlyCost-17.28) > 1e-9 {
		t.Errorf("catalog prices = %v / %v", result.A.MonthlyCost, result.B.MonthlyCost)
	}
	if result.WorkloadType != types.WorkloadGeneral {
		t.Errorf("workload defaulted to %q", result.WorkloadType)
	}
}

func TestCompareStorage(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/compare/storage", `{"a": {"resource": "s3_standard"}, "b": {"resource": "standard"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var result types.StorageComparison
	decodeBody(t, w, &result)
	if result.Recommendation.Winner != types.ProviderGCP || len(result.Projections) != 3 {
		t.Errorf("unexpected storage result %+v", result)
	}
}

func TestCompareInstances(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/compare/instances", `{"provider": "aws", "resources": ["m5.large", "t3.micro"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var ranked []struct {
		Resource     string  `json:"resource"`
		Region       string  `json:"region"`
		SavingsVsMax float64 `json:"savings_vs_max"`
	}
	decodeBody(t, w, &ranked)
	if len(ranked) != 2 || ranked[0].Resource != "t3.micro" || ranked[0].Region != "us-east-1" {
		t.Errorf("unexpected ranking %+v", ranked)
	}

	expectError(t, do(t, h, "POST", "/compare/instances", `{"provider": "aws"}`), http.StatusBadRequest, ErrCodeValidation)
	expectError(t, do(t, h, "POST", "/compare/instances", `{"provider": "azure", "resources": ["x"]}`), http.StatusBadRequest, ErrCodeValidation)
}

func TestCalculateTCO(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/tco", `{
		"compute_costs": {"aws": 100, "gcp": 150},
		"storage_costs": {"aws": 23, "gcp": 20}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var result types.TCOResult
	decodeBody(t, w, &result)
	if result.HorizonMonths != analysis.DefaultHorizonMonths {
		t.Errorf("expected default horizon, got %d", result.HorizonMonths)
	}

	resp := expectError(t, do(t, h, "POST", "/tco", `{"compute_costs": {}, "storage_costs": {}, "time_horizon_months": 0}`),
		http.StatusBadRequest, ErrCodeValidation)
	if resp.Error.Field != "time_horizon_months" {
		t.Errorf("expected field time_horizon_months, got %q", resp.Error.Field)
	}
}

func TestRecommendMigration(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/migration", `{"current_provider": "aws", "target_provider": "gcp", "workload_description": "web app"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var plan types.MigrationPlan
	decodeBody(t, w, &plan)
	if plan.BudgetTier != types.BudgetModerate || len(plan.Phases) != 5 {
		t.Errorf("unexpected plan %+v", plan)
	}

	expectError(t, do(t, h, "POST", "/migration", `{"current_provider": "azure", "target_provider": "gcp"}`),
		http.StatusBadRequest, ErrCodeValidation)
}

func TestAnalyze(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/analyze", `{"template": "startup_web_app", "time_horizon_months": 12}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var report analysis.Report
	decodeBody(t, w, &report)
	if report.Recommended != types.ProviderGCP || report.TCO.HorizonMonths != 12 {
		t.Errorf("unexpected report: recommended=%s horizon=%d", report.Recommended, report.TCO.HorizonMonths)
	}

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"unknown template", `{"template": "nope"}`, http.StatusNotFound, ErrCodeNotFound},
		{"empty request", `{}`, http.StatusBadRequest, ErrCodeValidation},
		{"both template and scenario", `{"template": "ml_training", "scenario": {}}`, http.StatusBadRequest, ErrCodeValidation},
		{"unknown region", `{"scenario": {
			"compute_a": {"resource": "t3.small", "region": "mars-1"},
			"compute_b": {"resource": "e2-small"},
			"storage_a": {"resource": "s3_standard"},
			"storage_b": {"resource": "standard"}
		}}`, http.StatusNotFound, ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, do(t, h, "POST", "/analyze", tt.body), tt.status, tt.code)
		})
	}
}

func TestSustainedUseDiscount(t *testing.T) {
	h := setupTestAPI(t)

	w := do(t, h, "POST", "/discount", `{"hourly_rate": 0.0475}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var d struct {
		Rate float64 `json:"discount_rate"`
	}
	decodeBody(t, w, &d)
	if math.Abs(d.Rate-0.30) > 1e-9 {
		t.Errorf("full month discount = %v, want 0.30", d.Rate)
	}

	expectError(t, do(t, h, "POST", "/discount", `{"hourly_rate": 0.05, "hours_per_month": -1}`),
		http.StatusBadRequest, ErrCodeValidation)
}

func TestRequestErrors(t *testing.T) {
	h := setupTestAPI(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed json", "/compare/compute", `{"a":`, http.StatusBadRequest, ErrCodeInvalidJSON},
		{"negative price", "/compare/compute", `{"a": {"provider": "aws", "price_per_month": -1}, "b": {"provider": "gcp", "price_per_month": 1}}`, http.StatusBadRequest, ErrCodeValidation},
		{"quote for the wrong side", "/compare/storage", `{"a": {"provider": "gcp", "price_per_gb_month": 0.02}, "b": {"provider": "gcp", "price_per_gb_month": 0.02}}`, http.StatusBadRequest, ErrCodeValidation},
		{"missing resource", "/compare/compute", `{"a": {}, "b": {"resource": "e2-micro"}}`, http.StatusBadRequest, ErrCodeValidation},
		{"unsupported region", "/compare/compute", `{"a": {"resource": "t3.micro", "region": "moon-1"}, "b": {"resource": "e2-micro"}}`, http.StatusNotFound, ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, do(t, h, "POST", tt.path, tt.body), tt.status, tt.code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := setupTestAPI(t)

	do(t, h, "POST", "/compare/compute", `{"a": {"resource": "t3.micro"}, "b": {"resource": "e2-micro"}}`)
	do(t, h, "POST", "/tco", `{"compute_costs": {}, "storage_costs": {}, "time_horizon_months": -1}`)

	w := do(t, h, "GET", "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`cloudcost_comparisons_total{kind="compute_instances"`,
		`cloudcost_validation_errors_total{operation="tco"} 1`,
		`cloudcost_http_requests_total{method="POST",path="/compare/compute",status="200"} 1`,
		`cloudcost_quote_lookup_duration_seconds`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

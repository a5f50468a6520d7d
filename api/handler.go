// Package api - HTTP handlers for the comparison engine
// Handlers decode requests, delegate to core packages and encode results.
// They contain NO cost logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"cloud-cost/clouds"
	"cloud-cost/core/analysis"
	"cloud-cost/core/output"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
	"cloud-cost/internal/logging"
	"cloud-cost/internal/metrics"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Handler serves the comparison endpoints
type Handler struct {
	analyzer *analysis.Analyzer
	registry *clouds.Registry
	metrics  *metrics.Metrics
	logger   *zap.Logger
	version  string
}

// NewHandler creates a handler. m may be nil to disable metrics.
func NewHandler(analyzer *analysis.Analyzer, registry *clouds.Registry, m *metrics.Metrics, logger *zap.Logger, version string) *Handler {
	if logger == nil {
		logger = logging.Named("api")
	}
	return &Handler{
		analyzer: analyzer,
		registry: registry,
		metrics:  m,
		logger:   logger,
		version:  version,
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Time:    time.Now().UTC(),
	})
}

// Version handles GET /version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, VersionResponse{
		Version:    h.version,
		Engine:     "cloud-cost",
		APIVersion: "v1",
	})
}

// ListProviders handles GET /providers
func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, output.Providers(h.registry))
}

// ListTemplates handles GET /templates
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, analysis.Templates())
}

// CompareCompute handles POST /compare/compute
func (h *Handler) CompareCompute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if !h.decode(w, r, &req) {
		return
	}

	qa, qb, err := h.analyzer.FillCompute(r.Context(), req.A, req.B)
	if err != nil {
		h.fail(w, r, "compare_compute", err)
		return
	}
	result, err := h.analyzer.Engine().CompareCompute(qa, qb, req.Workload)
	if err != nil {
		h.fail(w, r, "compare_compute", err)
		return
	}

	h.recordComparison(types.ComparisonCompute, result.Recommendation.Winner)
	h.writeJSON(w, http.StatusOK, result)
}

// CompareStorage handles POST /compare/storage
func (h *Handler) CompareStorage(w http.ResponseWriter, r *http.Request) {
	var req StorageRequest
	if !h.decode(w, r, &req) {
		return
	}

	qa, qb, err := h.analyzer.FillStorage(r.Context(), req.A, req.B)
	if err != nil {
		h.fail(w, r, "compare_storage", err)
		return
	}
	result, err := h.analyzer.Engine().CompareStorage(qa, qb)
	if err != nil {
		h.fail(w, r, "compare_storage", err)
		return
	}

	h.recordComparison(types.ComparisonStorage, result.Recommendation.Winner)
	h.writeJSON(w, http.StatusOK, result)
}

// CompareInstances handles POST /compare/instances
func (h *Handler) CompareInstances(w http.ResponseWriter, r *http.Request) {
	var req InstancesRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Resources) == 0 {
		h.fail(w, r, "compare_instances", cerrors.Validation("resources", "at least one instance type is required"))
		return
	}

	plugin, ok := h.registry.GetPlugin(req.Provider)
	if !ok {
		h.fail(w, r, "compare_instances", cerrors.Validation("provider", "unknown provider %q", req.Provider))
		return
	}
	region := req.Region
	if region == "" {
		region = plugin.DefaultRegion()
	}

	ranked, err := pricing.RankCompute(r.Context(), plugin.PricingSource(), region, req.Resources)
	if err != nil {
		h.fail(w, r, "compare_instances", err)
		return
	}
	h.writeJSON(w, http.StatusOK, ranked)
}

// CalculateTCO handles POST /tco
func (h *Handler) CalculateTCO(w http.ResponseWriter, r *http.Request) {
	var req TCORequest
	if !h.decode(w, r, &req) {
		return
	}

	horizon := analysis.DefaultHorizonMonths
	if req.TimeHorizonMonths != nil {
		horizon = *req.TimeHorizonMonths
	}

	result, err := h.analyzer.Engine().CalculateTCO(req.ComputeCosts, req.StorageCosts, req.AdditionalCosts, horizon)
	if err != nil {
		h.fail(w, r, "tco", err)
		return
	}

	h.recordComparison("tco", result.SavingsProvider)
	h.writeJSON(w, http.StatusOK, result)
}

// RecommendMigration handles POST /migration
func (h *Handler) RecommendMigration(w http.ResponseWriter, r *http.Request) {
	var req MigrationRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.analyzer.Engine().RecommendMigration(req.CurrentProvider, req.TargetProvider, req.WorkloadDescription, req.BudgetConstraint)
	if err != nil {
		h.fail(w, r, "migration", err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

// Analyze handles POST /analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !h.decode(w, r, &req) {
		return
	}

	var scenario analysis.Scenario
	switch {
	case req.Template != "" && req.Scenario != nil:
		h.fail(w, r, "analyze", cerrors.Validation("template", "give either a template or a scenario, not both"))
		return
	case req.Template != "":
		tmpl, err := analysis.LookupTemplate(req.Template)
		if err != nil {
			h.fail(w, r, "analyze", err)
			return
		}
		scenario = tmpl.Scenario
	case req.Scenario != nil:
		scenario = *req.Scenario
	default:
		h.fail(w, r, "analyze", cerrors.Validation("scenario", "a template or a scenario is required"))
		return
	}
	if req.TimeHorizonMonths != 0 {
		scenario.HorizonMonths = req.TimeHorizonMonths
	}

	report, err := h.analyzer.Analyze(r.Context(), scenario)
	if h.metrics != nil {
		h.metrics.RecordAnalysis(err)
	}
	if err != nil {
		h.fail(w, r, "analyze", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// SustainedUseDiscount handles POST /discount
func (h *Handler) SustainedUseDiscount(w http.ResponseWriter, r *http.Request) {
	var req DiscountRequest
	if !h.decode(w, r, &req) {
		return
	}

	var hours float64 = pricing.HoursPerMonth
	if req.HoursPerMonth != nil {
		hours = *req.HoursPerMonth
	}

	d, err := pricing.SustainedUseDiscount(req.HourlyRate, hours)
	if err != nil {
		h.fail(w, r, "discount", err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

// decode reads a JSON body into v, writing an INVALID_JSON error on failure
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, r, NewInvalidJSONError(err))
		return false
	}
	return true
}

// fail maps err to an API error and writes it
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	apiErr := MapDomainError(err)

	switch {
	case apiErr.Code == ErrCodeValidation:
		if h.metrics != nil {
			h.metrics.RecordValidationError(operation)
		}
	case apiErr.HTTPStatus >= http.StatusInternalServerError:
		h.logger.Error("request failed",
			zap.String("operation", operation),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}

	h.writeError(w, r, apiErr)
}

func (h *Handler) recordComparison(kind string, winner types.Provider) {
	if h.metrics != nil {
		h.metrics.RecordComparison(kind, winner)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, apiErr *APIError) {
	h.writeJSON(w, apiErr.HTTPStatus, ErrorResponse{
		Error: ErrorInfo{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Field:   apiErr.Field,
		},
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

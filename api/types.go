// Package api - API types for the comparison endpoints
// Request bodies map one to one onto engine operations.
package api

import (
	"time"

	"cloud-cost/core/analysis"
	"cloud-cost/core/types"
)

// ComputeRequest is the input to POST /compare/compute.
// A quote without a price is resolved from the provider catalog.
type ComputeRequest struct {
	A        types.PriceQuote           `json:"a"`
	B        types.PriceQuote           `json:"b"`
	Workload types.WorkloadRequirements `json:"workload"`
}

// StorageRequest is the input to POST /compare/storage
type StorageRequest struct {
	A types.PriceQuote `json:"a"`
	B types.PriceQuote `json:"b"`
}

// InstancesRequest is the input to POST /compare/instances
type InstancesRequest struct {
	Provider  types.Provider `json:"provider"`
	Region    string         `json:"region,omitempty"`
	Resources []string       `json:"resources"`
}

// TCORequest is the input to POST /tco
type TCORequest struct {
	ComputeCosts    types.CostsByProvider `json:"compute_costs"`
	StorageCosts    types.CostsByProvider `json:"storage_costs"`
	AdditionalCosts types.CostsByProvider `json:"additional_costs,omitempty"`

	// TimeHorizonMonths defaults to 36 when omitted
	TimeHorizonMonths *int `json:"time_horizon_months,omitempty"`
}

// MigrationRequest is the input to POST /migration
type MigrationRequest struct {
	CurrentProvider     types.Provider   `json:"current_provider"`
	TargetProvider      types.Provider   `json:"target_provider"`
	WorkloadDescription string           `json:"workload_description"`
	BudgetConstraint    types.BudgetTier `json:"budget_constraint,omitempty"`
}

// AnalyzeRequest is the input to POST /analyze. Exactly one of Template
// and Scenario is set.
type AnalyzeRequest struct {
	Template string             `json:"template,omitempty"`
	Scenario *analysis.Scenario `json:"scenario,omitempty"`

	// TimeHorizonMonths overrides the template horizon
	TimeHorizonMonths int `json:"time_horizon_months,omitempty"`
}

// DiscountRequest is the input to POST /discount
type DiscountRequest struct {
	HourlyRate float64 `json:"hourly_rate"`

	// HoursPerMonth defaults to a full 720 hour month
	HoursPerMonth *float64 `json:"hours_per_month,omitempty"`
}

// HealthResponse is the output of GET /health
type HealthResponse struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}

// VersionResponse is the output of GET /version
type VersionResponse struct {
	Version    string `json:"version"`
	Engine     string `json:"engine"`
	APIVersion string `json:"api_version"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error     ErrorInfo `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// ErrorInfo describes a failed request
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

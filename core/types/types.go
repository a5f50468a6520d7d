// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// Provider represents a cloud provider
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderGCP     Provider = "gcp"
	ProviderUnknown Provider = "unknown"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the provider is a known provider
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderGCP:
		return true
	default:
		return false
	}
}

// DisplayName returns the name used in reports
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAWS:
		return "AWS"
	case ProviderGCP:
		return "Google Cloud"
	default:
		return strings.ToUpper(string(p))
	}
}

// ParseProvider normalizes a user-supplied provider identifier.
func ParseProvider(s string) (Provider, bool) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// WorkloadType categorizes the workload being priced
type WorkloadType string

const (
	WorkloadGeneral          WorkloadType = "general"
	WorkloadComputeIntensive WorkloadType = "compute_intensive"
	WorkloadDataIntensive    WorkloadType = "data_intensive"
	WorkloadWebApplication   WorkloadType = "web_application"
	WorkloadBatchProcessing  WorkloadType = "batch_processing"
	WorkloadMachineLearning  WorkloadType = "machine_learning"
)

// KnownWorkloadTypes lists the workload types advertised to callers.
// Any other value is still accepted and scored as general purpose.
var KnownWorkloadTypes = []WorkloadType{
	WorkloadGeneral,
	WorkloadComputeIntensive,
	WorkloadDataIntensive,
	WorkloadWebApplication,
	WorkloadBatchProcessing,
	WorkloadMachineLearning,
}

// WorkloadRequirements describes the workload supplied per comparison call
type WorkloadRequirements struct {
	Type WorkloadType `json:"type" yaml:"type"`
}

// TypeOrDefault returns the workload type, defaulting to general
func (w WorkloadRequirements) TypeOrDefault() WorkloadType {
	if w.Type == "" {
		return WorkloadGeneral
	}
	return w.Type
}

// BudgetTier is the budget constraint for a migration
type BudgetTier string

const (
	BudgetTight    BudgetTier = "tight"
	BudgetModerate BudgetTier = "moderate"
	BudgetFlexible BudgetTier = "flexible"
)

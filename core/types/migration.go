// Package types - Migration plan types
package types

// ComplexityLevel buckets the estimated migration complexity
type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "Low"
	ComplexityMedium ComplexityLevel = "Medium"
	ComplexityHigh   ComplexityLevel = "High"
)

// MigrationPhase is one step of the standard migration sequence
type MigrationPhase struct {
	Name      string   `json:"name" yaml:"name"`
	TimeShare string   `json:"time_share" yaml:"time_share"`
	Tasks     []string `json:"tasks" yaml:"tasks"`
}

// MigrationPlan is the output of the migration heuristic
type MigrationPlan struct {
	CurrentProvider     Provider `json:"current_provider" yaml:"current_provider"`
	TargetProvider      Provider `json:"target_provider" yaml:"target_provider"`
	WorkloadDescription string   `json:"workload_description" yaml:"workload_description"`

	// ComplexityScore is word count / words-per-point. It is a rough proxy,
	// see ComplexityBasis.
	ComplexityScore float64         `json:"complexity_score" yaml:"complexity_score"`
	ComplexityLevel ComplexityLevel `json:"complexity_level" yaml:"complexity_level"`
	ComplexityBasis string          `json:"complexity_basis" yaml:"complexity_basis"`

	Duration string `json:"duration" yaml:"duration"`
	Effort   string `json:"effort" yaml:"effort"`

	BudgetTier       BudgetTier `json:"budget_tier" yaml:"budget_tier"`
	BudgetMultiplier float64    `json:"budget_multiplier" yaml:"budget_multiplier"`
	BaseCost         float64    `json:"base_cost" yaml:"base_cost"`
	EstimatedCost    float64    `json:"estimated_cost" yaml:"estimated_cost"`

	Phases          []MigrationPhase `json:"phases" yaml:"phases"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
	Risks           []string         `json:"risks" yaml:"risks"`
	Mitigations     []string         `json:"mitigations" yaml:"mitigations"`
	NextSteps       []string         `json:"next_steps" yaml:"next_steps"`
}

// Package types - Comparison and TCO result types
package types

// Comparison kinds
const (
	ComparisonCompute = "compute_instances"
	ComparisonStorage = "storage"
)

// CriterionScores holds one provider's per-criterion scores (0-10)
type CriterionScores struct {
	Cost        float64 `json:"cost" yaml:"cost"`
	Performance float64 `json:"performance" yaml:"performance"`
	Scalability float64 `json:"scalability" yaml:"scalability"`
	Reliability float64 `json:"reliability" yaml:"reliability"`
	Maintenance float64 `json:"maintenance" yaml:"maintenance"`

	// Final is the weighted sum of the criteria above
	Final float64 `json:"final" yaml:"final"`
}

// Recommendation is the verdict of a comparison
type Recommendation struct {
	Winner Provider `json:"winner" yaml:"winner"`

	// Confidence is in [0,1]
	Confidence float64 `json:"confidence" yaml:"confidence"`

	PrimaryReasons []string `json:"primary_reasons,omitempty" yaml:"primary_reasons,omitempty"`
	Reasoning      string   `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// ComputeSide is one provider's half of a compute comparison
type ComputeSide struct {
	Provider    Provider        `json:"provider" yaml:"provider"`
	Resource    string          `json:"resource" yaml:"resource"`
	Region      string          `json:"region,omitempty" yaml:"region,omitempty"`
	MonthlyCost float64         `json:"monthly_cost" yaml:"monthly_cost"`
	Scores      CriterionScores `json:"scores" yaml:"scores"`
}

// ComputeComparison is the ComparisonResult for two compute quotes
type ComputeComparison struct {
	ComparisonType string       `json:"comparison_type" yaml:"comparison_type"`
	WorkloadType   WorkloadType `json:"workload_type" yaml:"workload_type"`

	A ComputeSide `json:"a" yaml:"a"`
	B ComputeSide `json:"b" yaml:"b"`

	CostDifference        float64  `json:"cost_difference" yaml:"cost_difference"`
	CostSavingsProvider   Provider `json:"cost_savings_provider" yaml:"cost_savings_provider"`
	CostSavingsPercentage float64  `json:"cost_savings_percentage" yaml:"cost_savings_percentage"`

	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
}

// Side returns the half of the comparison for provider p
func (c *ComputeComparison) Side(p Provider) (ComputeSide, bool) {
	switch p {
	case c.A.Provider:
		return c.A, true
	case c.B.Provider:
		return c.B, true
	}
	return ComputeSide{}, false
}

// StorageDescriptor is the static description of a storage class.
// An unknown class yields the zero value.
type StorageDescriptor struct {
	Durability   string `json:"durability,omitempty" yaml:"durability,omitempty"`
	Availability string `json:"availability,omitempty" yaml:"availability,omitempty"`
	UseCase      string `json:"use_case,omitempty" yaml:"use_case,omitempty"`
}

// IsZero reports whether the descriptor is empty
func (d StorageDescriptor) IsZero() bool {
	return d == StorageDescriptor{}
}

// Verdict is the outcome of comparing one storage characteristic
type Verdict string

const (
	VerdictEquivalent Verdict = "equivalent"
	VerdictDifferent  Verdict = "different"
	VerdictSuperior   Verdict = "superior"
	VerdictUnknown    Verdict = "unknown"
)

// StorageAnalysis compares the descriptors of both storage classes
type StorageAnalysis struct {
	A StorageDescriptor `json:"a" yaml:"a"`
	B StorageDescriptor `json:"b" yaml:"b"`

	Durability   Verdict `json:"durability" yaml:"durability"`
	Availability Verdict `json:"availability" yaml:"availability"`

	// AvailabilityLeader is set when Availability is VerdictSuperior
	AvailabilityLeader Provider `json:"availability_leader,omitempty" yaml:"availability_leader,omitempty"`
}

// StorageSide is one provider's half of a storage comparison
type StorageSide struct {
	Provider       Provider `json:"provider" yaml:"provider"`
	StorageType    string   `json:"storage_type" yaml:"storage_type"`
	Region         string   `json:"region,omitempty" yaml:"region,omitempty"`
	CostPerGBMonth float64  `json:"cost_per_gb_month" yaml:"cost_per_gb_month"`
}

// StorageProjection is the monthly cost of both options at one volume
type StorageProjection struct {
	SizeGB float64 `json:"size_gb" yaml:"size_gb"`
	CostA  float64 `json:"cost_a" yaml:"cost_a"`
	CostB  float64 `json:"cost_b" yaml:"cost_b"`
}

// StorageComparison is the storage-flavoured ComparisonResult
type StorageComparison struct {
	ComparisonType string `json:"comparison_type" yaml:"comparison_type"`

	A StorageSide `json:"a" yaml:"a"`
	B StorageSide `json:"b" yaml:"b"`

	CostDifference        float64  `json:"cost_difference" yaml:"cost_difference"`
	CostSavingsProvider   Provider `json:"cost_savings_provider" yaml:"cost_savings_provider"`
	CostSavingsPercentage float64  `json:"cost_savings_percentage" yaml:"cost_savings_percentage"`

	Analysis    StorageAnalysis     `json:"storage_analysis" yaml:"storage_analysis"`
	Projections []StorageProjection `json:"projections" yaml:"projections"`

	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
}

// CostsByProvider maps a provider to a monthly cost. Missing keys are zero.
type CostsByProvider map[Provider]float64

// MonthlyBreakdown is one provider's monthly cost split
type MonthlyBreakdown struct {
	Compute     float64 `json:"compute_monthly" yaml:"compute_monthly"`
	Storage     float64 `json:"storage_monthly" yaml:"storage_monthly"`
	Additional  float64 `json:"additional_monthly" yaml:"additional_monthly"`
	Operational float64 `json:"operational_monthly" yaml:"operational_monthly"`
	Total       float64 `json:"total_monthly" yaml:"total_monthly"`
}

// TCOSide is one provider's half of a TCO projection
type TCOSide struct {
	Provider Provider         `json:"provider" yaml:"provider"`
	Monthly  MonthlyBreakdown `json:"breakdown" yaml:"breakdown"`
	TCO      float64          `json:"tco" yaml:"tco"`
}

// TCOResult is a flat linear projection of both providers' monthly totals
type TCOResult struct {
	HorizonMonths int `json:"time_horizon_months" yaml:"time_horizon_months"`

	A TCOSide `json:"a" yaml:"a"`
	B TCOSide `json:"b" yaml:"b"`

	Savings           float64  `json:"savings" yaml:"savings"`
	SavingsProvider   Provider `json:"savings_provider" yaml:"savings_provider"`
	SavingsPercentage float64  `json:"savings_percentage" yaml:"savings_percentage"`
}

// MonthlySavings returns the savings per month of the horizon
func (r *TCOResult) MonthlySavings() float64 {
	if r.HorizonMonths <= 0 {
		return 0
	}
	return r.Savings / float64(r.HorizonMonths)
}

// AnnualSavings returns the savings per year of the horizon
func (r *TCOResult) AnnualSavings() float64 {
	return r.MonthlySavings() * 12
}

// ProjectedSavings extrapolates the monthly savings to another horizon
func (r *TCOResult) ProjectedSavings(months int) float64 {
	return r.MonthlySavings() * float64(months)
}

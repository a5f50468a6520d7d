package compare

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cloud-cost/core/types"
)

// ComplexityBasis labels how the complexity score is derived
const ComplexityBasis = "approximation: word count of the workload description divided by %g"

var migrationPhases = []types.MigrationPhase{
	{
		Name:      "Planning and assessment",
		TimeShare: "10-15%",
		Tasks:     []string{"Audit current infrastructure", "Map dependencies", "Define target architecture"},
	},
	{
		Name:      "Preparation and setup",
		TimeShare: "20-25%",
		Tasks:     []string{"Configure %s environment", "Set up migration tooling", "Test connectivity"},
	},
	{
		Name:      "Data migration",
		TimeShare: "30-40%",
		Tasks:     []string{"Migrate databases", "Transfer files", "Synchronize data"},
	},
	{
		Name:      "Application migration",
		TimeShare: "25-30%",
		Tasks:     []string{"Refactor code where needed", "Configure services", "Run functional tests"},
	},
	{
		Name:      "Validation and go-live",
		TimeShare: "10-15%",
		Tasks:     []string{"Performance testing", "Security validation", "Final cutover"},
	},
}

var targetTooling = map[types.Provider][]string{
	types.ProviderAWS: {
		"Use AWS Migration Hub to track the migration",
		"Consider AWS Database Migration Service for databases",
		"Review the workload against the AWS Well-Architected Framework",
		"Adopt AWS CloudFormation for infrastructure as code",
	},
	types.ProviderGCP: {
		"Use Google Cloud Migration Center",
		"Use the GCP Database Migration Service for databases",
		"Adopt Deployment Manager for infrastructure as code",
		"Consider Anthos for hybrid workloads",
	},
}

var (
	migrationRisks = []string{
		"Downtime during migration",
		"Data loss",
		"Performance regressions",
		"Unexpected costs",
	}
	migrationMitigations = []string{
		"Migrate in phases with a rollback plan",
		"Take a full backup before migrating",
		"Test extensively in a staging environment",
		"Monitor costs continuously",
	}
	migrationNextSteps = []string{
		"Run a detailed infrastructure assessment",
		"Write a detailed migration plan",
		"Set up a test environment",
		"Run a pilot migration",
		"Execute the full migration",
	}
)

// RecommendMigration estimates a migration from current to target.
//
// Complexity is the word count of description divided by the policy's
// words-per-point, bucketed by the policy's complexity thresholds. This is a
// coarse approximation and is labelled as such in the plan. The base cost of
// the bucket is scaled by the budget tier multiplier; unknown tiers use 1.0.
func (e *Engine) RecommendMigration(current, target types.Provider, description string, budget types.BudgetTier) (*types.MigrationPlan, error) {
	if err := checkProvider("current_provider", current, e.policy.Knows); err != nil {
		return nil, err
	}
	if err := checkProvider("target_provider", target, e.policy.Knows); err != nil {
		return nil, err
	}
	if budget == "" {
		budget = types.BudgetModerate
	}

	words := len(strings.Fields(description))
	score := float64(words) / e.policy.WordsPerComplexityPoint
	bucket := e.policy.ComplexityFor(score)
	multiplier := e.policy.BudgetMultiplier(budget)

	plan := &types.MigrationPlan{
		CurrentProvider:     current,
		TargetProvider:      target,
		WorkloadDescription: description,
		ComplexityScore:     score,
		ComplexityLevel:     bucket.Level,
		ComplexityBasis:     fmt.Sprintf(ComplexityBasis, e.policy.WordsPerComplexityPoint),
		Duration:            bucket.Duration,
		Effort:              bucket.Effort,
		BudgetTier:          budget,
		BudgetMultiplier:    multiplier,
		BaseCost:            bucket.BaseCost,
		EstimatedCost:       bucket.BaseCost * multiplier,
		Phases:              phasesFor(target),
		Recommendations:     append([]string(nil), targetTooling[target]...),
		Risks:               append([]string(nil), migrationRisks...),
		Mitigations:         append([]string(nil), migrationMitigations...),
		NextSteps:           append([]string(nil), migrationNextSteps...),
	}

	e.logger.Debug("recommended migration",
		zap.String("current", string(current)),
		zap.String("target", string(target)),
		zap.Int("words", words),
		zap.String("complexity", string(bucket.Level)),
	)
	return plan, nil
}

func phasesFor(target types.Provider) []types.MigrationPhase {
	phases := make([]types.MigrationPhase, len(migrationPhases))
	for i, ph := range migrationPhases {
		tasks := make([]string, len(ph.Tasks))
		for j, t := range ph.Tasks {
			if strings.Contains(t, "%s") {
				t = fmt.Sprintf(t, target.DisplayName())
			}
			tasks[j] = t
		}
		phases[i] = types.MigrationPhase{Name: ph.Name, TimeShare: ph.TimeShare, Tasks: tasks}
	}
	return phases
}

package analysis

import (
	"sort"

	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// Template is a named, pre-configured scenario
type Template struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Scenario    Scenario `json:"scenario" yaml:"scenario"`
}

var templates = map[string]Template{
	"startup_web_app": {
		ID:          "startup_web_app",
		Name:        "Startup Web Application",
		Description: "Typical setup for a startup web application",
		Scenario: Scenario{
			Workload:      types.WorkloadWebApplication,
			ComputeA:      pricing.Request{Resource: "t3.small"},
			ComputeB:      pricing.Request{Resource: "e2-small"},
			StorageA:      pricing.Request{Resource: "s3_standard"},
			StorageB:      pricing.Request{Resource: "standard"},
			StorageGB:     100,
			MonthlyBudget: 200,
		},
	},
	"enterprise_data_processing": {
		ID:          "enterprise_data_processing",
		Name:        "Enterprise Data Processing",
		Description: "Setup for enterprise data processing",
		Scenario: Scenario{
			Workload:      types.WorkloadDataIntensive,
			ComputeA:      pricing.Request{Resource: "c5.2xlarge"},
			ComputeB:      pricing.Request{Resource: "c2-standard-8"},
			StorageA:      pricing.Request{Resource: "s3_standard"},
			StorageB:      pricing.Request{Resource: "standard"},
			StorageGB:     10000,
			MonthlyBudget: 2000,
		},
	},
	"ml_training": {
		ID:          "ml_training",
		Name:        "Machine Learning Training",
		Description: "Setup for training machine learning models",
		Scenario: Scenario{
			Workload:      types.WorkloadMachineLearning,
			ComputeA:      pricing.Request{Resource: "m5.xlarge"},
			ComputeB:      pricing.Request{Resource: "n2-standard-4"},
			StorageA:      pricing.Request{Resource: "s3_standard"},
			StorageB:      pricing.Request{Resource: "standard"},
			StorageGB:     5000,
			MonthlyBudget: 1000,
		},
	},
}

// Templates returns the built-in templates ordered by ID
func Templates() []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		t.Scenario.Name = t.ID
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LookupTemplate returns the template with the given ID
func LookupTemplate(id string) (Template, error) {
	t, ok := templates[id]
	if !ok {
		return Template{}, cerrors.NotFound("template", id)
	}
	t.Scenario.Name = t.ID
	return t, nil
}

// Package aws provides the AWS cloud plugin.
package aws

import (
	"cloud-cost/clouds/aws/pricing"
	corePricing "cloud-cost/core/pricing"
	"cloud-cost/core/types"
)

// Plugin implements the AWS cloud plugin
type Plugin struct {
	initialized bool
	region      string
	catalog     *corePricing.StaticCatalog
}

// New creates a new AWS plugin
func New() *Plugin {
	return &Plugin{
		region: pricing.DefaultRegion,
	}
}

// NewWithRegion creates a new AWS plugin with a specific default region
func NewWithRegion(region string) *Plugin {
	return &Plugin{
		region: region,
	}
}

// Provider returns the cloud provider identifier
func (p *Plugin) Provider() types.Provider {
	return types.ProviderAWS
}

// Name returns a human-readable name
func (p *Plugin) Name() string {
	return "Amazon Web Services"
}

// Description returns a description of the plugin
func (p *Plugin) Description() string {
	return "EC2 On-Demand and S3/EBS storage rates from a static fallback table"
}

// DefaultRegion returns the region used when a request names none
func (p *Plugin) DefaultRegion() string {
	return p.region
}

// Initialize sets up the plugin
func (p *Plugin) Initialize() error {
	p.catalog = pricing.NewAWSPricingSource()
	p.initialized = true
	return nil
}

// PricingSource returns the pricing source for AWS
func (p *Plugin) PricingSource() corePricing.QuoteSource {
	if !p.initialized {
		return nil
	}
	return p.catalog
}

// Regions returns the supported AWS regions
func (p *Plugin) Regions() []corePricing.Region {
	return pricing.Regions
}

// ComputeTypes returns the priced EC2 instance types
func (p *Plugin) ComputeTypes() []string {
	return pricing.NewAWSPricingSource().ComputeTypes()
}

// StorageTypes returns the priced storage classes
func (p *Plugin) StorageTypes() []string {
	return pricing.NewAWSPricingSource().StorageTypes()
}

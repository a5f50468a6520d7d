// Package gcp provides the Google Cloud plugin.
package gcp

import (
	"cloud-cost/clouds/gcp/pricing"
	corePricing "cloud-cost/core/pricing"
	"cloud-cost/core/types"
)

// Plugin implements the GCP cloud plugin
type Plugin struct {
	region  string
	catalog *corePricing.StaticCatalog
}

// New creates a new GCP plugin
func New() *Plugin {
	return &Plugin{region: pricing.DefaultRegion}
}

// NewWithRegion creates a new GCP plugin with a specific default region
func NewWithRegion(region string) *Plugin {
	return &Plugin{region: region}
}

func (p *Plugin) Provider() types.Provider { return types.ProviderGCP }
func (p *Plugin) Name() string             { return "Google Cloud Platform" }
func (p *Plugin) DefaultRegion() string    { return p.region }

// Description returns a description of the plugin
func (p *Plugin) Description() string {
	return "Compute Engine On-Demand and Cloud Storage rates from a static fallback table"
}

// Initialize sets up the plugin
func (p *Plugin) Initialize() error {
	p.catalog = pricing.NewGCPPricingSource()
	return nil
}

// PricingSource returns the pricing source for GCP
func (p *Plugin) PricingSource() corePricing.QuoteSource {
	if p.catalog == nil {
		return nil
	}
	return p.catalog
}

// Regions returns the supported GCP regions
func (p *Plugin) Regions() []corePricing.Region {
	return pricing.Regions
}

// ComputeTypes returns the priced machine types
func (p *Plugin) ComputeTypes() []string {
	return pricing.NewGCPPricingSource().ComputeTypes()
}

// StorageTypes returns the priced storage classes
func (p *Plugin) StorageTypes() []string {
	return pricing.NewGCPPricingSource().StorageTypes()
}

// Package pricing provides the GCP static pricing catalog.
package pricing

import (
	"github.com/shopspring/decimal"

	corePricing "cloud-cost/core/pricing"
	"cloud-cost/core/types"
)

// Compute Engine On-Demand hourly rates, us-central1
var machinePricing = map[string]string{
	"e2-micro":      "0.006",
	"e2-small":      "0.012",
	"e2-medium":     "0.024",
	"e2-standard-2": "0.048",
	"e2-standard-4": "0.096",
	"n1-standard-1": "0.0475",
	"n1-standard-2": "0.095",
	"n1-standard-4": "0.19",
	"n2-standard-2": "0.097",
	"n2-standard-4": "0.194",
	"c2-standard-4": "0.168",
	"c2-standard-8": "0.336",
}

// Cloud Storage rates per GB-month, us-central1
var storagePricing = map[string]string{
	"standard":       "0.020",
	"nearline":       "0.010",
	"coldline":       "0.004",
	"archive":        "0.0012",
	"regional":       "0.020",
	"multi-regional": "0.026",
}

// Regions lists the supported GCP regions
var Regions = []corePricing.Region{
	{Code: "us-central1", Name: "Iowa", Area: "North America"},
	{Code: "us-east1", Name: "South Carolina", Area: "North America"},
	{Code: "us-east4", Name: "Northern Virginia", Area: "North America"},
	{Code: "us-west1", Name: "Oregon", Area: "North America"},
	{Code: "us-west2", Name: "Los Angeles", Area: "North America"},
	{Code: "us-west3", Name: "Salt Lake City", Area: "North America"},
	{Code: "us-west4", Name: "Las Vegas", Area: "North America"},
	{Code: "europe-west1", Name: "Belgium", Area: "Europe"},
	{Code: "europe-west2", Name: "London", Area: "Europe"},
	{Code: "europe-west3", Name: "Frankfurt", Area: "Europe"},
	{Code: "europe-west4", Name: "Netherlands", Area: "Europe"},
	{Code: "europe-west6", Name: "Zurich", Area: "Europe"},
	{Code: "asia-east1", Name: "Taiwan", Area: "Asia Pacific"},
	{Code: "asia-east2", Name: "Hong Kong", Area: "Asia Pacific"},
	{Code: "asia-northeast1", Name: "Tokyo", Area: "Asia Pacific"},
	{Code: "asia-southeast1", Name: "Singapore", Area: "Asia Pacific"},
	{Code: "asia-south1", Name: "Mumbai", Area: "Asia Pacific"},
	{Code: "southamerica-east1", Name: "Sao Paulo", Area: "South America"},
}

// DefaultRegion is the region used when none is given
const DefaultRegion = "us-central1"

// NewGCPPricingSource creates the GCP static catalog
func NewGCPPricingSource() *corePricing.StaticCatalog {
	return corePricing.NewStaticCatalog(corePricing.CatalogConfig{
		Provider:       types.ProviderGCP,
		Compute:        mustDecimal(machinePricing),
		ComputeDefault: decimal.RequireFromString("0.05"),
		Storage:        mustDecimal(storagePricing),
		StorageDefault: decimal.RequireFromString("0.02"),
		Regions:        Regions,
		Rules: []corePricing.RegionRule{
			{
				Prefix:  "europe-",
				Compute: decimal.RequireFromString("1.15"),
				Storage: decimal.RequireFromString("1.1"),
			},
		},
	})
}

func mustDecimal(m map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = decimal.RequireFromString(v)
	}
	return out
}

// Package pricing provides the AWS static pricing catalog.
package pricing

import (
	"github.com/shopspring/decimal"

	corePricing "cloud-cost/core/pricing"
	"cloud-cost/core/types"
)

// EC2 On-Demand hourly rates, us-east-1
var instancePricing = map[string]float64{
	"t3.micro":  0.0104,
	"t3.small":  0.0208,
	"t3.medium": 0.0416,
	"t3.large":  0.0832,
	"m5.large":  0.096,
	"m5.xlarge": 0.192,
	"c5.large":  0.085,
	"c5.xlarge": 0.17,
}

// Storage rates per GB-month, us-east-1
var storagePricing = map[string]float64{
	"s3_standard": 0.023,
	"s3_ia":       0.0125,
	"s3_glacier":  0.004,
	"gp2":         0.10,
	"gp3":         0.08,
	"io1":         0.125,
}

// Regions lists the supported AWS regions
var Regions = []corePricing.Region{
	{Code: "us-east-1", Name: "US East (N. Virginia)", Area: "North America"},
	{Code: "us-east-2", Name: "US East (Ohio)", Area: "North America"},
	{Code: "us-west-1", Name: "US West (N. California)", Area: "North America"},
	{Code: "us-west-2", Name: "US West (Oregon)", Area: "North America"},
	{Code: "eu-west-1", Name: "Europe (Ireland)", Area: "Europe"},
	{Code: "eu-west-2", Name: "Europe (London)", Area: "Europe"},
	{Code: "eu-central-1", Name: "Europe (Frankfurt)", Area: "Europe"},
	{Code: "ap-southeast-1", Name: "Asia Pacific (Singapore)", Area: "Asia Pacific"},
	{Code: "ap-southeast-2", Name: "Asia Pacific (Sydney)", Area: "Asia Pacific"},
	{Code: "ap-northeast-1", Name: "Asia Pacific (Tokyo)", Area: "Asia Pacific"},
	{Code: "sa-east-1", Name: "South America (Sao Paulo)", Area: "South America"},
}

// DefaultRegion is the region used when none is given
const DefaultRegion = "us-east-1"

// NewAWSPricingSource creates the AWS static catalog
func NewAWSPricingSource() *corePricing.StaticCatalog {
	return corePricing.NewStaticCatalog(corePricing.CatalogConfig{
		Provider:       types.ProviderAWS,
		Compute:        toDecimal(instancePricing),
		ComputeDefault: decimal.NewFromFloat(0.10),
		Storage:        toDecimal(storagePricing),
		StorageDefault: decimal.NewFromFloat(0.10),
		Regions:        Regions,
		Rules: []corePricing.RegionRule{
			{Prefix: "eu-", Compute: decimal.NewFromFloat(1.2), Storage: decimal.NewFromFloat(1.1)},
		},
	})
}

func toDecimal(m map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}

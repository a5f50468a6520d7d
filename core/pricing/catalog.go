package pricing

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// HoursPerMonth is the month length used to derive monthly prices
const HoursPerMonth = 24 * 30

// StaticNote marks quotes that come from a fallback table
const StaticNote = "static fallback table"

var hoursPerMonth = decimal.NewFromInt(HoursPerMonth)

// MonthlyFromHourly converts an hourly rate to a 720 hour month
func MonthlyFromHourly(hourly decimal.Decimal) decimal.Decimal {
	return hourly.Mul(hoursPerMonth)
}

// Region is a supported pricing region
type Region struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Area string `json:"area" yaml:"area"`
}

// RegionRule scales prices in every region whose code has Prefix
type RegionRule struct {
	Prefix  string
	Compute decimal.Decimal
	Storage decimal.Decimal
}

// CatalogConfig describes a static catalog
type CatalogConfig struct {
	Provider types.Provider

	// Compute maps instance type to hourly rate
	Compute        map[string]decimal.Decimal
	ComputeDefault decimal.Decimal

	// Storage maps storage class to rate per GB-month
	Storage        map[string]decimal.Decimal
	StorageDefault decimal.Decimal

	Regions []Region
	Rules   []RegionRule
}

// StaticCatalog is a QuoteSource backed by fixed rate tables.
// It is read-only after construction.
type StaticCatalog struct {
	cfg     CatalogConfig
	regions map[string]Region
}

// NewStaticCatalog creates a catalog from cfg
func NewStaticCatalog(cfg CatalogConfig) *StaticCatalog {
	regions := make(map[string]Region, len(cfg.Regions))
	for _, r := range cfg.Regions {
		regions[r.Code] = r
	}
	return &StaticCatalog{cfg: cfg, regions: regions}
}

// Provider returns the catalog provider
func (c *StaticCatalog) Provider() types.Provider {
	return c.cfg.Provider
}

// ComputeQuote prices an instance type. Unknown types get the default rate.
func (c *StaticCatalog) ComputeQuote(ctx context.Context, resource, region string) (types.PriceQuote, error) {
	if err := c.check(ctx, region); err != nil {
		return types.PriceQuote{}, err
	}

	rate, known := c.cfg.Compute[resource]
	if !known {
		rate = c.cfg.ComputeDefault
	}
	hourly := rate.Mul(c.multiplier(region, func(r RegionRule) decimal.Decimal { return r.Compute }))
	monthly := MonthlyFromHourly(hourly)

	return types.PriceQuote{
		Provider:      c.cfg.Provider,
		Resource:      resource,
		Region:        region,
		PricePerHour:  types.Price(hourly.InexactFloat64()),
		PricePerMonth: types.Price(monthly.InexactFloat64()),
		Currency:      types.CurrencyUSD,
		PricingModel:  "On-Demand",
		Note:          note(known),
	}, nil
}

// StorageQuote prices a storage class. Unknown classes get the default rate.
func (c *StaticCatalog) StorageQuote(ctx context.Context, storageType, region string) (types.PriceQuote, error) {
	if err := c.check(ctx, region); err != nil {
		return types.PriceQuote{}, err
	}

	rate, known := c.cfg.Storage[storageType]
	if !known {
		rate = c.cfg.StorageDefault
	}
	perGB := rate.Mul(c.multiplier(region, func(r RegionRule) decimal.Decimal { return r.Storage }))

	return types.PriceQuote{
		Provider:        c.cfg.Provider,
		Resource:        storageType,
		Region:          region,
		PricePerGBMonth: types.Price(perGB.InexactFloat64()),
		Currency:        types.CurrencyUSD,
		Note:            note(known),
	}, nil
}

// SupportedRegions returns the region codes in declaration order
func (c *StaticCatalog) SupportedRegions() []string {
	codes := make([]string, 0, len(c.cfg.Regions))
	for _, r := range c.cfg.Regions {
		codes = append(codes, r.Code)
	}
	return codes
}

// Regions returns the region descriptions in declaration order
func (c *StaticCatalog) Regions() []Region {
	return append([]Region(nil), c.cfg.Regions...)
}

// ComputeTypes returns the priced instance types, sorted
func (c *StaticCatalog) ComputeTypes() []string {
	return sortedKeys(c.cfg.Compute)
}

// StorageTypes returns the priced storage classes, sorted
func (c *StaticCatalog) StorageTypes() []string {
	return sortedKeys(c.cfg.Storage)
}

func (c *StaticCatalog) check(ctx context.Context, region string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := c.regions[region]; !ok {
		return cerrors.NotFound(string(c.cfg.Provider)+" region", region).
			WithContext("supported", strings.Join(c.SupportedRegions(), ", "))
	}
	return nil
}

func (c *StaticCatalog) multiplier(region string, pick func(RegionRule) decimal.Decimal) decimal.Decimal {
	for _, r := range c.cfg.Rules {
		if strings.HasPrefix(region, r.Prefix) {
			return pick(r)
		}
	}
	return decimal.NewFromInt(1)
}

func note(known bool) string {
	if known {
		return StaticNote
	}
	return StaticNote + ", default rate"
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

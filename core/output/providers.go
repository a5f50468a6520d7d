package output

import (
	"cloud-cost/clouds"
	"cloud-cost/core/types"
)

// ProviderInfo describes a registered provider for listings
type ProviderInfo struct {
	Provider      types.Provider `json:"provider" yaml:"provider"`
	Name          string         `json:"name" yaml:"name"`
	Description   string         `json:"description" yaml:"description"`
	DefaultRegion string         `json:"default_region" yaml:"default_region"`
	Regions       []string       `json:"regions" yaml:"regions"`
	ComputeTypes  []string       `json:"compute_types" yaml:"compute_types"`
	StorageTypes  []string       `json:"storage_types" yaml:"storage_types"`
}

// Providers describes every plugin in reg, ordered by provider
func Providers(reg *clouds.Registry) []ProviderInfo {
	plugins := reg.GetAll()
	out := make([]ProviderInfo, 0, len(plugins))
	for _, p := range plugins {
		regions := make([]string, 0, len(p.Regions()))
		for _, r := range p.Regions() {
			regions = append(regions, r.Code)
		}
		out = append(out, ProviderInfo{
			Provider:      p.Provider(),
			Name:          p.Name(),
			Description:   p.Description(),
			DefaultRegion: p.DefaultRegion(),
			Regions:       regions,
			ComputeTypes:  p.ComputeTypes(),
			StorageTypes:  p.StorageTypes(),
		})
	}
	return out
}

// Package clouds provides the cloud plugin system.
// Each provider is a plugin that contributes a pricing source and its
// catalog metadata; the registry pairs two of them into a resolver.
package clouds

import (
	"sort"
	"sync"

	"cloud-cost/clouds/aws"
	"cloud-cost/clouds/gcp"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// Plugin defines the interface for a cloud provider plugin
type Plugin interface {
	// Provider returns the cloud provider identifier
	Provider() types.Provider

	// Name returns a human-readable name
	Name() string

	// Description returns a description of the plugin
	Description() string

	// Initialize sets up the plugin
	Initialize() error

	// PricingSource returns the quote source for this provider
	PricingSource() pricing.QuoteSource

	// DefaultRegion returns the region used when a request names none
	DefaultRegion() string

	// Regions returns all supported regions
	Regions() []pricing.Region

	// ComputeTypes returns the priced instance types
	ComputeTypes() []string

	// StorageTypes returns the priced storage classes
	StorageTypes() []string
}

// Registry manages cloud plugin registration
type Registry struct {
	mu      sync.RWMutex
	plugins map[types.Provider]Plugin
}

// NewRegistry creates a new plugin registry
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[types.Provider]Plugin),
	}
}

// Register adds a plugin to the registry
func (r *Registry) Register(plugin Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[plugin.Provider()]; exists {
		return cerrors.New(cerrors.TypeConfig, "plugin already registered").
			WithContext("provider", string(plugin.Provider()))
	}

	// Initialize the plugin
	if err := plugin.Initialize(); err != nil {
		return cerrors.Wrapf(cerrors.TypeConfig, err, "failed to initialize plugin %s", plugin.Provider())
	}

	r.plugins[plugin.Provider()] = plugin
	return nil
}

// GetPlugin returns a plugin by provider
func (r *Registry) GetPlugin(provider types.Provider) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[provider]
	return plugin, ok
}

// GetAll returns all registered plugins ordered by provider
func (r *Registry) GetAll() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugins := make([]Plugin, 0, len(r.plugins))
	for _, plugin := range r.plugins {
		plugins = append(plugins, plugin)
	}
	sort.Slice(plugins, func(i, j int) bool {
		return plugins[i].Provider() < plugins[j].Provider()
	})
	return plugins
}

// Providers returns all registered provider IDs, sorted
func (r *Registry) Providers() []types.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]types.Provider, 0, len(r.plugins))
	for p := range r.plugins {
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i] < providers[j] })
	return providers
}

// Resolver pairs the pricing sources of a and b
func (r *Registry) Resolver(a, b types.Provider, opts ...pricing.ResolverOption) (*pricing.Resolver, error) {
	pa, ok := r.GetPlugin(a)
	if !ok {
		return nil, cerrors.NotFound("provider plugin", string(a))
	}
	pb, ok := r.GetPlugin(b)
	if !ok {
		return nil, cerrors.NotFound("provider plugin", string(b))
	}
	return pricing.NewResolver(pa.PricingSource(), pb.PricingSource(), opts...)
}

// NewRegistryWithRegions creates a registry with the built-in plugins.
// Providers present in defaults use the given default region.
func NewRegistryWithRegions(defaults map[types.Provider]string) (*Registry, error) {
	awsPlugin, gcpPlugin := aws.New(), gcp.New()
	if region := defaults[types.ProviderAWS]; region != "" {
		awsPlugin = aws.NewWithRegion(region)
	}
	if region := defaults[types.ProviderGCP]; region != "" {
		gcpPlugin = gcp.NewWithRegion(region)
	}

	r := NewRegistry()
	for _, p := range []Plugin{awsPlugin, gcpPlugin} {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Global default registry
var defaultRegistry = NewRegistry()

func init() {
	for _, p := range []Plugin{aws.New(), gcp.New()} {
		if err := defaultRegistry.Register(p); err != nil {
			panic(err)
		}
	}
}

// GetDefaultRegistry returns the default registry with the built-in
// AWS and GCP plugins
func GetDefaultRegistry() *Registry {
	return defaultRegistry
}

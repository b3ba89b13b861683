package providers

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

/* Loader manages provider configuration from providers.yaml
 * Provides in-memory lookup by name and role
 */

// Config represents the structure of providers.yaml
type Config struct {
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig represents a single provider in the YAML file
type ProviderConfig struct {
	Name              string `yaml:"name"`
	Role              string `yaml:"role"`
	BaseURL           string `yaml:"base_url"`
	APIKey            string `yaml:"api_key"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"` // Default: 10
	RequestsPerMinute int    `yaml:"requests_per_minute"`
	Burst             int    `yaml:"burst"`
	MaxResults        int    `yaml:"max_results"`
}

const defaultTimeoutSeconds = 10

type Loader struct {
	providers map[string]*Provider
}

func NewLoader() *Loader {
	return &Loader{
		providers: make(map[string]*Provider),
	}
}

// Defaults returns a loader with Open Library as primary and Google Books as secondary and catalog.
func Defaults() *Loader {
	l := NewLoader()
	// Built-in values always validate.
	_ = l.apply(Config{Providers: []ProviderConfig{
		{Name: OpenLibrary, Role: "primary", RequestsPerMinute: 100, Burst: 5},
		{Name: GoogleBooks, Role: "secondary", RequestsPerMinute: 60, Burst: 5, MaxResults: 20},
	}})
	return l
}

// Load reads and parses the providers.yaml file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading providers file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing providers YAML: %w", err)
	}

	return l.apply(config)
}

func (l *Loader) apply(config Config) error {
	loaded := make(map[string]*Provider, len(config.Providers))
	roles := make(map[Role]string)

	for _, pc := range config.Providers {
		timeout := pc.TimeoutSeconds
		if timeout == 0 {
			timeout = defaultTimeoutSeconds
		}

		p := &Provider{
			Name:              pc.Name,
			Role:              NewRole(pc.Role),
			BaseURL:           pc.BaseURL,
			APIKey:            os.ExpandEnv(pc.APIKey),
			Timeout:           time.Duration(timeout) * time.Second,
			RequestsPerMinute: pc.RequestsPerMinute,
			Burst:             pc.Burst,
			MaxResults:        pc.MaxResults,
		}

		if err := p.Validate(); err != nil {
			return fmt.Errorf("validating provider: %w", err)
		}
		if _, dup := loaded[p.Name]; dup {
			return fmt.Errorf("provider %s is configured twice", p.Name)
		}
		if other, taken := roles[p.Role]; taken {
			return fmt.Errorf("role %s is taken by both %s and %s", p.Role, other, p.Name)
		}

		loaded[p.Name] = p
		roles[p.Role] = p.Name
	}

	if _, ok := roles[Primary]; !ok {
		return fmt.Errorf("a primary provider is required")
	}

	l.providers = loaded
	return nil
}

// Get retrieves a provider by name
func (l *Loader) Get(name string) (*Provider, error) {
	p, exists := l.providers[name]
	if !exists {
		return nil, fmt.Errorf("provider not found: %s", name)
	}
	return p, nil
}

// ByRole returns the provider holding a role, if any
func (l *Loader) ByRole(role Role) (*Provider, bool) {
	for _, p := range l.providers {
		if p.Role == role {
			return p, true
		}
	}
	return nil, false
}

// List returns all loaded providers, primary first
func (l *Loader) List() []*Provider {
	list := make([]*Provider, 0, len(l.providers))
	for _, p := range l.providers {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Role < list[j].Role })
	return list
}

// Exists checks if a provider is configured
func (l *Loader) Exists(name string) bool {
	_, exists := l.providers[name]
	return exists
}

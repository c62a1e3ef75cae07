package gendelaunay

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is a struct that holds all configuration options for triangulation.
type Config struct {
	Factory FactoryConfig `yaml:"factory"`
	Backend BackendConfig `yaml:"backend"`
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Factory: *NewFactoryConfig(),
		Backend: *NewBackendConfig(),
	}
}

// FactoryConfig holds the thresholds of the back-end selection heuristic.
type FactoryConfig struct {
	FastThreshold     int  `yaml:"fast_threshold"`      // 2-D point count above which the fast back-end is used (if exact is not required)
	ClarksonThreshold int  `yaml:"clarkson_threshold"`  // Point count above which the Clarkson back-end is used
	FastImprovePasses int  `yaml:"fast_improve_passes"` // Refinement sweeps applied to the fast back-end's output
	Fallback          bool `yaml:"fallback"`            // Retry with the general exact back-end on failure
}

// NewFactoryConfig returns a new config for the back-end selection.
func NewFactoryConfig() *FactoryConfig {
	return &FactoryConfig{
		FastThreshold:     10000,
		ClarksonThreshold: 3000,
		FastImprovePasses: 1,
		Fallback:          true,
	}
}

// BackendConfig holds tuning options of the incremental back-ends.
type BackendConfig struct {
	SuperSimplexScale      float64 `yaml:"super_simplex_scale"`       // Size of the enclosing simplex relative to the bounding box (floating point back-end)
	ExactSuperSimplexScale float64 `yaml:"exact_super_simplex_scale"` // Same for the exact back-ends
	HullEpsilon            float64 `yaml:"hull_epsilon"`              // Epsilon passed to the convex hull of lifted points
}

// NewBackendConfig returns a new config for the triangulation back-ends.
func NewBackendConfig() *BackendConfig {
	return &BackendConfig{
		SuperSimplexScale:      64,
		ExactSuperSimplexScale: 1 << 20,
		HullEpsilon:            1e-12,
	}
}

// LoadConfig reads a YAML config file. Options missing from the file keep
// their default values; unknown options are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML config over the default values.
func ParseConfig(data []byte) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Factory.FastThreshold < 0 || c.Factory.ClarksonThreshold < 0 {
		return errors.New("config: thresholds must not be negative")
	}
	if c.Factory.FastImprovePasses < 0 {
		return errors.New("config: fast_improve_passes must not be negative")
	}
	if c.Backend.SuperSimplexScale < 1 || c.Backend.ExactSuperSimplexScale < 1 {
		return errors.New("config: super simplex scales must be at least 1")
	}
	if c.Backend.HullEpsilon < 0 {
		return errors.New("config: hull_epsilon must not be negative")
	}
	return nil
}

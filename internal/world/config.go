// Package world provides the tile world: an addressable grid of things, the
// operations that mutate it, and the events it publishes while changing.
package world

// Defaults applied by Build when a key is absent.
const (
	DefaultWidth     = 80
	DefaultHeight    = 50
	DefaultObstacles = 0.01
	DefaultHoles     = 0.001
)

// Config describes how to build a world. Treat a Config as immutable once
// built: derive variants with Copy instead of assigning to fields.
type Config struct {
	Name      string  // Required display name
	Width     int     // Grid columns, must be positive
	Height    int     // Grid rows, must be positive
	Obstacles float64 // Fraction of cells seeded with obstacles, in [0, 1]
	Holes     float64 // Fraction of cells seeded with holes, in [0, 1]
}

// Build creates a configuration from raw key/value pairs, typically the
// decoded "world" section of a YAML file. Missing keys fall back to
// defaults; unrecognized keys and wrong types fail with a
// ConfigurationError naming the field.
func Build(raw map[string]any) (Config, error) {
	cfg := Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Obstacles: DefaultObstacles,
		Holes:     DefaultHoles,
	}

	for key, value := range raw {
		switch key {
		case "name":
			s, ok := value.(string)
			if !ok {
				return Config{}, &ConfigurationError{Field: "name", Reason: "must be a string"}
			}
			cfg.Name = s
		case "width":
			n, ok := intValue(value)
			if !ok {
				return Config{}, &ConfigurationError{Field: "width", Reason: "must be an integer"}
			}
			cfg.Width = n
		case "height":
			n, ok := intValue(value)
			if !ok {
				return Config{}, &ConfigurationError{Field: "height", Reason: "must be an integer"}
			}
			cfg.Height = n
		case "obstacles":
			f, ok := floatValue(value)
			if !ok {
				return Config{}, &ConfigurationError{Field: "obstacles", Reason: "must be a number"}
			}
			cfg.Obstacles = f
		case "holes":
			f, ok := floatValue(value)
			if !ok {
				return Config{}, &ConfigurationError{Field: "holes", Reason: "must be a number"}
			}
			cfg.Holes = f
		default:
			return Config{}, &ConfigurationError{Field: key, Reason: "is not a recognized key"}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.Name == "" {
		return &ConfigurationError{Field: "name", Reason: "is required"}
	}
	if c.Width <= 0 {
		return &ConfigurationError{Field: "width", Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigurationError{Field: "height", Reason: "must be positive"}
	}
	if c.Obstacles < 0 || c.Obstacles > 1 {
		return &ConfigurationError{Field: "obstacles", Reason: "must be within [0, 1]"}
	}
	if c.Holes < 0 || c.Holes > 1 {
		return &ConfigurationError{Field: "holes", Reason: "must be within [0, 1]"}
	}
	return nil
}

// Option overrides a single field on a copied configuration.
type Option func(*Config)

// WithName overrides the name.
func WithName(name string) Option { return func(c *Config) { c.Name = name } }

// WithWidth overrides the width.
func WithWidth(width int) Option { return func(c *Config) { c.Width = width } }

// WithHeight overrides the height.
func WithHeight(height int) Option { return func(c *Config) { c.Height = height } }

// WithObstacles overrides the obstacle density.
func WithObstacles(density float64) Option { return func(c *Config) { c.Obstacles = density } }

// WithHoles overrides the hole density.
func WithHoles(density float64) Option { return func(c *Config) { c.Holes = density } }

// Copy returns a configuration derived from c with the given overrides
// applied. The receiver is left untouched. Overrides are not validated
// here; New and Build validate before a world is built.
func (c Config) Copy(opts ...Option) Config {
	derived := c
	for _, opt := range opts {
		opt(&derived)
	}
	return derived
}

// intValue coerces the numeric types YAML and JSON decoders produce.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// floatValue coerces the numeric types YAML and JSON decoders produce.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

package area

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

// Config holds the sphere used for area computations.
type Config struct {
	Radius float64 // meters
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a Config for the Earth.
func DefaultConfig() Config {
	return Config{
		Radius: EarthRadius,
	}
}

// WithRadius sets the sphere radius in meters. Non-positive values are ignored.
func WithRadius(radius float64) Option {
	return func(cfg *Config) {
		if radius > 0 {
			cfg.Radius = radius
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

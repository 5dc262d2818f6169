package sweep

import "context"

// Config holds the per-call options for the sweep's three public
// operations.
type Config struct {
	// Overlapping controls get_subcurves: when true, every overlap run
	// emits one piece per input curve participating in it; when false
	// (default), one piece is emitted for the whole run.
	Overlapping bool

	// IncludeEndpoints controls get_intersection_points: when false,
	// only interior intersections are emitted. Default true.
	IncludeEndpoints bool

	// Ctx is checked once per popped event. The sweep loop never
	// blocks, but a caller sweeping a very large input can still want
	// to abort between events. A nil Ctx is treated as
	// context.Background().
	Ctx context.Context
}

// Option configures a Config.
type Option func(*Config)

// WithOverlapping sets the Overlapping option.
func WithOverlapping(overlapping bool) Option {
	return func(c *Config) { c.Overlapping = overlapping }
}

// WithIncludeEndpoints sets the IncludeEndpoints option.
func WithIncludeEndpoints(include bool) Option {
	return func(c *Config) { c.IncludeEndpoints = include }
}

// WithContext installs a cancellation context, checked once per event.
func WithContext(ctx context.Context) Option {
	return func(c *Config) { c.Ctx = ctx }
}

func defaultConfig() Config {
	return Config{Overlapping: false, IncludeEndpoints: true, Ctx: context.Background()}
}

// apply folds opts onto defaultConfig().
func apply(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	return cfg
}

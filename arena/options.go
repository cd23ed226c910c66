package arena

import "log/slog"

type config struct {
	logger   *slog.Logger
	metrics  MetricsObserver
	capacity int
}

// Option configures an Arena.
type Option func(*config)

// WithLogger sets the logger for the arena.
//
// Invalidations and stale-handle rejections are logged at debug level.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetricsObserver sets the metrics observer for the arena.
func WithMetricsObserver(observer MetricsObserver) Option {
	return func(c *config) {
		if observer == nil {
			observer = NoopMetricsObserver{}
		}
		c.metrics = observer
	}
}

// WithCapacity pre-sizes the arena for n slots.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

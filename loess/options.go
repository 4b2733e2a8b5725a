package loess

import "github.com/heatwise/coptrend/internal/options"

// DefaultBandwidth is the fraction of the sample each local fit draws its
// neighbors from.
const DefaultBandwidth = 0.3

// Config holds the smoothing parameters.
type Config struct {
	// Bandwidth is the neighbor fraction, valid over (0, 1].
	Bandwidth float64
}

func defaultConfig() Config {
	return Config{Bandwidth: DefaultBandwidth}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithBandwidth sets the neighbor fraction. Values outside (0, 1] are
// ignored.
func WithBandwidth(bw float64) Option {
	return options.NoError(func(cfg *Config) {
		if bw > 0 && bw <= 1 {
			cfg.Bandwidth = bw
		}
	})
}

package regression

import "github.com/heatwise/coptrend/internal/options"

// Defaults for the IRLS parameters. The tuning constant is deliberately
// tighter than the classical 4.685: on the small per-bucket samples a
// dashboard produces, the looser constant leaves a single gross outlier with
// enough weight to stall the fit near plain least squares.
const (
	DefaultMaxIterations = 10
	DefaultTuning        = 3.0
	DefaultScaleFloor    = 1e-8
)

// Config holds the IRLS parameters for RobustLinear.
type Config struct {
	// MaxIterations bounds the number of reweight-and-refit rounds.
	MaxIterations int
	// Tuning is the bisquare tuning constant: points whose standardized
	// residual reaches Tuning scale units get weight zero.
	Tuning float64
	// ScaleFloor is the lower bound on the residual scale estimate, keeping
	// degenerate (near-zero) residuals from dividing by zero.
	ScaleFloor float64
}

func defaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		Tuning:        DefaultTuning,
		ScaleFloor:    DefaultScaleFloor,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithMaxIterations sets the IRLS iteration budget. Values below 1 are
// ignored.
func WithMaxIterations(n int) Option {
	return options.NoError(func(cfg *Config) {
		if n >= 1 {
			cfg.MaxIterations = n
		}
	})
}

// WithTuningConstant sets the bisquare tuning constant. Smaller values
// down-weight outliers more aggressively. Non-positive values are ignored.
func WithTuningConstant(c float64) Option {
	return options.NoError(func(cfg *Config) {
		if c > 0 {
			cfg.Tuning = c
		}
	})
}

// WithScaleFloor sets the minimum residual scale. Non-positive values are
// ignored.
func WithScaleFloor(f float64) Option {
	return options.NoError(func(cfg *Config) {
		if f > 0 {
			cfg.ScaleFloor = f
		}
	})
}

package quality

import "time"

// Config holds the quality monitor configuration.
type Config struct {
	// Percentile is the low percentile of the sample distribution used as
	// the acceptance threshold.
	Percentile float64 `env:"PERCENTILE" envDefault:"1"`

	// MinSamples is how many samples a baseline needs before it starts
	// judging batches.
	MinSamples int `env:"MIN_SAMPLES" envDefault:"100"`

	// AcceleratedMinSamples replaces MinSamples when Accelerated is set.
	// It only moves the Collecting->Active transition, never the scoring.
	AcceleratedMinSamples int  `env:"ACCELERATED_MIN_SAMPLES" envDefault:"3"`
	Accelerated           bool `env:"ACCELERATED" envDefault:"false"`

	// WindowSamples bounds the sliding sample window once a baseline is
	// active. Defaults to one week of minute samples.
	WindowSamples int `env:"WINDOW_SAMPLES" envDefault:"10080"`

	// InitWindow is how far back warm-up reads stored candles.
	InitWindow time.Duration `env:"INIT_WINDOW" envDefault:"168h"`

	// HourMultipliers optionally overrides the full 24-entry time-of-day
	// multiplier table. When fewer than 24 values are given the table is
	// derived from the low-activity settings below.
	HourMultipliers []float64 `env:"HOUR_MULTIPLIERS" envSeparator:","`

	// Low-activity hours scale thresholds down to account for known
	// diurnal liquidity patterns. The window is [start, end) in UTC.
	LowActivityStartHour int     `env:"LOW_ACTIVITY_START_HOUR" envDefault:"0"`
	LowActivityEndHour   int     `env:"LOW_ACTIVITY_END_HOUR" envDefault:"8"`
	LowActivityFactor    float64 `env:"LOW_ACTIVITY_FACTOR" envDefault:"0.5"`
}

// minSamples returns the Collecting->Active transition threshold.
func (c Config) minSamples() int {
	if c.Accelerated {
		return c.AcceleratedMinSamples
	}
	return c.MinSamples
}

// hourMultipliers returns the effective 24-entry multiplier table.
func (c Config) hourMultipliers() [24]float64 {
	var table [24]float64

	if len(c.HourMultipliers) == 24 {
		copy(table[:], c.HourMultipliers)
		return table
	}

	for hour := range table {
		table[hour] = 1.0
		if hour >= c.LowActivityStartHour && hour < c.LowActivityEndHour {
			table[hour] = c.LowActivityFactor
		}
	}
	return table
}

// TimeframeTick is the baseline key ticks are scored under. Ticks carry no
// trade count, so only their volume is judged.
const TimeframeTick = "tick"

// Seed minimums by timeframe, used as the reported thresholds while a
// baseline is still collecting. Once enough history accumulates the
// percentile thresholds supersede them.
var (
	seedMinTrades = map[string]float64{
		TimeframeTick: 0,
		"1m":          2,
		"5m":          20,
		"15m":         50,
		"1h":          150,
		"4h":          500,
		"1d":          2000,
	}

	seedMinVolume = map[string]float64{
		TimeframeTick: 0.1,
		"1m":          0.1,
		"5m":          0.5,
		"15m":         1.5,
		"1h":          5.0,
		"4h":          15.0,
		"1d":          50.0,
	}
)

package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config groups the parameters of one call-center scenario.
// All durations are in minutes of simulated time.
type Config struct {
	NumAgents          int     // pool capacity (must be > 0)
	ArrivalsPerHour    float64 // Poisson arrival rate (must be > 0)
	HorizonMinutes     float64 // admission window (must be > 0)
	MeanServiceMinutes float64 // mean of the exponential service time (must be > 0)
	MaxArrivals        int     // admission cap, 0 = unlimited

	// StopAtHorizon discards every event at or past the horizon instead of
	// letting admitted customers drain. Customers still in service at the
	// horizon never depart.
	StopAtHorizon bool
}

// NewConfig returns a Config for the given staffing and load with drain
// semantics and no admission cap.
func NewConfig(numAgents int, arrivalsPerHour, horizonMinutes, meanServiceMinutes float64) Config {
	return Config{
		NumAgents:          numAgents,
		ArrivalsPerHour:    arrivalsPerHour,
		HorizonMinutes:     horizonMinutes,
		MeanServiceMinutes: meanServiceMinutes,
	}
}

// ArrivalRate returns the arrival rate in customers per minute.
func (c Config) ArrivalRate() float64 {
	return c.ArrivalsPerHour / 60.0
}

// ServiceRate returns the per-agent service rate in customers per minute.
func (c Config) ServiceRate() float64 {
	return 1.0 / c.MeanServiceMinutes
}

// HorizonHours returns the horizon expressed in hours.
func (c Config) HorizonHours() float64 {
	return c.HorizonMinutes / 60.0
}

// PositiveFinite reports whether x is a usable rate or duration: greater
// than zero and neither NaN nor infinite.
func PositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Validate rejects parameters that would make rates or capacity unusable.
// An infinite horizon or arrival rate would keep Run from terminating.
func (c Config) Validate() error {
	switch {
	case c.NumAgents <= 0:
		return fmt.Errorf("%w: num agents must be > 0, got %d", ErrInvalidConfig, c.NumAgents)
	case !PositiveFinite(c.ArrivalsPerHour):
		return fmt.Errorf("%w: arrivals per hour must be finite and > 0, got %v", ErrInvalidConfig, c.ArrivalsPerHour)
	case !PositiveFinite(c.HorizonMinutes):
		return fmt.Errorf("%w: horizon must be finite and > 0 minutes, got %v", ErrInvalidConfig, c.HorizonMinutes)
	case !PositiveFinite(c.MeanServiceMinutes):
		return fmt.Errorf("%w: mean service time must be finite and > 0 minutes, got %v", ErrInvalidConfig, c.MeanServiceMinutes)
	case c.MaxArrivals < 0:
		return fmt.Errorf("%w: max arrivals must be >= 0, got %d", ErrInvalidConfig, c.MaxArrivals)
	}
	return nil
}

package sim

import "fmt"

// Config groups all scalar parameters of a simulation run. Duration
// distributions are supplied separately as DurationSampler values.
type Config struct {
	// Determinism
	Seed int64

	// Clock
	Horizon float64 // simulated run length
	Dt      float64 // fixed step for health dynamics and technician stepping

	// Machine health dynamics
	InitialHealth      float64 // starting health stock, in (0, 100]
	BreakdownThreshold float64 // health below this forces the machine broken
	RateBusy           float64 // degradation per time unit while busy
	RateIdle           float64 // degradation per time unit while idle
	RateRepair         float64 // health gain per time unit per repairing technician

	// Technicians
	NumTechnicians int
	TravelDelay    float64 // dispatch → repairing delay, may be zero
}

// DefaultConfig returns the baseline factory scenario: an 8-hour shift in
// minutes, with two technicians.
func DefaultConfig() Config {
	return Config{
		Seed:               42,
		Horizon:            480,
		Dt:                 0.5,
		InitialHealth:      FullHealth,
		BreakdownThreshold: 20.0,
		RateBusy:           0.15,
		RateIdle:           0.02,
		RateRepair:         10.0,
		NumTechnicians:     2,
		TravelDelay:        0,
	}
}

// Validate checks if the configuration is valid. All violations are fatal at
// construction; there is no partially-valid run.
func (c *Config) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("Horizon must be > 0, got %v", c.Horizon)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("Dt must be > 0, got %v", c.Dt)
	}
	if c.InitialHealth <= 0 || c.InitialHealth > FullHealth {
		return fmt.Errorf("InitialHealth must be in (0, %v], got %v", FullHealth, c.InitialHealth)
	}
	if c.BreakdownThreshold <= 0 || c.BreakdownThreshold >= FullHealth {
		return fmt.Errorf("BreakdownThreshold must be in (0, %v), got %v", FullHealth, c.BreakdownThreshold)
	}
	if c.RateBusy < 0 {
		return fmt.Errorf("RateBusy must be >= 0, got %v", c.RateBusy)
	}
	if c.RateIdle < 0 {
		return fmt.Errorf("RateIdle must be >= 0, got %v", c.RateIdle)
	}
	if c.RateRepair <= 0 {
		return fmt.Errorf("RateRepair must be > 0, got %v", c.RateRepair)
	}
	if c.NumTechnicians < 1 {
		return fmt.Errorf("NumTechnicians must be >= 1, got %d", c.NumTechnicians)
	}
	if c.TravelDelay < 0 {
		return fmt.Errorf("TravelDelay must be >= 0, got %v", c.TravelDelay)
	}
	return nil
}

// healthParams extracts the continuous-dynamics coefficients.
func (c *Config) healthParams() HealthParams {
	return HealthParams{
		RateBusy:   c.RateBusy,
		RateIdle:   c.RateIdle,
		RateRepair: c.RateRepair,
		Threshold:  c.BreakdownThreshold,
	}
}

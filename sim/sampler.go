package sim

import "math/rand"

// DurationSampler generates stochastic durations in simulated time units.
// Samplers are supplied by the caller; the core never hard-codes a
// distribution.
type DurationSampler interface {
	// Sample returns a positive duration.
	Sample(rng *rand.Rand) float64
}

// GaussianSampler produces normally-distributed durations clamped at a floor.
type GaussianSampler struct {
	mean, stdDev float64
	min          float64
}

// NewGaussianSampler creates a Gaussian duration sampler with the given floor.
func NewGaussianSampler(mean, stdDev, min float64) *GaussianSampler {
	return &GaussianSampler{mean: mean, stdDev: stdDev, min: min}
}

func (s *GaussianSampler) Sample(rng *rand.Rand) float64 {
	val := rng.NormFloat64()*s.stdDev + s.mean
	if val < s.min {
		return s.min
	}
	return val
}

// UniformSampler produces durations uniformly distributed in [low, high).
type UniformSampler struct {
	low, high float64
}

// NewUniformSampler creates a uniform duration sampler over [low, high).
func NewUniformSampler(low, high float64) *UniformSampler {
	return &UniformSampler{low: low, high: high}
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.low + rng.Float64()*(s.high-s.low)
}

// ExponentialSampler produces exponentially-distributed durations.
type ExponentialSampler struct {
	mean float64
}

// NewExponentialSampler creates an exponential duration sampler.
func NewExponentialSampler(mean float64) *ExponentialSampler {
	return &ExponentialSampler{mean: mean}
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}

// ConstantSampler always returns the same fixed duration.
// Useful for tests that need exactly predictable timing.
type ConstantSampler struct {
	value float64
}

// NewConstantSampler creates a sampler that always returns value.
func NewConstantSampler(value float64) *ConstantSampler {
	return &ConstantSampler{value: value}
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

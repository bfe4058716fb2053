package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianSampler_RespectsFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewGaussianSampler(1.0, 10.0, 0.5)

	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, s.Sample(rng), 0.5)
	}
}

func TestUniformSampler_StaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewUniformSampler(2.0, 4.0)

	for i := 0; i < 1000; i++ {
		v := s.Sample(rng)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 4.0)
	}
}

func TestExponentialSampler_Positive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewExponentialSampler(5.0)

	for i := 0; i < 1000; i++ {
		assert.Greater(t, s.Sample(rng), 0.0)
	}
}

func TestConstantSampler_FixedValue(t *testing.T) {
	s := NewConstantSampler(3.25)
	assert.Equal(t, 3.25, s.Sample(nil))
	assert.Equal(t, 3.25, s.Sample(nil))
}

func TestSamplers_DeterministicForSameSeed(t *testing.T) {
	s := NewGaussianSampler(15.0, 5.0, 1.0)

	rng1 := rand.New(rand.NewSource(7))
	rng2 := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		assert.Equal(t, s.Sample(rng1), s.Sample(rng2))
	}
}

package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// Sampler draws integer tick values.
type Sampler interface {
	// Sample returns a value no smaller than the floor the sampler was built with.
	Sample(rng *rand.Rand) int64
}

// DistSpec names a distribution and its parameters.
//
//	type: gaussian
//	params: {mean: 6, std_dev: 2, min: 1, max: 12}
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// ConstantSampler always returns the same fixed value.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return s.value
}

// UniformSampler draws integers uniformly from [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// ExponentialSampler produces exponentially-distributed values, rounded to ticks.
// As an inter-arrival sampler it yields Poisson arrivals.
type ExponentialSampler struct {
	mean  float64
	floor int64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	val := int64(math.Round(rng.ExpFloat64() * s.mean))
	if val < s.floor {
		return s.floor
	}
	return val
}

// GaussianSampler produces clamped Gaussian values.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int64(math.Round(clamped))
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("%w: distribution requires parameter %q", ErrInvalidSpec, k)
		}
	}
	return nil
}

// NewSampler creates a Sampler from a DistSpec. No sample falls below floor:
// bounded distributions must declare a min >= floor, unbounded ones are clamped.
func NewSampler(spec DistSpec, floor int64) (Sampler, error) {
	switch spec.Type {
	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		value := int64(spec.Params["value"])
		if value < floor {
			return nil, fmt.Errorf("%w: constant value %d below %d", ErrInvalidSpec, value, floor)
		}
		return &ConstantSampler{value: value}, nil

	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		lo, hi, err := bounds(spec.Params, floor)
		if err != nil {
			return nil, err
		}
		return &UniformSampler{min: lo, max: hi}, nil

	case "exponential":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		mean := spec.Params["mean"]
		if mean <= 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
			return nil, fmt.Errorf("%w: exponential mean must be positive, got %v", ErrInvalidSpec, mean)
		}
		return &ExponentialSampler{mean: mean, floor: floor}, nil

	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		if spec.Params["std_dev"] < 0 {
			return nil, fmt.Errorf("%w: gaussian std_dev must be non-negative", ErrInvalidSpec)
		}
		lo, hi, err := bounds(spec.Params, floor)
		if err != nil {
			return nil, err
		}
		return &GaussianSampler{mean: spec.Params["mean"], stdDev: spec.Params["std_dev"], min: lo, max: hi}, nil

	default:
		return nil, fmt.Errorf("%w: unknown distribution type %q", ErrInvalidSpec, spec.Type)
	}
}

func bounds(params map[string]float64, floor int64) (int64, int64, error) {
	lo, hi := int64(params["min"]), int64(params["max"])
	if lo < floor {
		return 0, 0, fmt.Errorf("%w: min %d below %d", ErrInvalidSpec, lo, floor)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("%w: max %d below min %d", ErrInvalidSpec, hi, lo)
	}
	return lo, hi, nil
}

package workload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec reports a generator spec that cannot produce a valid process set.
var ErrInvalidSpec = errors.New("invalid generator spec")

// DefaultIDPrefix names generated processes P1, P2, ...
const DefaultIDPrefix = "P"

// GeneratorSpec describes a synthetic process set. The same spec and seed
// always yield the same processes.
//
//	count: 8
//	seed: 7
//	inter_arrival: {type: exponential, params: {mean: 3}}
//	burst: {type: uniform, params: {min: 1, max: 10}}
//	priority: {type: uniform, params: {min: 1, max: 5}}
type GeneratorSpec struct {
	Count        int      `yaml:"count"`
	Seed         int64    `yaml:"seed"`
	IDPrefix     string   `yaml:"id_prefix,omitempty"`
	StartTime    int64    `yaml:"start_time,omitempty"`
	InterArrival DistSpec `yaml:"inter_arrival"`
	Burst        DistSpec `yaml:"burst"`
	// Priority is optional; every process gets priority 0 when its type is empty.
	Priority DistSpec `yaml:"priority,omitempty"`
}

// Validate checks the fields that NewSampler cannot check on its own.
func (s *GeneratorSpec) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalidSpec, s.Count)
	}
	if s.StartTime < 0 {
		return fmt.Errorf("%w: start_time must be non-negative, got %d", ErrInvalidSpec, s.StartTime)
	}
	return nil
}

// ParseGeneratorSpec decodes a YAML generator spec with strict field checking.
func ParseGeneratorSpec(r io.Reader) (*GeneratorSpec, error) {
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	return &spec, nil
}

// LoadGeneratorSpec reads and parses a YAML generator spec file.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	defer f.Close()
	spec, err := ParseGeneratorSpec(f)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("loaded generator spec %s: count=%d seed=%d", path, spec.Count, spec.Seed)
	return spec, nil
}

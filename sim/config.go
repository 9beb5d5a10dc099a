package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTrials is the number of trials averaged per experiment.
const DefaultTrials = 5

// LoopBound selects how the arrival loop compares processed file requests
// against the requested total.
type LoopBound string

const (
	// LoopBoundInclusive keeps stepping while processed <= total, giving
	// total+1 arrival steps before the drain.
	LoopBoundInclusive LoopBound = "inclusive"
	// LoopBoundExclusive keeps stepping while processed < total.
	LoopBoundExclusive LoopBound = "exclusive"
)

// ValidLoopBounds is the set of recognized loop bound names.
var ValidLoopBounds = map[LoopBound]bool{"": true, LoopBoundInclusive: true, LoopBoundExclusive: true}

// Continue reports whether another arrival step runs after processed steps.
func (b LoopBound) Continue(processed, total int) bool {
	if b == LoopBoundExclusive {
		return processed < total
	}
	return processed <= total
}

// Config holds experiment configuration, loadable from a YAML file.
// Fields left out of the file keep the values from DefaultConfig.
type Config struct {
	Policy       string    `yaml:"policy"`
	Requests     int       `yaml:"requests"`
	Trials       int       `yaml:"trials"`
	Seeds        []int64   `yaml:"seeds"`
	MasterSeed   int64     `yaml:"master_seed"`
	LoopBound    LoopBound `yaml:"loop_bound"`
	NumTracks    int       `yaml:"num_tracks"`
	MinTracks    int       `yaml:"min_tracks_per_request"`
	MaxTracks    int       `yaml:"max_tracks_per_request"`
	WorkloadFile string    `yaml:"workload_file"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Policy:     PolicyFCFS,
		Requests:   100,
		Trials:     DefaultTrials,
		MasterSeed: 42,
		LoopBound:  LoopBoundInclusive,
		NumTracks:  NumTracks,
		MinTracks:  MinTracksPerFile,
		MaxTracks:  MaxTracksPerFile,
	}
}

// LoadConfig reads a YAML configuration file on top of base.
// Unknown keys are rejected so that typos surface as errors.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config: %w", err)
	}
	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return base, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks policy names and parameter ranges.
func (c *Config) Validate() error {
	if _, err := NewPolicy(c.Policy); err != nil {
		return err
	}
	if c.Requests < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidRequestCount, c.Requests)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if len(c.Seeds) > 0 && len(c.Seeds) != c.Trials {
		return fmt.Errorf("got %d seeds for %d trials", len(c.Seeds), c.Trials)
	}
	if !ValidLoopBounds[c.LoopBound] {
		return fmt.Errorf("unknown loop bound %q", c.LoopBound)
	}
	if c.NumTracks < 1 {
		return fmt.Errorf("num_tracks must be positive, got %d", c.NumTracks)
	}
	if c.MinTracks < 1 || c.MaxTracks < c.MinTracks {
		return fmt.Errorf("tracks per request must satisfy 1 <= min <= max, got min=%d max=%d", c.MinTracks, c.MaxTracks)
	}
	return nil
}

// TrialSeeds returns the explicit seeds, or seeds derived from MasterSeed.
func (c *Config) TrialSeeds() []int64 {
	if len(c.Seeds) > 0 {
		return append([]int64(nil), c.Seeds...)
	}
	return NewPartitionedRNG(NewSimulationKey(c.MasterSeed)).TrialSeeds(c.Trials)
}

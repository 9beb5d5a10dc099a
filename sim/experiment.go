package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/disk-sim/disk-sim/sim/trace"
)

// RunExperiment runs cfg.Trials independent trials sequentially and
// aggregates their head movement. Each trial gets a fresh policy and a
// workload seeded with its own seed.
func RunExperiment(cfg Config, tr *trace.SimulationTrace) (*Metrics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seeds := cfg.TrialSeeds()
	results := make([]TrialResult, 0, cfg.Trials)
	for i, seed := range seeds {
		res, err := RunTrial(cfg, i, seed, tr)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	m := NewMetrics(results[0].Policy, results)
	logrus.Infof("%s: overall average head movement %d over %d trials", m.Policy, m.OverallAverage, len(results))
	return m, nil
}

// RunTrial runs a single trial with the given seed.
func RunTrial(cfg Config, trial int, seed int64, tr *trace.SimulationTrace) (TrialResult, error) {
	policy, err := NewPolicy(cfg.Policy)
	if err != nil {
		return TrialResult{}, err
	}
	workload, err := newWorkload(cfg, seed)
	if err != nil {
		return TrialResult{}, err
	}
	logrus.Debugf("[trial %d] starting %s with seed %d", trial, policy.Name(), seed)

	s := NewSimulator(policy, workload, cfg.Requests, cfg.LoopBound)
	s.Trace = tr
	s.Result.Trial = trial
	s.Result.Seed = seed
	return s.Run(), nil
}

func newWorkload(cfg Config, seed int64) (Workload, error) {
	if cfg.WorkloadFile != "" {
		w, err := LoadCSVWorkload(cfg.WorkloadFile, cfg.NumTracks)
		if err != nil {
			return nil, fmt.Errorf("loading workload: %w", err)
		}
		return w, nil
	}
	w := NewRandomWorkload(seed)
	w.NumTracks = cfg.NumTracks
	w.MinTracks = cfg.MinTracks
	w.MaxTracks = cfg.MaxTracks
	return w, nil
}

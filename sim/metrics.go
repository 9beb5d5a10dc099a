// Aggregates per-trial head movement into experiment-level statistics.

package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics summarizes the trials of one experiment.
type Metrics struct {
	Policy string
	Trials []TrialResult

	SumAverages    int // sum of the truncated per-trial averages
	OverallAverage int // SumAverages / len(Trials), truncated

	MeanAverage   float64 // mean of per-trial averages
	StdDevAverage float64 // sample standard deviation of per-trial averages
	MinAverage    float64
	MaxAverage    float64

	TotalServiced     int
	TotalHeadMovement int
}

// NewMetrics computes experiment statistics from completed trials.
func NewMetrics(policy string, trials []TrialResult) *Metrics {
	m := &Metrics{Policy: policy, Trials: trials}
	if len(trials) == 0 {
		return m
	}
	averages := make([]float64, len(trials))
	for i, t := range trials {
		m.SumAverages += t.AverageHeadMovement
		m.TotalServiced += t.Serviced
		m.TotalHeadMovement += t.TotalHeadMovement
		averages[i] = float64(t.AverageHeadMovement)
	}
	m.OverallAverage = m.SumAverages / len(trials)
	m.MinAverage = floats.Min(averages)
	m.MaxAverage = floats.Max(averages)
	if len(averages) > 1 {
		m.MeanAverage, m.StdDevAverage = stat.MeanStdDev(averages, nil)
	} else {
		m.MeanAverage = averages[0]
	}
	return m
}

// Averages returns the per-trial truncated averages in trial order.
func (m *Metrics) Averages() []int {
	out := make([]int, len(m.Trials))
	for i, t := range m.Trials {
		out[i] = t.AverageHeadMovement
	}
	return out
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disk-sim/disk-sim/sim/internal/testutil"
	"github.com/disk-sim/disk-sim/sim/trace"
)

func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			// GIVEN the scripted arrivals of the golden case
			policy, err := NewPolicy(tc.Policy)
			require.NoError(t, err)
			tr := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelServices})
			s := NewSimulator(policy, NewScriptedWorkload(tc.Batches...), tc.Requests, LoopBound(tc.LoopBound))
			s.Trace = tr

			// WHEN the trial runs
			res := s.Run()

			// THEN it reproduces the recorded outcome exactly
			assert.Equal(t, tc.ServiceOrder, res.ServiceOrder)
			assert.Equal(t, tc.TotalHeadMovement, res.TotalHeadMovement)
			assert.Equal(t, tc.Serviced, res.Serviced)
			assert.Equal(t, tc.AverageHeadMovement, res.AverageHeadMovement)
			testutil.AssertFloat64Equal(t, "mean_seek", tc.MeanSeek, trace.Summarize(tr).MeanSeek, 1e-9)
		})
	}
}

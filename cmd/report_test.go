package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/disk-sim/disk-sim/sim"
)

func TestPrintMetrics_TableAndSummary(t *testing.T) {
	// GIVEN two trials
	m := sim.NewMetrics(sim.PolicySSTF, []sim.TrialResult{
		{Trial: 0, Seed: 11, FileRequests: 4, Serviced: 9, TotalHeadMovement: 180, AverageHeadMovement: 20},
		{Trial: 1, Seed: 22, FileRequests: 4, Serviced: 10, TotalHeadMovement: 250, AverageHeadMovement: 25},
	})
	var buf bytes.Buffer

	// WHEN printed
	printMetrics(&buf, m)

	// THEN the header, rows and the final average are present
	out := buf.String()
	assert.Contains(t, out, "=== SSTF Disk Scheduling ===")
	assert.Contains(t, out, "HEAD MOVEMENT")
	assert.Contains(t, out, "11")
	assert.Contains(t, out, "250")
	assert.Contains(t, out, "FINAL 22")
	assert.Contains(t, out, "Mean 22.50")
}

func TestPrintComparison_SideBySide(t *testing.T) {
	fcfs := sim.NewMetrics(sim.PolicyFCFS, []sim.TrialResult{{Seed: 3, AverageHeadMovement: 260}})
	sstf := sim.NewMetrics(sim.PolicySSTF, []sim.TrialResult{{Seed: 3, AverageHeadMovement: 14}})
	var buf bytes.Buffer
	printComparison(&buf, []*sim.Metrics{fcfs, sstf})
	out := buf.String()
	assert.Contains(t, out, "FCFS AVERAGE")
	assert.Contains(t, out, "260")
	assert.Contains(t, out, "14")

	buf.Reset()
	printComparison(&buf, nil)
	assert.Empty(t, buf.String())
}

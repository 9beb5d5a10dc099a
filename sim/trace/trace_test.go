package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"none", true},
		{"services", true},
		{"", true},
		{"decisions", false},
		{"verbose", false},
	}
	for _, tt := range tests {
		if got := IsValidTraceLevel(tt.level); got != tt.want {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	var nilTrace *SimulationTrace
	assert.False(t, nilTrace.Enabled())
	assert.False(t, NewSimulationTrace(TraceConfig{Level: TraceLevelNone}).Enabled())
	assert.True(t, NewSimulationTrace(TraceConfig{Level: TraceLevelServices}).Enabled())
}

func TestSimulationTrace_RecordService(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelServices})
	st.RecordService(ServiceRecord{Step: 1, Phase: PhaseArrival, From: 0, To: 10, Seek: 10})
	st.RecordService(ServiceRecord{Step: 1, Phase: PhaseDrain, From: 10, To: 4, Seek: 6})
	require.Len(t, st.Services, 2)
	assert.Equal(t, 4, st.Services[1].To)
}

func TestSimulationTrace_WriteYAML(t *testing.T) {
	// GIVEN a trace with one record
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelServices})
	st.RecordService(ServiceRecord{Trial: 2, Step: 3, Phase: PhaseDrain, Policy: "sstf", From: 5, To: 9, Seek: 4, Pending: 1})

	// WHEN written as YAML
	var buf bytes.Buffer
	require.NoError(t, st.WriteYAML(&buf))

	// THEN it decodes back into the same records
	var decoded SimulationTrace
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, TraceLevelServices, decoded.Config.Level)
	assert.Equal(t, st.Services, decoded.Services)
	assert.Contains(t, buf.String(), "phase: drain")
}

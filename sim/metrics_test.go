package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_TruncatingAverages(t *testing.T) {
	// GIVEN five trials whose averages sum to 1003
	trials := []TrialResult{
		{AverageHeadMovement: 200, Serviced: 10, TotalHeadMovement: 2005},
		{AverageHeadMovement: 201, Serviced: 10, TotalHeadMovement: 2010},
		{AverageHeadMovement: 202, Serviced: 10, TotalHeadMovement: 2020},
		{AverageHeadMovement: 200, Serviced: 10, TotalHeadMovement: 2000},
		{AverageHeadMovement: 200, Serviced: 10, TotalHeadMovement: 2000},
	}

	// WHEN aggregated
	m := NewMetrics(PolicyFCFS, trials)

	// THEN the overall average truncates like integer division
	assert.Equal(t, 1003, m.SumAverages)
	assert.Equal(t, 200, m.OverallAverage)
	assert.Equal(t, 50, m.TotalServiced)
	assert.Equal(t, 10035, m.TotalHeadMovement)
	assert.InDelta(t, 200.6, m.MeanAverage, 1e-9)
	assert.Equal(t, 200.0, m.MinAverage)
	assert.Equal(t, 202.0, m.MaxAverage)
	// sample stddev of {200,201,202,200,200}
	assert.InDelta(t, math.Sqrt(0.8), m.StdDevAverage, 1e-9)
	assert.Equal(t, []int{200, 201, 202, 200, 200}, m.Averages())
}

func TestNewMetrics_SingleTrial(t *testing.T) {
	m := NewMetrics(PolicySSTF, []TrialResult{{AverageHeadMovement: 17}})
	assert.Equal(t, 17, m.OverallAverage)
	assert.Equal(t, 17.0, m.MeanAverage)
	assert.Equal(t, 0.0, m.StdDevAverage)
}

func TestNewMetrics_NoTrials(t *testing.T) {
	m := NewMetrics(PolicySSTF, nil)
	assert.Equal(t, 0, m.OverallAverage)
	assert.Empty(t, m.Averages())
}

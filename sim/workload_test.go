package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWorkload_BatchAndTrackBounds(t *testing.T) {
	w := NewRandomWorkload(123)
	seenSizes := map[int]bool{}
	for i := 0; i < 2000; i++ {
		b := w.NextArrivals()
		require.GreaterOrEqual(t, len(b), MinTracksPerFile)
		require.LessOrEqual(t, len(b), MaxTracksPerFile)
		seenSizes[len(b)] = true
		for _, tr := range b {
			require.NoError(t, ValidateTrack(tr, NumTracks))
		}
	}
	assert.Len(t, seenSizes, MaxTracksPerFile-MinTracksPerFile+1, "every batch size should occur")
}

func TestRandomWorkload_SameSeed_SameSequence(t *testing.T) {
	a, b := NewRandomWorkload(42), NewRandomWorkload(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextArrivals(), b.NextArrivals())
	}
}

func TestRandomWorkload_CustomBounds(t *testing.T) {
	w := NewRandomWorkload(1)
	w.NumTracks, w.MinTracks, w.MaxTracks = 10, 2, 2
	for i := 0; i < 100; i++ {
		b := w.NextArrivals()
		require.Len(t, b, 2)
		for _, tr := range b {
			require.Less(t, tr, 10)
		}
	}
}

func TestScriptedWorkload_ReplaysThenRunsDry(t *testing.T) {
	w := NewScriptedWorkload([]int{1, 2}, nil, []int{3})
	assert.Equal(t, 3, w.Remaining())
	assert.Equal(t, []int{1, 2}, w.NextArrivals())
	assert.Empty(t, w.NextArrivals())
	assert.Equal(t, []int{3}, w.NextArrivals())
	assert.Equal(t, 0, w.Remaining())
	assert.Nil(t, w.NextArrivals())
}

func TestParseCSVWorkload_GroupsByFileRequest(t *testing.T) {
	csv := "file_request,track\n0,50\n0,10\n0,40\n2,799\n"
	w, err := ParseCSVWorkload(strings.NewReader(csv), NumTracks)
	require.NoError(t, err)
	assert.Equal(t, []int{50, 10, 40}, w.NextArrivals())
	assert.Empty(t, w.NextArrivals())
	assert.Equal(t, []int{799}, w.NextArrivals())
}

func TestParseCSVWorkload_Errors(t *testing.T) {
	tests := []struct {
		name, csv, wantErr string
	}{
		{"track out of range", "file_request,track\n0,800\n", "out of range"},
		{"negative track", "file_request,track\n0,-1\n", "out of range"},
		{"non-numeric track", "file_request,track\n0,abc\n", "invalid track"},
		{"non-numeric index", "file_request,track\nx,1\n", "invalid file_request"},
		{"out of order", "file_request,track\n2,1\n0,1\n", "out of order"},
		{"wrong field count", "file_request,track\n0,1,2\n", "row 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSVWorkload(strings.NewReader(tt.csv), NumTracks)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseCSVWorkload_EmptyInput(t *testing.T) {
	w, err := ParseCSVWorkload(strings.NewReader(""), NumTracks)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Remaining())
}

func TestLoadCSVWorkload_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.csv")
	require.NoError(t, os.WriteFile(path, []byte("file_request,track\n0,5\n1,6\n"), 0644))
	w, err := LoadCSVWorkload(path, NumTracks)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Remaining())

	_, err = LoadCSVWorkload(filepath.Join(t.TempDir(), "missing.csv"), NumTracks)
	assert.Error(t, err)
}

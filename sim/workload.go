package sim

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Workload produces the track requests that arrive with each file request.
type Workload interface {
	// NextArrivals returns the tracks requested by the next file request.
	// An empty result means nothing arrives this step.
	NextArrivals() []int
}

// RandomWorkload draws a batch of MinTracks..MaxTracks requests per file
// request, each on a uniformly random track in [0, NumTracks).
type RandomWorkload struct {
	rng       *rand.Rand
	NumTracks int
	MinTracks int
	MaxTracks int
}

// NewRandomWorkload seeds a RandomWorkload with default bounds.
func NewRandomWorkload(seed int64) *RandomWorkload {
	return &RandomWorkload{
		rng:       rand.New(rand.NewSource(seed)),
		NumTracks: NumTracks,
		MinTracks: MinTracksPerFile,
		MaxTracks: MaxTracksPerFile,
	}
}

func (w *RandomWorkload) NextArrivals() []int {
	n := w.MinTracks + w.rng.Intn(w.MaxTracks-w.MinTracks+1)
	tracks := make([]int, n)
	for i := range tracks {
		tracks[i] = w.rng.Intn(w.NumTracks)
	}
	return tracks
}

// ScriptedWorkload replays a fixed sequence of arrival batches.
// Once the script is exhausted every further step has no arrivals.
type ScriptedWorkload struct {
	batches [][]int
	next    int
}

// NewScriptedWorkload returns a workload replaying batches in order.
func NewScriptedWorkload(batches ...[]int) *ScriptedWorkload {
	return &ScriptedWorkload{batches: batches}
}

func (w *ScriptedWorkload) NextArrivals() []int {
	if w.next >= len(w.batches) {
		return nil
	}
	b := w.batches[w.next]
	w.next++
	return b
}

// Remaining returns the number of batches not yet replayed.
func (w *ScriptedWorkload) Remaining() int {
	return len(w.batches) - w.next
}

// LoadCSVWorkload reads a scripted workload from a CSV file with header
// "file_request,track". Rows sharing a file_request index form one batch;
// indices must be non-decreasing. Missing indices become empty batches.
func LoadCSVWorkload(path string, numTracks int) (*ScriptedWorkload, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload file: %w", err)
	}
	defer file.Close()
	return ParseCSVWorkload(file, numTracks)
}

// ParseCSVWorkload parses the CSV format described in LoadCSVWorkload.
func ParseCSVWorkload(r io.Reader, numTracks int) (*ScriptedWorkload, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	// Skip header row
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return NewScriptedWorkload(), nil
		}
		return nil, fmt.Errorf("reading workload header: %w", err)
	}

	var batches [][]int
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("reading workload row %d: %w", row, err)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid file_request %q at row %d", record[0], row)
		}
		if idx < len(batches)-1 {
			return nil, fmt.Errorf("file_request %d at row %d is out of order", idx, row)
		}
		track, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid track %q at row %d", record[1], row)
		}
		if err := ValidateTrack(track, numTracks); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		for len(batches) <= idx {
			batches = append(batches, nil)
		}
		batches[idx] = append(batches[idx], track)
	}
	return NewScriptedWorkload(batches...), nil
}

// Defines track requests: the integer disk positions the head is asked to visit.

package sim

import "fmt"

// NumTracks is the number of addressable tracks. Valid tracks lie in [0, NumTracks).
const NumTracks = 800

// Batch bounds for the number of track requests generated per file request.
const (
	MinTracksPerFile = 1
	MaxTracksPerFile = 4
)

// SeekDistance returns the head movement needed to go from one track to another.
func SeekDistance(from, to int) int {
	if from > to {
		return from - to
	}
	return to - from
}

// ValidateTrack returns an error if track lies outside [0, numTracks).
func ValidateTrack(track, numTracks int) error {
	if track < 0 || track >= numTracks {
		return fmt.Errorf("track %d out of range [0, %d)", track, numTracks)
	}
	return nil
}

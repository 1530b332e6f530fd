package model

import "fmt"

// ProgressSnapshot is a point-in-time view of a running job used to redraw
// the two progress bars. It is recomputed on every progress callback and
// never persisted.
type ProgressSnapshot struct {
	TrackIndex      int     // zero-based index of the active track, within [0, TrackTotal)
	TrackTotal      int     // number of resolved tracks
	TrackPercent    float64 // completion of the active track, 0..100
	PlaylistPercent float64 // completion of the whole playlist, 0..100

	// Display-only telemetry; not part of the progress math.
	TrackTitle string
	Speed      string // human readable, e.g. "2.1 MB/s"
}

// TrackPosition returns the active track position as "i / n" for captions.
func (s ProgressSnapshot) TrackPosition() string {
	if s.TrackTotal <= 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", s.TrackIndex+1, s.TrackTotal)
}

package progress

import (
	"sync"

	"github.com/scget/sc-downloader/internal/model"
)

// activeTrackMaxFraction caps the playlist contribution of a track that has
// not reached a terminal status yet. Byte counts can report a track as fully
// downloaded while the engine is still converting it, and the playlist bar
// must not reach 100 until the last track is actually finished.
const activeTrackMaxFraction = 0.999

// Aggregator combines raw per-track progress events with the orchestrator's
// current index and total count into a two-level ProgressSnapshot. It is the
// single shared state between the download goroutine (writer) and the
// presentation layer (reader); a mutex-guarded snapshot swap is all the
// synchronization required.
type Aggregator struct {
	mu sync.Mutex

	trackIndex   int
	trackTotal   int
	trackTitle   string
	speed        string
	trackPercent float64

	// High-water mark; never decreases for the lifetime of a job.
	playlistPercent float64
}

// NewAggregator creates an aggregator for a job with the given track count.
func NewAggregator(trackTotal int) *Aggregator {
	return &Aggregator{trackTotal: trackTotal}
}

// StartTrack resets track-level progress for a new active track and returns
// the resulting snapshot. The track bar starts at 0 for every track.
func (a *Aggregator) StartTrack(index int, title string) model.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.trackIndex = index
	a.trackTitle = title
	a.trackPercent = 0
	a.speed = ""

	return a.snapshotLocked()
}

// UpdateBytes records raw byte progress for the active track. Percent values
// are clamped to [0,100]; an unknown total leaves the track bar unchanged.
func (a *Aggregator) UpdateBytes(downloaded, total int64, speed string) model.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	if total > 0 {
		a.trackPercent = clamp(float64(downloaded) / float64(total) * 100)
	}
	if speed != "" {
		a.speed = speed
	}

	fraction := a.trackPercent / 100
	if fraction > activeTrackMaxFraction {
		fraction = activeTrackMaxFraction
	}
	a.advancePlaylist(float64(a.trackIndex) + fraction)

	return a.snapshotLocked()
}

// FinishTrack marks the track at index as attempted (done or failed) and
// moves the playlist bar to the corresponding boundary.
func (a *Aggregator) FinishTrack(index int) model.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.trackIndex = index
	a.trackPercent = 100
	a.advancePlaylist(float64(index) + 1)

	return a.snapshotLocked()
}

// Complete pins both bars to 100 after the final track reached a terminal
// status.
func (a *Aggregator) Complete() model.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.trackPercent = 100
	a.playlistPercent = 100

	return a.snapshotLocked()
}

// Snapshot returns the latest snapshot.
func (a *Aggregator) Snapshot() model.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// advancePlaylist recomputes the playlist percentage from completed track
// units, keeping it clamped and monotonically non-decreasing.
func (a *Aggregator) advancePlaylist(units float64) {
	if a.trackTotal <= 0 {
		return
	}
	candidate := clamp(units / float64(a.trackTotal) * 100)
	if candidate > a.playlistPercent {
		a.playlistPercent = candidate
	}
}

func (a *Aggregator) snapshotLocked() model.ProgressSnapshot {
	return model.ProgressSnapshot{
		TrackIndex:      a.trackIndex,
		TrackTotal:      a.trackTotal,
		TrackPercent:    a.trackPercent,
		PlaylistPercent: a.playlistPercent,
		TrackTitle:      a.trackTitle,
		Speed:           a.speed,
	}
}

func clamp(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

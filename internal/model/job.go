package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix prefixes generated playlist job identifiers
const JobIDPrefix = "job-"

// PlaylistJob represents one batch download run: a playlist URL submitted by
// the user, the tracks it resolved to, and the outcome of every attempt.
// A job is created per run and discarded afterwards; a re-run is a new job.
type PlaylistJob struct {
	ID     string
	URL    string
	Title  string // playlist title, set after resolution
	Tracks []*TrackRef

	DestDir string // destination folder derived from the playlist title
	Status  JobStatus
	Error   string // resolution/environment failure detail

	FailedTracks []*TrackRef // tracks that failed, in attempt order

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewPlaylistJob creates a job for the given playlist URL in the idle state.
func NewPlaylistJob(url string) *PlaylistJob {
	return &PlaylistJob{
		ID:        generateJobID(),
		URL:       url,
		Status:    JobStatusIdle,
		StartedAt: time.Now(),
	}
}

// TrackTotal returns the number of resolved tracks.
func (j *PlaylistJob) TrackTotal() int {
	return len(j.Tracks)
}

// DoneCount returns the number of tracks downloaded successfully so far.
func (j *PlaylistJob) DoneCount() int {
	count := 0
	for _, t := range j.Tracks {
		if t.Status == TrackStatusDone {
			count++
		}
	}
	return count
}

// FailedCount returns the number of tracks that failed so far.
func (j *PlaylistJob) FailedCount() int {
	return len(j.FailedTracks)
}

// RecordFailure marks a track failed with the given reason and appends it to
// the failed-track list.
func (j *PlaylistJob) RecordFailure(track *TrackRef, reason string) {
	track.Status = TrackStatusFailed
	track.Error = reason
	j.FailedTracks = append(j.FailedTracks, track)
}

// HasFailures returns true if at least one track failed. A completed job
// with failures is reported distinctly from a clean completion.
func (j *PlaylistJob) HasFailures() bool {
	return len(j.FailedTracks) > 0
}

// Summary returns a one-line description of the job outcome suitable for
// the status line and notifications.
func (j *PlaylistJob) Summary() string {
	switch j.Status {
	case JobStatusCompleted:
		if j.HasFailures() {
			return fmt.Sprintf("Completed: %d of %d tracks downloaded, %d failed",
				j.DoneCount(), j.TrackTotal(), j.FailedCount())
		}
		return fmt.Sprintf("Completed: %d tracks downloaded", j.DoneCount())
	case JobStatusAborted:
		return fmt.Sprintf("Cancelled: %d of %d tracks downloaded", j.DoneCount(), j.TrackTotal())
	case JobStatusEmpty:
		return "Playlist contains no tracks"
	case JobStatusFailed:
		if j.Error != "" {
			return "Failed: " + j.Error
		}
		return "Failed"
	default:
		return j.Status.String()
	}
}

// generateJobID generates a unique job ID using UUID v7 for better uniqueness and time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}

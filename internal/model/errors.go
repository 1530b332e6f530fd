package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for job control flow.
var (
	// ErrEmptyPlaylist is returned when a playlist resolves to zero tracks.
	ErrEmptyPlaylist = errors.New("playlist contains no tracks")

	// ErrCancelled is returned when the user cancelled the job.
	ErrCancelled = errors.New("cancelled by user")
)

// ResolutionError reports that playlist enumeration failed: invalid URL,
// unreachable service, or an empty playlist (wrapping ErrEmptyPlaylist).
// It aborts the whole job.
type ResolutionError struct {
	URL string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve playlist %s: %v", e.URL, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// TrackDownloadError reports a single-track download or conversion failure.
// The orchestrator records it and continues with the next track.
type TrackDownloadError struct {
	Track string
	Err   error
}

func (e *TrackDownloadError) Error() string {
	return fmt.Sprintf("download track %q: %v", e.Track, e.Err)
}

func (e *TrackDownloadError) Unwrap() error {
	return e.Err
}

// EnvironmentError reports that a required external tool is missing from the
// execution path and could not be provisioned. It aborts the whole job
// before any download.
type EnvironmentError struct {
	Tool string
	Err  error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("required tool %s is not available: %v", e.Tool, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

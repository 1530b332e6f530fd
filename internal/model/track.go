package model

import "strings"

// TrackRef represents a single resolved playlist entry. Identity fields are
// fixed at resolution time; only the outcome fields change afterwards.
type TrackRef struct {
	ID          string  // engine-reported identifier, may be empty
	Title       string  // track title as reported by the service
	Artist      string  // uploader or artist name, may be empty
	URL         string  // resolvable source URL handed to the engine
	DurationSec float64 // duration in seconds, 0 if unknown

	Status     TrackStatus
	Error      string // failure detail when Status is failed
	OutputPath string // final audio file path when Status is done
	FileSize   int64  // size of the final file in bytes, 0 if unknown
}

// DisplayTitle returns the track title, falling back to the source URL
// when the service did not report one.
func (t *TrackRef) DisplayTitle() string {
	title := strings.TrimSpace(t.Title)
	if title != "" {
		return title
	}
	return t.URL
}

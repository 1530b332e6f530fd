package model

// TrackStatus represents the status of a single track within a job
type TrackStatus string

const (
	// TrackStatusPending means the track is resolved but not downloaded yet
	TrackStatusPending TrackStatus = "pending"

	// TrackStatusDownloading means the track download is in progress
	TrackStatusDownloading TrackStatus = "downloading"

	// TrackStatusDone means the track was downloaded and converted
	TrackStatusDone TrackStatus = "done"

	// TrackStatusFailed means the track download failed
	TrackStatusFailed TrackStatus = "failed"
)

// String returns the string representation of TrackStatus
func (ts TrackStatus) String() string {
	return string(ts)
}

// IsTerminal returns true if the track reached a final state (done or failed)
func (ts TrackStatus) IsTerminal() bool {
	return ts == TrackStatusDone || ts == TrackStatusFailed
}

// JobStatus represents the lifecycle state of a playlist job
type JobStatus string

const (
	// JobStatusIdle means the job was created but not started
	JobStatusIdle JobStatus = "idle"

	// JobStatusResolving means playlist metadata is being enumerated
	JobStatusResolving JobStatus = "resolving"

	// JobStatusDownloading means the per-track download loop is running
	JobStatusDownloading JobStatus = "downloading"

	// JobStatusCompleted means every track was attempted
	JobStatusCompleted JobStatus = "completed"

	// JobStatusAborted means the user cancelled the job
	JobStatusAborted JobStatus = "aborted"

	// JobStatusEmpty means the playlist resolved to zero tracks
	JobStatusEmpty JobStatus = "empty"

	// JobStatusFailed means resolution or the environment check failed
	JobStatusFailed JobStatus = "failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in a running state
func (js JobStatus) IsActive() bool {
	return js == JobStatusResolving || js == JobStatusDownloading
}

// IsTerminal returns true if the job reached a final state
func (js JobStatus) IsTerminal() bool {
	switch js {
	case JobStatusCompleted, JobStatusAborted, JobStatusEmpty, JobStatusFailed:
		return true
	}
	return false
}

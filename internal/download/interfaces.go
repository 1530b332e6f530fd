package download

import (
	"context"

	"github.com/scget/sc-downloader/internal/engine"
	"github.com/scget/sc-downloader/internal/model"
)

// Engine is the download backend consumed by the orchestrator. The real
// implementation shells out to yt-dlp; tests substitute a scripted fake.
type Engine interface {
	// EnsureAvailable verifies external tooling before any work starts.
	EnsureAvailable(ctx context.Context) error

	// ResolvePlaylist expands a playlist URL into an ordered track list
	// without downloading any media.
	ResolvePlaylist(ctx context.Context, url string) (*engine.PlaylistInfo, error)

	// DownloadTrack fetches and converts a single track, reporting raw
	// byte progress through onProgress.
	DownloadTrack(ctx context.Context, req engine.TrackRequest, onProgress engine.ProgressFunc) (*engine.TrackResult, error)
}

// Events carries orchestrator callbacks into the presentation layer. All
// callbacks are optional and fire on the worker goroutine; UI
// implementations must marshal onto their event loop themselves.
type Events struct {
	// OnState fires after every job status transition.
	OnState func(job *model.PlaylistJob)

	// OnProgress fires for every progress snapshot change.
	OnProgress func(snapshot model.ProgressSnapshot)

	// OnTrack fires when a track reaches done or failed.
	OnTrack func(track *model.TrackRef, index, total int)

	// OnLog receives human readable activity lines.
	OnLog func(line string)
}

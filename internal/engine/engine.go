package engine

import (
	"context"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/scget/sc-downloader/internal/logger"
	"github.com/scget/sc-downloader/internal/model"
	"github.com/scget/sc-downloader/internal/platform"
)

// External tool constants
const (
	YtdlpCommand  = "yt-dlp"
	FFmpegCommand = "ffmpeg"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// ProgressInterval is how often progress updates are sampled during a
// track download.
const ProgressInterval = 500 * time.Millisecond

// Engine wraps the yt-dlp binary behind two operations: resolving a
// playlist into a track list and downloading a single track as audio.
type Engine struct {
	resolveTimeout time.Duration
}

// New creates an engine with default settings.
func New() *Engine {
	return &Engine{
		resolveTimeout: DefaultResolveTimeout,
	}
}

// SetResolveTimeout sets the timeout for playlist resolution.
func (e *Engine) SetResolveTimeout(timeout time.Duration) {
	e.resolveTimeout = timeout
}

// EnsureAvailable verifies that yt-dlp and ffmpeg are usable, downloading
// a yt-dlp binary when none is on PATH. It must be called before any
// resolve or download operation.
func (e *Engine) EnsureAvailable(ctx context.Context) error {
	install, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return &model.EnvironmentError{Tool: YtdlpCommand, Err: err}
	}
	logger.Debug("download engine ready", logger.String("executable", install.Executable))

	// Audio extraction shells out to ffmpeg, which go-ytdlp does not
	// provision.
	if _, err := platform.LookupTool(FFmpegCommand); err != nil {
		return &model.EnvironmentError{Tool: FFmpegCommand, Err: err}
	}

	return nil
}

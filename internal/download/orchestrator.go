package download

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/scget/sc-downloader/internal/audio"
	"github.com/scget/sc-downloader/internal/engine"
	"github.com/scget/sc-downloader/internal/logger"
	"github.com/scget/sc-downloader/internal/model"
	"github.com/scget/sc-downloader/internal/platform"
	"github.com/scget/sc-downloader/internal/progress"
)

// FallbackPlaylistName names the destination folder when the service does
// not report a playlist title.
const FallbackPlaylistName = "playlist"

// Options configure how a playlist job is downloaded and post-processed.
type Options struct {
	BaseDir   string // parent folder for the playlist folder
	Format    string // target audio container, e.g. "mp3"
	Bitrate   string // target audio bitrate, e.g. "192k"
	WriteM3U  bool   // write an extended M3U file next to the tracks
	EmbedTags bool   // embed ID3 metadata into MP3 files
}

// Orchestrator executes playlist jobs: resolve the URL into a track list,
// download every track strictly in order, then post-process the
// destination folder. One orchestrator runs one job at a time.
type Orchestrator struct {
	engine Engine
	opts   Options
	events Events

	mu        sync.Mutex
	job       *model.PlaylistJob
	cancelled bool
}

// NewOrchestrator creates an orchestrator around a download engine.
func NewOrchestrator(eng Engine, opts Options, events Events) *Orchestrator {
	return &Orchestrator{
		engine: eng,
		opts:   opts,
		events: events,
	}
}

// Job returns the most recent job, or nil before the first run.
func (o *Orchestrator) Job() *model.PlaylistJob {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.job
}

// Cancel requests a graceful stop. The track currently downloading is
// allowed to finish; the loop stops before the next one starts. Stopping
// mid-download is done by cancelling the context passed to Run.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	o.cancelled = true
	o.mu.Unlock()
	o.logf("Cancelling after the current track")
}

// Run executes one playlist job from resolution to a terminal status and
// blocks until done. Completed jobs return a nil error even when single
// tracks failed; an empty playlist returns a ResolutionError wrapping
// ErrEmptyPlaylist, cancellation returns ErrCancelled, and resolution or
// environment failures return their cause. The returned job carries the
// terminal status and per-track outcomes in every case.
func (o *Orchestrator) Run(ctx context.Context, url string) (*model.PlaylistJob, error) {
	job := model.NewPlaylistJob(url)

	o.mu.Lock()
	o.job = job
	o.mu.Unlock()

	// A cancellation that arrived while the job was still queued skips
	// resolution entirely.
	if o.isCancelled() {
		return o.abort(job)
	}

	o.transition(job, model.JobStatusResolving)
	o.logf("Resolving playlist")

	if err := o.engine.EnsureAvailable(ctx); err != nil {
		return o.fail(job, err)
	}

	playlist, err := o.engine.ResolvePlaylist(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return o.abort(job)
		}
		return o.fail(job, err)
	}

	o.mu.Lock()
	job.Title = playlist.Title
	job.Tracks = playlist.Tracks
	o.mu.Unlock()

	if job.TrackTotal() == 0 {
		o.finish(job, model.JobStatusEmpty)
		return job, &model.ResolutionError{URL: url, Err: model.ErrEmptyPlaylist}
	}

	destDir, err := o.prepareDestDir(job)
	if err != nil {
		return o.fail(job, err)
	}
	o.mu.Lock()
	job.DestDir = destDir
	o.mu.Unlock()

	o.logf("Found %d tracks in %q", job.TrackTotal(), job.Title)
	o.transition(job, model.JobStatusDownloading)

	agg := progress.NewAggregator(job.TrackTotal())
	if aborted := o.downloadAll(ctx, job, agg); aborted {
		return o.abort(job)
	}

	o.postProcess(job)

	o.notifyProgress(agg.Complete())
	o.finish(job, model.JobStatusCompleted)

	return job, nil
}

// downloadAll iterates the resolved tracks in playlist order. A failed
// track is recorded and the loop continues; the cancellation flag and the
// context are checked between tracks.
func (o *Orchestrator) downloadAll(ctx context.Context, job *model.PlaylistJob, agg *progress.Aggregator) (aborted bool) {
	total := job.TrackTotal()
	usedNames := make(map[string]bool)

	for i, track := range job.Tracks {
		if ctx.Err() != nil || o.isCancelled() {
			return true
		}

		o.notifyProgress(agg.StartTrack(i, track.DisplayTitle()))
		o.logf("Downloading %d of %d: %s", i+1, total, track.DisplayTitle())

		o.mu.Lock()
		track.Status = model.TrackStatusDownloading
		o.mu.Unlock()

		baseName := platform.EnsureUniqueName(platform.SanitizeFileName(track.DisplayTitle()), usedNames)
		req := engine.TrackRequest{
			URL:      track.URL,
			DestDir:  job.DestDir,
			BaseName: baseName,
			Format:   o.opts.Format,
			Bitrate:  o.opts.Bitrate,
		}

		result, err := o.engine.DownloadTrack(ctx, req, func(downloaded, totalBytes int64, speed string) {
			o.notifyProgress(agg.UpdateBytes(downloaded, totalBytes, speed))
		})
		if err != nil {
			if ctx.Err() != nil {
				return true
			}

			trackErr := &model.TrackDownloadError{Track: track.DisplayTitle(), Err: err}
			o.mu.Lock()
			job.RecordFailure(track, err.Error())
			o.mu.Unlock()

			logger.Warn("track download failed",
				logger.String("job", job.ID),
				logger.ErrorField(trackErr))
			o.logf("Failed: %s (%v)", track.DisplayTitle(), err)
			o.notifyTrack(track, i, total)
			o.notifyProgress(agg.FinishTrack(i))
			continue
		}

		o.mu.Lock()
		track.Status = model.TrackStatusDone
		track.OutputPath = result.OutputPath
		track.FileSize = result.FileSize
		if track.Title == "" {
			track.Title = result.Title
		}
		if track.Artist == "" {
			track.Artist = result.Artist
		}
		if track.DurationSec <= 0 {
			track.DurationSec = result.DurationSec
		}
		o.mu.Unlock()

		o.logf("Done: %s", track.DisplayTitle())
		o.notifyTrack(track, i, total)
		o.notifyProgress(agg.FinishTrack(i))
	}

	return false
}

// prepareDestDir derives the destination folder from the playlist title
// and creates it.
func (o *Orchestrator) prepareDestDir(job *model.PlaylistJob) (string, error) {
	title := job.Title
	if strings.TrimSpace(title) == "" {
		title = FallbackPlaylistName
	}

	dir := filepath.Join(o.opts.BaseDir, platform.SanitizeDirName(title))
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create destination folder: %w", err)
	}

	return dir, nil
}

// postProcess runs the optional steps after the track loop: metadata
// tagging and the playlist file. Both are best effort and never change
// the job outcome.
func (o *Orchestrator) postProcess(job *model.PlaylistJob) {
	if o.opts.EmbedTags {
		o.embedTags(job)
	}
	if o.opts.WriteM3U {
		o.writePlaylistFile(job)
	}
}

func (o *Orchestrator) embedTags(job *model.PlaylistJob) {
	total := job.TrackTotal()
	for i, track := range job.Tracks {
		if track.Status != model.TrackStatusDone || track.OutputPath == "" {
			continue
		}

		tags := audio.TrackTags{
			Title:       track.DisplayTitle(),
			Artist:      track.Artist,
			Album:       job.Title,
			TrackNumber: i + 1,
			TrackTotal:  total,
		}
		if err := audio.WriteTags(track.OutputPath, tags); err != nil {
			logger.Warn("failed to tag track",
				logger.String("path", track.OutputPath),
				logger.ErrorField(err))
		}
	}
}

func (o *Orchestrator) writePlaylistFile(job *model.PlaylistJob) {
	// EXTINF needs durations; probe files the service reported none for.
	for _, track := range job.Tracks {
		if track.Status != model.TrackStatusDone || track.DurationSec > 0 || track.OutputPath == "" {
			continue
		}
		if seconds, err := audio.ProbeDuration(track.OutputPath); err == nil {
			track.DurationSec = seconds
		}
	}

	path := filepath.Join(job.DestDir, platform.SanitizeFileName(job.Title)+audio.M3UExtension)
	if err := audio.WriteM3U(path, job.Tracks); err != nil {
		logger.Warn("failed to write playlist file",
			logger.String("path", path),
			logger.ErrorField(err))
		return
	}
	o.logf("Playlist file written: %s", filepath.Base(path))
}

func (o *Orchestrator) isCancelled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cancelled
}

func (o *Orchestrator) transition(job *model.PlaylistJob, status model.JobStatus) {
	o.mu.Lock()
	job.Status = status
	o.mu.Unlock()

	logger.Debug("job status changed",
		logger.String("job", job.ID),
		logger.String("status", status.String()))
	o.notifyState(job)
}

func (o *Orchestrator) finish(job *model.PlaylistJob, status model.JobStatus) {
	o.mu.Lock()
	job.Status = status
	job.FinishedAt = time.Now()
	o.mu.Unlock()

	logger.Info("job finished",
		logger.String("job", job.ID),
		logger.String("status", status.String()),
		logger.Int("done", job.DoneCount()),
		logger.Int("failed", job.FailedCount()))
	o.notifyState(job)
	o.logf("%s", job.Summary())
}

func (o *Orchestrator) fail(job *model.PlaylistJob, err error) (*model.PlaylistJob, error) {
	o.mu.Lock()
	job.Error = err.Error()
	o.mu.Unlock()

	o.finish(job, model.JobStatusFailed)
	return job, err
}

func (o *Orchestrator) abort(job *model.PlaylistJob) (*model.PlaylistJob, error) {
	o.finish(job, model.JobStatusAborted)
	return job, model.ErrCancelled
}

func (o *Orchestrator) notifyState(job *model.PlaylistJob) {
	if o.events.OnState != nil {
		o.events.OnState(job)
	}
}

func (o *Orchestrator) notifyProgress(snapshot model.ProgressSnapshot) {
	if o.events.OnProgress != nil {
		o.events.OnProgress(snapshot)
	}
}

func (o *Orchestrator) notifyTrack(track *model.TrackRef, index, total int) {
	if o.events.OnTrack != nil {
		o.events.OnTrack(track, index, total)
	}
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.events.OnLog != nil {
		o.events.OnLog(fmt.Sprintf(format, args...))
	}
}

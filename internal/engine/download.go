package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lrstanley/go-ytdlp"
)

// TrackRequest describes one track download: where the media comes from
// and how the converted file is named.
type TrackRequest struct {
	URL      string
	DestDir  string
	BaseName string // final file name without extension
	Format   string // target audio container, e.g. "mp3"
	Bitrate  string // target audio bitrate, e.g. "192k"
}

// TrackResult carries the outcome of a finished track download.
type TrackResult struct {
	OutputPath  string
	FileSize    int64
	Title       string
	Artist      string
	DurationSec float64
}

// ProgressFunc receives raw byte progress while a track downloads. A zero
// total means the size is not known yet.
type ProgressFunc func(downloaded, total int64, speed string)

// DownloadTrack downloads one track and converts it to the requested audio
// format. The returned result points at the converted file.
func (e *Engine) DownloadTrack(ctx context.Context, req TrackRequest, onProgress ProgressFunc) (*TrackResult, error) {
	template := filepath.Join(req.DestDir, escapeTemplate(req.BaseName)+".%(ext)s")

	dl := ytdlp.New().
		ForceOverwrites().
		NoPlaylist().
		ExtractAudio().
		AudioFormat(req.Format).
		AudioQuality(req.Bitrate).
		Output(template)

	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		if onProgress == nil {
			return
		}
		onProgress(int64(update.DownloadedBytes), int64(update.TotalBytes), downloadSpeed(&update))
	})

	result, err := dl.Run(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	res := &TrackResult{
		OutputPath: filepath.Join(req.DestDir, req.BaseName+"."+req.Format),
	}

	if infos, infoErr := result.GetExtractedInfo(); infoErr == nil && len(infos) > 0 {
		info := infos[0]
		res.Title = stringValue(info.Title)
		if info.Uploader != nil {
			res.Artist = *info.Uploader
		}
		if info.Duration != nil {
			res.DurationSec = *info.Duration
		}
		// The reported filename is the pre-conversion download; fall back
		// to it with the target extension if the expected file is missing.
		if _, statErr := os.Stat(res.OutputPath); statErr != nil && info.Filename != nil {
			res.OutputPath = convertedPath(*info.Filename, req.Format)
		}
	}

	if fi, statErr := os.Stat(res.OutputPath); statErr == nil {
		res.FileSize = fi.Size()
	}

	return res, nil
}

// downloadSpeed derives a human readable transfer rate from the bytes
// downloaded since the transfer started.
func downloadSpeed(update *ytdlp.ProgressUpdate) string {
	if update.Started.IsZero() {
		return ""
	}
	elapsed := time.Since(update.Started)
	if elapsed.Seconds() <= 0 {
		return ""
	}
	bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
	return humanize.Bytes(uint64(bytesPerSecond)) + "/s"
}

// escapeTemplate makes a literal file name safe for use inside a yt-dlp
// output template, where percent signs introduce format fields.
func escapeTemplate(name string) string {
	return strings.ReplaceAll(name, "%", "%%")
}

// convertedPath swaps the extension of an engine-reported download path
// for the post-conversion audio format.
func convertedPath(reported, format string) string {
	ext := filepath.Ext(reported)
	return strings.TrimSuffix(reported, ext) + "." + format
}

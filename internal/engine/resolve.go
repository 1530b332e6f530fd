package engine

import (
	"context"
	"fmt"

	"github.com/lrstanley/go-ytdlp"

	"github.com/scget/sc-downloader/internal/logger"
	"github.com/scget/sc-downloader/internal/model"
)

// PlaylistInfo is the engine's view of a resolved playlist: its identity
// plus the ordered track list. A URL pointing at a single track resolves
// to a one-track playlist.
type PlaylistInfo struct {
	ID     string
	Title  string
	URL    string
	Tracks []*model.TrackRef
}

// ResolvePlaylist fetches playlist metadata without downloading any media.
// The returned track order is the playlist order as reported by the
// service.
func (e *Engine) ResolvePlaylist(ctx context.Context, url string) (*PlaylistInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, e.resolveTimeout)
	defer cancel()

	logger.Debug("resolving playlist", logger.String("url", url))

	dl := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		FlatPlaylist().
		YesPlaylist().
		DumpSingleJSON()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, &model.ResolutionError{URL: url, Err: err}
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, &model.ResolutionError{URL: url, Err: fmt.Errorf("failed to parse playlist info: %w", err)}
	}
	if len(infos) == 0 {
		return nil, &model.ResolutionError{URL: url, Err: fmt.Errorf("no playlist info returned")}
	}

	info := infos[0]
	playlist := &PlaylistInfo{
		ID:    info.ID,
		Title: stringValue(info.Title),
		URL:   url,
	}

	// A playlist dump always carries an entries list, even when the
	// playlist is empty; a single track never does and becomes a
	// one-track playlist.
	if info.Entries != nil {
		for _, entry := range info.Entries {
			if entry == nil {
				continue
			}
			playlist.Tracks = append(playlist.Tracks, trackFromEntry(entry))
		}
	} else {
		playlist.Tracks = append(playlist.Tracks, trackFromEntry(info))
	}

	logger.Info("playlist resolved",
		logger.String("title", playlist.Title),
		logger.Int("tracks", len(playlist.Tracks)))

	return playlist, nil
}

// trackFromEntry maps one extracted entry onto a pending track.
func trackFromEntry(entry *ytdlp.ExtractedInfo) *model.TrackRef {
	track := &model.TrackRef{
		ID:     entry.ID,
		Title:  stringValue(entry.Title),
		URL:    stringValue(entry.URL),
		Status: model.TrackStatusPending,
	}
	if track.URL == "" {
		track.URL = stringValue(entry.WebpageURL)
	}
	if entry.Uploader != nil {
		track.Artist = *entry.Uploader
	}
	if entry.Duration != nil {
		track.DurationSec = *entry.Duration
	}
	return track
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/scget/sc-downloader/internal/model"
)

// M3U format constants
const (
	M3UHeader          = "#EXTM3U"
	M3UInfoPrefix      = "#EXTINF:"
	M3UExtension       = ".m3u"
	M3UFilePermissions = 0644
	UnknownDuration    = -1
)

// WriteM3U writes an extended M3U file listing the successfully downloaded
// tracks of a job, in playlist order, with paths relative to the playlist
// directory. Failed and skipped tracks are left out.
func WriteM3U(path string, tracks []*model.TrackRef) error {
	var b strings.Builder

	b.WriteString(M3UHeader)
	b.WriteString("\n")

	for _, track := range tracks {
		if track.Status != model.TrackStatusDone || track.OutputPath == "" {
			continue
		}
		fmt.Fprintf(&b, "%s%d,%s\n", M3UInfoPrefix, durationSeconds(track), entryName(track))
		b.WriteString(filepath.Base(track.OutputPath))
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), M3UFilePermissions); err != nil {
		return fmt.Errorf("failed to write playlist file: %w", err)
	}

	return nil
}

// durationSeconds rounds the track duration for the EXTINF directive,
// falling back to the unknown marker.
func durationSeconds(track *model.TrackRef) int {
	if track.DurationSec <= 0 {
		return UnknownDuration
	}
	return int(math.Round(track.DurationSec))
}

// entryName renders the EXTINF display name as "Artist - Title" when the
// artist is known.
func entryName(track *model.TrackRef) string {
	title := track.DisplayTitle()
	if track.Artist != "" {
		return track.Artist + " - " + title
	}
	return title
}

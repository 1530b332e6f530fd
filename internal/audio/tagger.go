package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// ID3 frame identifiers written by the tagger
const (
	TrackNumberFrameID = "TRCK"
	TaggableExtension  = ".mp3"
)

// TrackTags holds the metadata written into a downloaded audio file.
// Empty fields are skipped.
type TrackTags struct {
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	TrackTotal  int
}

// WriteTags embeds ID3v2 metadata into the file at path. Only MP3 files
// carry ID3 tags; other formats are silently skipped so the conversion
// format setting does not break the pipeline.
func WriteTags(path string, tags TrackTags) error {
	if !strings.EqualFold(filepath.Ext(path), TaggableExtension) {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open file for tagging: %w", err)
	}
	defer tag.Close()

	if tags.Title != "" {
		tag.SetTitle(tags.Title)
	}
	if tags.Artist != "" {
		tag.SetArtist(tags.Artist)
	}
	if tags.Album != "" {
		tag.SetAlbum(tags.Album)
	}
	if tags.TrackNumber > 0 {
		tag.AddTextFrame(TrackNumberFrameID, id3v2.EncodingUTF8, formatTrackNumber(tags.TrackNumber, tags.TrackTotal))
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}

	return nil
}

// formatTrackNumber renders the TRCK payload, with the playlist length as
// the set size when known.
func formatTrackNumber(number, total int) string {
	if total > 0 {
		return fmt.Sprintf("%d/%d", number, total)
	}
	return fmt.Sprintf("%d", number)
}

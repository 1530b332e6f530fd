package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// fakeAudioPayload stands in for MPEG frame data so that the tag library
// has a file body to preserve when rewriting tags.
var fakeAudioPayload = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 32)

func TestWriteTags_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.mp3")
	if err := os.WriteFile(path, fakeAudioPayload, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tags := TrackTags{
		Title:       "Night Drive",
		Artist:      "Some Uploader",
		Album:       "Evening Mix",
		TrackNumber: 3,
		TrackTotal:  12,
	}
	if err := WriteTags(path, tags); err != nil {
		t.Fatalf("WriteTags failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to reopen tagged file: %v", err)
	}
	defer tag.Close()

	if tag.Title() != "Night Drive" {
		t.Errorf("Title() = %q, expected %q", tag.Title(), "Night Drive")
	}
	if tag.Artist() != "Some Uploader" {
		t.Errorf("Artist() = %q, expected %q", tag.Artist(), "Some Uploader")
	}
	if tag.Album() != "Evening Mix" {
		t.Errorf("Album() = %q, expected %q", tag.Album(), "Evening Mix")
	}
	trck := tag.GetTextFrame(TrackNumberFrameID).Text
	if trck != "3/12" {
		t.Errorf("TRCK = %q, expected %q", trck, "3/12")
	}
}

func TestWriteTags_PreservesAudioPayload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.mp3")
	if err := os.WriteFile(path, fakeAudioPayload, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := WriteTags(path, TrackTags{Title: "Payload Check"}); err != nil {
		t.Fatalf("WriteTags failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read tagged file: %v", err)
	}
	if !bytes.HasSuffix(data, fakeAudioPayload) {
		t.Error("audio payload was not preserved after tagging")
	}
}

func TestWriteTags_SkipsNonMP3(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.opus")
	if err := os.WriteFile(path, fakeAudioPayload, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := WriteTags(path, TrackTags{Title: "Ignored"}); err != nil {
		t.Fatalf("WriteTags failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if !bytes.Equal(data, fakeAudioPayload) {
		t.Error("non-MP3 file must not be modified")
	}
}

func TestFormatTrackNumber(t *testing.T) {
	tests := []struct {
		number   int
		total    int
		expected string
	}{
		{3, 12, "3/12"},
		{1, 0, "1"},
		{7, 7, "7/7"},
	}

	for _, tt := range tests {
		result := formatTrackNumber(tt.number, tt.total)
		if result != tt.expected {
			t.Errorf("formatTrackNumber(%d, %d) = %q, expected %q", tt.number, tt.total, result, tt.expected)
		}
	}
}

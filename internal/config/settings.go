package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/scget/sc-downloader/internal/platform"
)

// AudioFormat is the target container tracks are converted to
type AudioFormat string

const (
	FormatMP3  AudioFormat = "mp3"
	FormatM4A  AudioFormat = "m4a"
	FormatOpus AudioFormat = "opus"
	FormatFLAC AudioFormat = "flac"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyAudioFormat        = "audio_format"
	KeyAudioBitrate       = "audio_bitrate"
	KeyWritePlaylistFile  = "write_playlist_file"
	KeyEmbedTags          = "embed_tags"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultAudioFormat        = FormatMP3
	DefaultAudioBitrate       = "192k"
	DefaultWritePlaylistFile  = true
	DefaultEmbedTags          = true
	DefaultAutoRevealComplete = true

	// DefaultDownloadSubdir is created under the user's Downloads folder
	// on first run.
	DefaultDownloadSubdir = "SoundCloud"

	// FallbackDownloadDir is used when no home directory can be resolved.
	FallbackDownloadDir = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		downloadsDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			downloadsDir = FallbackDownloadDir
		}
		dir = filepath.Join(downloadsDir, DefaultDownloadSubdir)
		s.SetDownloadDirectory(dir)
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetAudioFormat returns the configured conversion format
func (s *Settings) GetAudioFormat() AudioFormat {
	format := AudioFormat(s.app.Preferences().String(KeyAudioFormat))
	if !isValidFormat(format) {
		s.SetAudioFormat(DefaultAudioFormat)
		return DefaultAudioFormat
	}
	return format
}

// SetAudioFormat sets the conversion format, falling back to the default
// for unknown values
func (s *Settings) SetAudioFormat(format AudioFormat) {
	if !isValidFormat(format) {
		format = DefaultAudioFormat
	}
	s.app.Preferences().SetString(KeyAudioFormat, string(format))
}

// GetAudioBitrate returns the configured conversion bitrate
func (s *Settings) GetAudioBitrate() string {
	bitrate := s.app.Preferences().String(KeyAudioBitrate)
	if bitrate == "" {
		s.SetAudioBitrate(DefaultAudioBitrate)
		return DefaultAudioBitrate
	}
	return bitrate
}

// SetAudioBitrate sets the conversion bitrate
func (s *Settings) SetAudioBitrate(bitrate string) {
	if bitrate == "" {
		bitrate = DefaultAudioBitrate
	}
	s.app.Preferences().SetString(KeyAudioBitrate, bitrate)
}

// GetWritePlaylistFile returns whether an M3U file is written after a job
func (s *Settings) GetWritePlaylistFile() bool {
	return s.app.Preferences().BoolWithFallback(KeyWritePlaylistFile, DefaultWritePlaylistFile)
}

// SetWritePlaylistFile sets whether an M3U file is written after a job
func (s *Settings) SetWritePlaylistFile(enabled bool) {
	s.app.Preferences().SetBool(KeyWritePlaylistFile, enabled)
}

// GetEmbedTags returns whether ID3 metadata is embedded into MP3 files
func (s *Settings) GetEmbedTags() bool {
	return s.app.Preferences().BoolWithFallback(KeyEmbedTags, DefaultEmbedTags)
}

// SetEmbedTags sets whether ID3 metadata is embedded into MP3 files
func (s *Settings) SetEmbedTags(enabled bool) {
	s.app.Preferences().SetBool(KeyEmbedTags, enabled)
}

// GetAutoRevealOnComplete returns whether the destination folder opens
// after a completed job
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether the destination folder opens after
// a completed job
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetAudioFormatOptions returns the supported conversion formats
func (s *Settings) GetAudioFormatOptions() []AudioFormat {
	return []AudioFormat{FormatMP3, FormatM4A, FormatOpus, FormatFLAC}
}

// GetAudioBitrateOptions returns the supported conversion bitrates
func (s *Settings) GetAudioBitrateOptions() []string {
	return []string{"128k", "192k", "256k", "320k"}
}

func isValidFormat(format AudioFormat) bool {
	switch format {
	case FormatMP3, FormatM4A, FormatOpus, FormatFLAC:
		return true
	}
	return false
}

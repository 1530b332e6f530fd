package audio

// Package audio post-processes downloaded files: embedding ID3 metadata,
// writing extended M3U playlist files, and probing durations with ffprobe.

package engine

// Package engine wraps the yt-dlp binary: provisioning it on demand,
// resolving playlists into track lists, and downloading single tracks
// with audio extraction and progress reporting.

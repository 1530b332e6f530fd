package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// AppTitle is the main window title.
const AppTitle = "SC Playlist Downloader"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Status line texts
const (
	StatusReady     = "Ready"
	StatusResolving = "Resolving playlist…"
)

// Activity log behavior
const (
	MaxLogLines = 500
)

package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the download orchestrator and renders the track
// and playlist progress bars, the activity log, notifications, and settings.

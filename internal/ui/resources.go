package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "sc-downloader.png"
)

// LoadAppIcon loads the application icon from the working directory.
// The icon is optional; callers skip SetIcon when the file is absent.
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/scget/sc-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// OnSaved is called after the settings were persisted.
	OnSaved func()

	// UI components
	folderEntry   *widget.Entry
	formatSelect  *widget.Select
	bitrateSelect *widget.Select
	m3uCheck      *widget.Check
	tagsCheck     *widget.Check
	revealCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download folder selection
	sd.folderEntry = widget.NewEntry()
	browseBtn := widget.NewButton("Browse", sd.onBrowseFolder)
	folderRow := container.NewBorder(nil, nil, nil, browseBtn, sd.folderEntry)

	// Audio format selection
	formatOptions := []string{}
	for _, format := range sd.settings.GetAudioFormatOptions() {
		formatOptions = append(formatOptions, string(format))
	}
	sd.formatSelect = widget.NewSelect(formatOptions, nil)

	// Audio bitrate selection
	sd.bitrateSelect = widget.NewSelect(sd.settings.GetAudioBitrateOptions(), nil)

	// Post-processing toggles
	sd.m3uCheck = widget.NewCheck("Write .m3u playlist file", nil)
	sd.tagsCheck = widget.NewCheck("Embed title and artist tags", nil)
	sd.revealCheck = widget.NewCheck("Open folder when finished", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Download Folder:"),
		folderRow,

		widget.NewSeparator(),
		widget.NewLabel("Audio Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Audio Format:"),
		sd.formatSelect,

		widget.NewLabel("Bitrate:"),
		sd.bitrateSelect,

		widget.NewSeparator(),
		widget.NewLabel("After Download"),
		widget.NewSeparator(),

		sd.m3uCheck,
		sd.tagsCheck,
		sd.revealCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 480))
}

// onBrowseFolder opens the folder selection dialog
func (sd *SettingsDialog) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.folderEntry.SetText(uri.Path())
	}, sd.window)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.folderEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.formatSelect.SetSelected(string(sd.settings.GetAudioFormat()))
	sd.bitrateSelect.SetSelected(sd.settings.GetAudioBitrate())
	sd.m3uCheck.SetChecked(sd.settings.GetWritePlaylistFile())
	sd.tagsCheck.SetChecked(sd.settings.GetEmbedTags())
	sd.revealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save download folder
	if folder := strings.TrimSpace(sd.folderEntry.Text); folder != "" {
		sd.settings.SetDownloadDirectory(folder)
	}

	// Save audio format
	if sd.formatSelect.Selected != "" {
		sd.settings.SetAudioFormat(config.AudioFormat(sd.formatSelect.Selected))
	}

	// Save audio bitrate
	if sd.bitrateSelect.Selected != "" {
		sd.settings.SetAudioBitrate(sd.bitrateSelect.Selected)
	}

	sd.settings.SetWritePlaylistFile(sd.m3uCheck.Checked)
	sd.settings.SetEmbedTags(sd.tagsCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.revealCheck.Checked)

	if sd.OnSaved != nil {
		sd.OnSaved()
	}

	// Show confirmation
	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}

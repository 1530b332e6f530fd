package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/scget/sc-downloader/internal/config"
	"github.com/scget/sc-downloader/internal/download"
	"github.com/scget/sc-downloader/internal/logger"
	"github.com/scget/sc-downloader/internal/model"
	"github.com/scget/sc-downloader/internal/platform"
)

// RootUI is the main window: a URL row, a destination folder row, the two
// progress bars, a status line and the activity log. One playlist job runs
// at a time; all widget mutations triggered by the worker goroutine are
// marshalled through fyne.Do.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	engine   download.Engine

	urlEntry      *widget.Entry
	folderEntry   *widget.Entry
	startBtn      *widget.Button
	cancelBtn     *widget.Button
	openFolderBtn *widget.Button

	trackLabel    *widget.Label
	positionLabel *widget.Label
	speedLabel    *widget.Label
	trackBar      *widget.ProgressBar
	playlistLabel *widget.Label
	playlistBar   *widget.ProgressBar
	statusLabel   *widget.Label
	logList       *widget.List

	mu         sync.Mutex
	logLines   []string
	running    bool
	currentJob *model.PlaylistJob
	orch       *download.Orchestrator
	cancelRun  context.CancelFunc
}

// NewRootUI creates and initializes the main UI.
func NewRootUI(window fyne.Window, app fyne.App, eng download.Engine) *RootUI {
	settings := config.NewSettings(app)

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn("failed to create downloads directory",
			logger.String("dir", downloadsDir),
			logger.ErrorField(err))
	}

	ui := &RootUI{
		window:   window,
		settings: settings,
		engine:   eng,
	}

	window.SetTitle(AppTitle)
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("Playlist or track URL")
	ui.urlEntry.Validator = ui.validateURL
	// Trigger the download when the user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onStartClick()
	}

	ui.startBtn = widget.NewButton("Download", ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton("Cancel", ui.onCancelClick)
	ui.cancelBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	urlRow := container.NewBorder(nil, nil, settingsBtn,
		container.NewHBox(ui.startBtn, ui.cancelBtn), ui.urlEntry)

	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	browseBtn := widget.NewButton("Browse", ui.onBrowseFolder)
	folderRow := container.NewBorder(nil, nil, widget.NewLabel(IconFolder), browseBtn, ui.folderEntry)

	ui.trackLabel = widget.NewLabel(DashPlaceholder)
	ui.trackLabel.Truncation = fyne.TextTruncateEllipsis
	ui.positionLabel = widget.NewLabel("0 / 0")
	ui.speedLabel = widget.NewLabel("")
	trackInfoRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.positionLabel, ui.speedLabel), ui.trackLabel)

	ui.trackBar = widget.NewProgressBar()

	ui.playlistLabel = widget.NewLabel("Playlist")
	ui.playlistLabel.Truncation = fyne.TextTruncateEllipsis
	ui.playlistBar = widget.NewProgressBar()

	ui.statusLabel = widget.NewLabel(StatusReady)
	ui.openFolderBtn = widget.NewButton("Open Folder", ui.onOpenFolder)
	ui.openFolderBtn.Hide()
	statusRow := container.NewBorder(nil, nil, nil, ui.openFolderBtn, ui.statusLabel)

	ui.logList = widget.NewList(
		func() int {
			ui.mu.Lock()
			defer ui.mu.Unlock()
			return len(ui.logLines)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.mu.Lock()
			defer ui.mu.Unlock()
			if id < 0 || id >= len(ui.logLines) {
				return
			}
			obj.(*widget.Label).SetText(ui.logLines[id])
		},
	)

	header := container.NewVBox(
		urlRow,
		folderRow,
		widget.NewSeparator(),
		trackInfoRow,
		ui.trackBar,
		ui.playlistLabel,
		ui.playlistBar,
		statusRow,
		widget.NewSeparator(),
	)

	content := container.NewBorder(header, nil, nil, nil, ui.logList)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	openFolderItem := fyne.NewMenuItem("Open Download Folder", func() {
		dir := strings.TrimSpace(ui.folderEntry.Text)
		if dir == "" {
			dir = ui.settings.GetDownloadDirectory()
		}
		if err := platform.OpenFolderInManager(dir); err != nil {
			widget.ShowPopUp(widget.NewLabel("Could not open folder: "+err.Error()), ui.window.Canvas())
		}
	})

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem, openFolderItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onStartClick validates the input and starts a playlist job on a worker
// goroutine.
func (ui *RootUI) onStartClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		widget.ShowPopUp(widget.NewLabel("Please enter a playlist URL"), ui.window.Canvas())
		return
	}
	if err := ui.validateURL(urlText); err != nil {
		widget.ShowPopUp(widget.NewLabel("Invalid URL: "+err.Error()), ui.window.Canvas())
		return
	}

	ui.mu.Lock()
	if ui.running {
		ui.mu.Unlock()
		widget.ShowPopUp(widget.NewLabel("A download is already running"), ui.window.Canvas())
		return
	}
	ui.running = true
	ui.mu.Unlock()

	// Clean URL from any special characters that might cause display issues
	cleanURL := strings.ReplaceAll(urlText, "\n", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\r", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\t", " ")
	cleanURL = strings.TrimSpace(cleanURL)

	baseDir := strings.TrimSpace(ui.folderEntry.Text)
	if baseDir == "" {
		baseDir = ui.settings.GetDownloadDirectory()
		ui.folderEntry.SetText(baseDir)
	}
	ui.settings.SetDownloadDirectory(baseDir)

	opts := download.Options{
		BaseDir:   baseDir,
		Format:    string(ui.settings.GetAudioFormat()),
		Bitrate:   ui.settings.GetAudioBitrate(),
		WriteM3U:  ui.settings.GetWritePlaylistFile(),
		EmbedTags: ui.settings.GetEmbedTags(),
	}
	events := download.Events{
		OnState:    ui.onJobState,
		OnProgress: ui.onProgress,
		OnLog:      ui.appendLog,
	}

	orch := download.NewOrchestrator(ui.engine, opts, events)
	ctx, cancel := context.WithCancel(context.Background())

	ui.mu.Lock()
	ui.orch = orch
	ui.cancelRun = cancel
	ui.mu.Unlock()

	ui.resetProgress()
	ui.startBtn.Disable()
	ui.cancelBtn.Enable()
	ui.openFolderBtn.Hide()

	logger.Info("job started from UI", logger.String("url", cleanURL))

	go func() {
		job, err := orch.Run(ctx, cleanURL)
		cancel()
		ui.onJobDone(job, err)
	}()
}

// onCancelClick requests a graceful stop after the current track.
func (ui *RootUI) onCancelClick() {
	ui.mu.Lock()
	orch := ui.orch
	running := ui.running
	ui.mu.Unlock()

	if !running || orch == nil {
		return
	}
	orch.Cancel()
	ui.cancelBtn.Disable()
}

// onBrowseFolder lets the user pick the destination base folder.
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
		ui.settings.SetDownloadDirectory(uri.Path())
	}, ui.window)
}

// onOpenFolder opens the destination folder of the most recent job.
func (ui *RootUI) onOpenFolder() {
	ui.mu.Lock()
	job := ui.currentJob
	ui.mu.Unlock()

	if job == nil || job.DestDir == "" {
		return
	}
	if err := platform.OpenFolderInManager(job.DestDir); err != nil {
		widget.ShowPopUp(widget.NewLabel("Could not open folder: "+err.Error()), ui.window.Canvas())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window)
	sd.OnSaved = func() {
		ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	}
	sd.Show()
}

// onJobState reflects a job status transition in the status line.
func (ui *RootUI) onJobState(job *model.PlaylistJob) {
	fyne.Do(func() {
		switch job.Status {
		case model.JobStatusResolving:
			ui.statusLabel.SetText(StatusResolving)
		case model.JobStatusDownloading:
			ui.statusLabel.SetText(fmt.Sprintf("Downloading %d tracks", job.TrackTotal()))
			if job.Title != "" {
				ui.playlistLabel.SetText(job.Title)
			}
		default:
			ui.statusLabel.SetText(job.Summary())
		}
	})
}

// onProgress redraws both bars and the track info row from a snapshot.
func (ui *RootUI) onProgress(snap model.ProgressSnapshot) {
	fyne.Do(func() {
		ui.trackBar.SetValue(snap.TrackPercent / 100)
		ui.playlistBar.SetValue(snap.PlaylistPercent / 100)

		title := snap.TrackTitle
		if title == "" {
			title = DashPlaceholder
		}
		ui.trackLabel.SetText(title)
		ui.positionLabel.SetText(snap.TrackPosition())
		ui.speedLabel.SetText(snap.Speed)
	})
}

// appendLog adds a line to the activity log, trimming it to MaxLogLines.
func (ui *RootUI) appendLog(line string) {
	ui.mu.Lock()
	ui.logLines = append(ui.logLines, line)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.logList.Refresh()
		ui.logList.ScrollToBottom()
	})
}

// onJobDone re-enables the controls and presents the outcome.
func (ui *RootUI) onJobDone(job *model.PlaylistJob, err error) {
	ui.mu.Lock()
	ui.running = false
	ui.currentJob = job
	ui.orch = nil
	ui.cancelRun = nil
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.startBtn.Enable()
		ui.cancelBtn.Disable()
		if job.DestDir != "" {
			ui.openFolderBtn.Show()
		}
		ui.presentOutcome(job, err)
	})
}

// presentOutcome shows the terminal dialog or notification for a job.
func (ui *RootUI) presentOutcome(job *model.PlaylistJob, err error) {
	switch job.Status {
	case model.JobStatusCompleted:
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   "Download complete",
			Content: job.Summary(),
		})
		dialog.ShowInformation("Download complete", completionMessage(job), ui.window)

		if ui.settings.GetAutoRevealOnComplete() && job.DestDir != "" {
			if openErr := platform.OpenFolderInManager(job.DestDir); openErr != nil {
				logger.Warn("failed to open destination folder", logger.ErrorField(openErr))
			}
		}
	case model.JobStatusEmpty:
		dialog.ShowInformation("Nothing to download", "The playlist contains no tracks.", ui.window)
	case model.JobStatusAborted:
		// The status line already reports the cancellation summary.
	case model.JobStatusFailed:
		dialog.ShowInformation("Download failed", failureMessage(job, err), ui.window)
	}
}

// resetProgress clears the progress widgets before a new job.
func (ui *RootUI) resetProgress() {
	ui.trackBar.SetValue(0)
	ui.playlistBar.SetValue(0)
	ui.trackLabel.SetText(DashPlaceholder)
	ui.positionLabel.SetText("0 / 0")
	ui.speedLabel.SetText("")
	ui.playlistLabel.SetText("Playlist")
	ui.statusLabel.SetText(StatusResolving)

	ui.mu.Lock()
	ui.logLines = nil
	ui.mu.Unlock()
	ui.logList.Refresh()
}

// Shutdown stops any running job. Called when the window closes.
func (ui *RootUI) Shutdown() {
	ui.mu.Lock()
	cancel := ui.cancelRun
	ui.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// completionMessage renders the summary dialog body, listing failed tracks
// when there are any.
func completionMessage(job *model.PlaylistJob) string {
	if !job.HasFailures() {
		return job.Summary()
	}

	var b strings.Builder
	b.WriteString(job.Summary())
	b.WriteString("\n\nFailed tracks:")
	for _, track := range job.FailedTracks {
		b.WriteString("\n- ")
		b.WriteString(track.DisplayTitle())
	}
	return b.String()
}

// failureMessage picks a user-facing explanation for a failed job.
func failureMessage(job *model.PlaylistJob, err error) string {
	var envErr *model.EnvironmentError
	if errors.As(err, &envErr) {
		return fmt.Sprintf("%s is required but could not be found or installed.\nInstall it and try again.", envErr.Tool)
	}

	var resErr *model.ResolutionError
	if errors.As(err, &resErr) {
		return "The playlist could not be resolved.\nCheck the URL and your connection."
	}

	return job.Summary()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

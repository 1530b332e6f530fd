package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/scget/sc-downloader/internal/engine"
	"github.com/scget/sc-downloader/internal/logger"
	"github.com/scget/sc-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.scget.sc-downloader"
	AppName = "SC Playlist Downloader"

	WindowWidth  = 640
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	logger.Init(logger.Config{
		Level:      logger.InfoLevel,
		OutputPath: defaultLogPath(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
	defer logger.Sync()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, engine.New())

	myWindow.SetCloseIntercept(func() {
		rootUI.Shutdown()
		myWindow.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}

// defaultLogPath places the rotating log file under the user config
// directory; an empty path disables file logging.
func defaultLogPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "sc-downloader", "logs", "app.log")
}

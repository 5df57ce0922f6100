package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/JustinJohnsonF98/churchSonglist/internal/catalog"
	"github.com/JustinJohnsonF98/churchSonglist/internal/cli"
	"github.com/JustinJohnsonF98/churchSonglist/internal/config"
	"github.com/JustinJohnsonF98/churchSonglist/internal/platform"
	"github.com/JustinJohnsonF98/churchSonglist/internal/storage"
	"github.com/JustinJohnsonF98/churchSonglist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.justinjohnson.church-songlist"
	AppName = "Church Song App"

	// CLIFlag switches the binary into batch mode
	CLIFlag = "--cli"

	WindowWidth  = 600
	WindowHeight = 400
)

func main() {
	// Batch mode: one operation against the backing file, no window
	if len(os.Args) > 1 && os.Args[1] == CLIFlag {
		cli.Run(os.Args[2:], storage.DefaultFileName, os.Stdout)
		return
	}

	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	catalogPath := settings.GetCatalogPath()
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(catalogPath)); err != nil {
		fmt.Printf("failed to ensure catalog dir: %v\n", err)
	}

	store := storage.NewStore(catalogPath)
	editor := catalog.NewEditor(store)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, editor)

	// Show and run
	myWindow.ShowAndRun()
}

package ui

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/JustinJohnsonF98/churchSonglist/internal/catalog"
	"github.com/JustinJohnsonF98/churchSonglist/internal/config"
	"github.com/JustinJohnsonF98/churchSonglist/internal/model"
	"github.com/JustinJohnsonF98/churchSonglist/internal/platform"
	"github.com/JustinJohnsonF98/churchSonglist/internal/storage"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	editor       *catalog.Editor
	settings     *config.Settings
	localization *Localization

	searchLabel *widget.Label
	searchEntry *widget.Entry
	songList    *widget.List
	totalCapt   *widget.Label
	totalLabel  *widget.Label

	addBtn    *widget.Button
	editBtn   *widget.Button
	deleteBtn *widget.Button
	importBtn *widget.Button
	saveBtn   *widget.Button

	// Filtered view of the catalog; the list widget renders this slice and a
	// selection resolves back to the catalog through the song's identity.
	filtered   []model.Song
	selectedID string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, editor *catalog.Editor) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		editor:       editor,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Load the catalog; a load failure is reported and leaves an empty catalog
	if err := editor.Load(); err != nil {
		log.Printf("Catalog load failed: %v", err)
		ui.reportError(localization.GetText(KeyLoadFailed), err)
	}

	ui.setupUI()
	ui.refreshFilter()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create search entry with live filtering
	ui.searchLabel = widget.NewLabel(ui.localization.GetText(KeySearch))
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.OnChanged = func(string) {
		ui.refreshFilter()
	}

	// Create action buttons
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAdd), ui.onAdd)
	ui.editBtn = widget.NewButton(ui.localization.GetText(KeyEdit), ui.onEdit)
	ui.deleteBtn = widget.NewButton(ui.localization.GetText(KeyDelete), ui.onDelete)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttons := container.NewHBox(ui.addBtn, ui.editBtn, ui.deleteBtn, settingsBtn)
	topPanel := container.NewBorder(nil, nil, ui.searchLabel, buttons, ui.searchEntry)

	// Create song list over the filtered view
	ui.songList = widget.NewList(
		func() int {
			return len(ui.filtered)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateSongItem(id, obj)
		},
	)
	ui.songList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(ui.filtered) {
			return
		}
		ui.selectedID = ui.filtered[id].ID
	}
	ui.songList.OnUnselected = func(widget.ListItemID) {
		ui.selectedID = ""
	}

	// Create bottom panel: total count plus import/save actions
	ui.totalCapt = widget.NewLabel(ui.localization.GetText(KeyTotal))
	ui.totalLabel = widget.NewLabel("0")
	ui.importBtn = widget.NewButton(ui.localization.GetText(KeyImport), ui.onImport)
	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySave), ui.onSave)

	bottomPanel := container.NewBorder(nil, nil,
		container.NewHBox(ui.totalCapt, ui.totalLabel),
		container.NewHBox(ui.importBtn, ui.saveBtn),
	)

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		ui.songList, // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealCatalog), ui.onRevealCatalog)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), revealItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.searchLabel.SetText(ui.localization.GetText(KeySearch))
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.editBtn.SetText(ui.localization.GetText(KeyEdit))
	ui.deleteBtn.SetText(ui.localization.GetText(KeyDelete))
	ui.importBtn.SetText(ui.localization.GetText(KeyImport))
	ui.saveBtn.SetText(ui.localization.GetText(KeySave))
	ui.totalCapt.SetText(ui.localization.GetText(KeyTotal))
}

// updateSongItem renders one filtered row
func (ui *RootUI) updateSongItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.filtered) {
		return
	}
	if label, ok := obj.(*widget.Label); ok {
		label.SetText(ui.filtered[id].Label())
	}
}

// refreshFilter recomputes the filtered view from the current query and
// redraws the list and total counter. Any selection is dropped because row
// indices may no longer line up.
func (ui *RootUI) refreshFilter() {
	query := ""
	if ui.searchEntry != nil {
		query = ui.searchEntry.Text
	}

	ui.filtered = ui.editor.Filter(query)
	ui.selectedID = ""

	if ui.songList != nil {
		ui.songList.UnselectAll()
		ui.songList.Refresh()
	}
	if ui.totalLabel != nil {
		ui.totalLabel.SetText(strconv.Itoa(len(ui.filtered)))
	}
}

// selectedSong resolves the current selection to its catalog record
func (ui *RootUI) selectedSong() (model.Song, bool) {
	if ui.selectedID == "" {
		return model.Song{}, false
	}
	return ui.editor.Get(ui.selectedID)
}

// onAdd opens the entry form for a new song
func (ui *RootUI) onAdd() {
	ShowSongDialog(ui.window, ui.localization, ui.localization.GetText(KeyAddSong), model.Song{},
		func(title, number string) {
			_, err := ui.editor.Add(title, number)
			ui.afterMutation(err)
		})
}

// onEdit opens the entry form pre-filled with the selected song
func (ui *RootUI) onEdit() {
	song, ok := ui.selectedSong()
	if !ok {
		dialog.ShowInformation(ui.localization.GetText(KeyEdit),
			ui.localization.GetText(KeySelectToEdit), ui.window)
		return
	}

	ShowSongDialog(ui.window, ui.localization, ui.localization.GetText(KeyEditSong), song,
		func(title, number string) {
			err := ui.editor.Update(song.ID, title, number)
			ui.afterMutation(err)
		})
}

// onDelete removes the selected song after confirmation
func (ui *RootUI) onDelete() {
	song, ok := ui.selectedSong()
	if !ok {
		dialog.ShowInformation(ui.localization.GetText(KeyDelete),
			ui.localization.GetText(KeySelectToDelete), ui.window)
		return
	}

	remove := func() {
		_, err := ui.editor.Remove(song.ID)
		ui.afterMutation(err)
	}

	if !ui.settings.GetConfirmDelete() {
		remove()
		return
	}

	message := fmt.Sprintf(ui.localization.GetText(KeyDeleteConfirm), song.Title)
	dialog.ShowConfirm(ui.localization.GetText(KeyDelete), message, func(confirmed bool) {
		if confirmed {
			remove()
		}
	}, ui.window)
}

// onImport opens the bulk import dialog
func (ui *RootUI) onImport() {
	ShowImportDialog(ui.window, ui.localization, func(text string) {
		count, err := ui.editor.ImportText(text)
		ui.afterMutation(err)
		dialog.ShowInformation(ui.localization.GetText(KeyImport),
			fmt.Sprintf(ui.localization.GetText(KeyImportedCount), count), ui.window)
	})
}

// onSave persists the full catalog unconditionally and reports the count
func (ui *RootUI) onSave() {
	if err := ui.editor.Save(); err != nil {
		log.Printf("Manual save failed: %v", err)
		ui.reportError(ui.localization.GetText(KeySaveFailed), err)
		return
	}

	message := fmt.Sprintf(ui.localization.GetText(KeySavedCount),
		ui.editor.Len(), ui.editor.Store().Path())
	dialog.ShowInformation(ui.localization.GetText(KeySave), message, ui.window)
}

// onRevealCatalog shows the backing file in the system file manager
func (ui *RootUI) onRevealCatalog() {
	path := ui.editor.Store().Path()
	if err := platform.RevealInFileManager(path); err != nil {
		log.Printf("Failed to reveal %s: %v", path, err)
		ui.reportError(ui.localization.GetText(KeyError), err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	previousPath := ui.settings.GetCatalogPath()

	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Language may have changed
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		// Re-point the store and reload when the backing file changed
		newPath := ui.settings.GetCatalogPath()
		if newPath != previousPath {
			log.Printf("Catalog path changed: %s -> %s", previousPath, newPath)
			if err := platform.CreateDirectoryIfNotExists(filepath.Dir(newPath)); err != nil {
				log.Printf("Failed to ensure catalog dir: %v", err)
			}
			ui.editor.SetStore(storage.NewStore(newPath))
			if err := ui.editor.Load(); err != nil {
				ui.reportError(ui.localization.GetText(KeyLoadFailed), err)
			}
		}
		ui.refreshFilter()
	})
}

// afterMutation refreshes the view after an editor mutation and reports
// validation or save failures. A save failure keeps the in-memory change, so
// the view refreshes either way.
func (ui *RootUI) afterMutation(err error) {
	switch {
	case errors.Is(err, catalog.ErrEmptyTitle):
		dialog.ShowInformation(ui.localization.GetText(KeyValidation),
			ui.localization.GetText(KeyTitleEmpty), ui.window)
	case errors.Is(err, catalog.ErrNotFound):
		dialog.ShowInformation(ui.localization.GetText(KeyError),
			err.Error(), ui.window)
	case err != nil:
		log.Printf("Autosave failed: %v", err)
		ui.reportError(ui.localization.GetText(KeySaveFailed), err)
	}

	ui.refreshFilter()
}

// reportError shows an error dialog with the given heading
func (ui *RootUI) reportError(heading string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", heading, err), ui.window)
}

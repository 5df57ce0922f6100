package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/JustinJohnsonF98/churchSonglist/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	catalogPathEntry   *widget.Entry
	confirmDeleteCheck *widget.Check
	languageSelect     *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a confirmed save so the caller can apply the new settings.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Catalog file selection
	sd.catalogPathEntry = widget.NewEntry()
	sd.catalogPathEntry.SetPlaceHolder("songs.json")

	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseCatalogFile)
	catalogPathRow := container.NewBorder(nil, nil, nil, browseBtn, sd.catalogPathEntry)

	// Delete confirmation toggle
	sd.confirmDeleteCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmDelete), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyCatalogFile)),
		catalogPathRow,

		widget.NewSeparator(),
		sd.confirmDeleteCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.catalogPathEntry.SetText(sd.settings.GetCatalogPath())
	sd.confirmDeleteCheck.SetChecked(sd.settings.GetConfirmDelete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseCatalogFile handles catalog file browsing
func (sd *SettingsDialog) onBrowseCatalogFile() {
	dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		defer uri.Close()
		sd.catalogPathEntry.SetText(uri.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.catalogPathEntry.Text != "" {
		sd.settings.SetCatalogPath(sd.catalogPathEntry.Text)
	}

	sd.settings.SetConfirmDelete(sd.confirmDeleteCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

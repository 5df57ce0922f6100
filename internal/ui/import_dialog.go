package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowImportDialog opens the bulk import dialog: a multi-line paste area
// accepting one song per line, optionally "Title - Number". onImport receives
// the raw text when confirmed; an empty paste is ignored.
func ShowImportDialog(window fyne.Window, localization *Localization, onImport func(text string)) {
	textEntry := widget.NewMultiLineEntry()
	textEntry.SetPlaceHolder(localization.GetText(KeyImportPrompt))
	textEntry.SetMinRowsVisible(ImportEntryMinLines)

	prompt := widget.NewLabel(localization.GetText(KeyImportPrompt))
	prompt.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(prompt, nil, nil, nil, textEntry)

	importDialog := dialog.NewCustomConfirm(
		localization.GetText(KeyImport),
		localization.GetText(KeySubmit),
		localization.GetText(KeyCancel),
		content,
		func(confirmed bool) {
			if !confirmed || textEntry.Text == "" {
				return
			}
			onImport(textEntry.Text)
		},
		window,
	)

	importDialog.Resize(fyne.NewSize(ImportDialogWidth, ImportDialogHeight))
	importDialog.Show()
	window.Canvas().Focus(textEntry)
}

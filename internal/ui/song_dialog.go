package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/JustinJohnsonF98/churchSonglist/internal/model"
)

// ShowSongDialog opens the entry form used by both Add and Edit, pre-filled
// with the given song's values. onSubmit receives the entered title and
// number only when the form is confirmed; validation of the trimmed title
// happens in the catalog editor, so whitespace-only input still ends up
// rejected there.
func ShowSongDialog(window fyne.Window, localization *Localization, title string, song model.Song, onSubmit func(title, number string)) {
	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder(localization.GetText(KeyTitleField))
	titleEntry.SetText(song.Title)

	numberEntry := widget.NewEntry()
	numberEntry.SetPlaceHolder(localization.GetText(KeyNumberField))
	numberEntry.SetText(song.Number)

	items := []*widget.FormItem{
		widget.NewFormItem(localization.GetText(KeyTitleField), titleEntry),
		widget.NewFormItem(localization.GetText(KeyNumberField), numberEntry),
	}

	form := dialog.NewForm(title, localization.GetText(KeySubmit), localization.GetText(KeyCancel), items,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			onSubmit(titleEntry.Text, numberEntry.Text)
		}, window)

	form.Resize(fyne.NewSize(SongDialogWidth, SongDialogHeight))
	form.Show()
	window.Canvas().Focus(titleEntry)
}

package config

import (
	"fyne.io/fyne/v2"

	"github.com/JustinJohnsonF98/churchSonglist/internal/storage"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogPath   = "catalog_path"
	KeyLanguage      = "app_language"
	KeyConfirmDelete = "confirm_delete"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultConfirmDelete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogPath returns the configured backing file path
func (s *Settings) GetCatalogPath() string {
	path := s.app.Preferences().String(KeyCatalogPath)
	if path == "" {
		s.SetCatalogPath(storage.DefaultFileName)
		return storage.DefaultFileName
	}
	return path
}

// SetCatalogPath sets the backing file path
func (s *Settings) SetCatalogPath(path string) {
	if path == "" {
		path = storage.DefaultFileName
	}
	s.app.Preferences().SetString(KeyCatalogPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetConfirmDelete returns whether deletion asks for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deletion asks for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

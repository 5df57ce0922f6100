package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/JustinJohnsonF98/churchSonglist/internal/storage"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCatalogPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	path := settings.GetCatalogPath()
	if path != storage.DefaultFileName {
		t.Errorf("Expected default catalog path %s, got %s", storage.DefaultFileName, path)
	}

	// Test setting custom value
	customPath := "/music/hymnal.json"
	settings.SetCatalogPath(customPath)

	retrievedPath := settings.GetCatalogPath()
	if retrievedPath != customPath {
		t.Errorf("Expected catalog path %s, got %s", customPath, retrievedPath)
	}

	// Test empty path defaults back
	settings.SetCatalogPath("")
	if settings.GetCatalogPath() != storage.DefaultFileName {
		t.Errorf("Empty path should default to %s, got %s", storage.DefaultFileName, settings.GetCatalogPath())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestConfirmDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetConfirmDelete() {
		t.Error("Confirm delete should default to true")
	}

	// Test setting custom value
	settings.SetConfirmDelete(false)
	if settings.GetConfirmDelete() {
		t.Error("Expected confirm delete to be false after disabling")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

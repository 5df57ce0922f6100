package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JustinJohnsonF98/churchSonglist/internal/model"
	"github.com/JustinJohnsonF98/churchSonglist/internal/platform"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "songs.json"))
}

func writeTestFile(t *testing.T, store *Store, content string) {
	t.Helper()
	if err := os.WriteFile(store.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func TestLoadMissingFileCreatesEmptyCatalog(t *testing.T) {
	store := newTestStore(t)

	songs, err := store.Load()
	if err != nil {
		t.Fatalf("load of missing file should not fail: %v", err)
	}
	if len(songs) != 0 {
		t.Errorf("expected empty catalog, got %d songs", len(songs))
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("backing file should have been created: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected created file to contain %q, got %q", "[]", string(data))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	songs := []model.Song{
		model.NewSong("Amazing Grace", "12"),
		model.NewSong("How Great Thou Art", ""),
		model.NewSong("Holy Holy Holy", "100"),
	}

	if err := store.Save(songs); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(loaded) != len(songs) {
		t.Fatalf("expected %d songs, got %d", len(songs), len(loaded))
	}
	for i, want := range songs {
		if loaded[i].Title != want.Title || loaded[i].Number != want.Number {
			t.Errorf("song %d: expected %q/%q, got %q/%q",
				i, want.Title, want.Number, loaded[i].Title, loaded[i].Number)
		}
		if loaded[i].ID == "" {
			t.Errorf("song %d: loaded song should receive an ID", i)
		}
	}
}

func TestSaveEmptyCatalogWritesArray(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("failed to read backing file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected %q, got %q", "[]", string(data))
	}
}

func TestLoadLegacyFieldFallback(t *testing.T) {
	store := newTestStore(t)
	writeTestFile(t, store, `[{"name":"Amazing Grace","num":"12"}]`)

	songs, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(songs) != 1 {
		t.Fatalf("expected 1 song, got %d", len(songs))
	}
	if songs[0].Title != "Amazing Grace" || songs[0].Number != "12" {
		t.Errorf("expected Amazing Grace/12, got %q/%q", songs[0].Title, songs[0].Number)
	}
}

func TestLoadPlainStringEntry(t *testing.T) {
	store := newTestStore(t)
	writeTestFile(t, store, `["Rock of Ages"]`)

	songs, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(songs) != 1 {
		t.Fatalf("expected 1 song, got %d", len(songs))
	}
	if songs[0].Title != "Rock of Ages" || songs[0].Number != "" {
		t.Errorf("expected Rock of Ages with empty number, got %q/%q", songs[0].Title, songs[0].Number)
	}
}

func TestLoadMixedShapes(t *testing.T) {
	store := newTestStore(t)
	writeTestFile(t, store, `["Rock of Ages", {"title":"Amazing Grace","number":12}, 42, null, {"name":"Abide With Me"}]`)

	songs, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	expected := []struct {
		title  string
		number string
	}{
		{"Rock of Ages", ""},
		{"Amazing Grace", "12"},
		{"Abide With Me", ""},
	}

	if len(songs) != len(expected) {
		t.Fatalf("expected %d songs (unrecognized shapes dropped), got %d", len(expected), len(songs))
	}
	for i, want := range expected {
		if songs[i].Title != want.title || songs[i].Number != want.number {
			t.Errorf("song %d: expected %q/%q, got %q/%q",
				i, want.title, want.number, songs[i].Title, songs[i].Number)
		}
	}
}

func TestLoadFalsyFieldFallback(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		expectedTitle  string
		expectedNumber string
	}{
		{
			name:          "false title defers to name",
			content:       `[{"title":false,"name":"He Leadeth Me"}]`,
			expectedTitle: "He Leadeth Me",
		},
		{
			name:          "zero title defers to name",
			content:       `[{"title":0,"name":"Trust and Obey"}]`,
			expectedTitle: "Trust and Obey",
		},
		{
			name:           "zero number yields empty, not 0",
			content:        `[{"title":"Sweet Hour","number":0}]`,
			expectedTitle:  "Sweet Hour",
			expectedNumber: "",
		},
		{
			name:           "false number defers to num",
			content:        `[{"title":"Sweet Hour","number":false,"num":"9"}]`,
			expectedTitle:  "Sweet Hour",
			expectedNumber: "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeTestFile(t, store, tt.content)

			songs, err := store.Load()
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if len(songs) != 1 {
				t.Fatalf("expected 1 song, got %d", len(songs))
			}
			if songs[0].Title != tt.expectedTitle || songs[0].Number != tt.expectedNumber {
				t.Errorf("expected %q/%q, got %q/%q",
					tt.expectedTitle, tt.expectedNumber, songs[0].Title, songs[0].Number)
			}
		})
	}
}

func TestLoadNonArrayTopLevel(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "object top level", content: `{"title":"Amazing Grace"}`},
		{name: "string top level", content: `"Amazing Grace"`},
		{name: "number top level", content: `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeTestFile(t, store, tt.content)

			songs, err := store.Load()
			if err != nil {
				t.Fatalf("non-array top level should not be an error: %v", err)
			}
			if len(songs) != 0 {
				t.Errorf("expected empty catalog, got %d songs", len(songs))
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	store := newTestStore(t)
	writeTestFile(t, store, `[{"title": "Broken"`)

	songs, err := store.Load()
	if err == nil {
		t.Error("expected a parse error for malformed JSON")
	}
	if songs == nil || len(songs) != 0 {
		t.Errorf("malformed file should still yield a usable empty catalog, got %v", songs)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing", "nested", "songs.json"))

	err := store.Save([]model.Song{model.NewSong("Amazing Grace", "12")})
	if err == nil {
		t.Error("expected an error saving to a non-existent directory")
	}
}

func TestSaveIntoCreatedDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog", "songs.json")
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		t.Fatalf("failed to create catalog directory: %v", err)
	}

	store := NewStore(path)
	if err := store.Save([]model.Song{model.NewSong("Amazing Grace", "12")}); err != nil {
		t.Fatalf("save into created directory failed: %v", err)
	}

	songs, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(songs) != 1 || songs[0].Title != "Amazing Grace" {
		t.Errorf("unexpected catalog after round trip: %+v", songs)
	}
}

func TestNewStoreDefaultPath(t *testing.T) {
	store := NewStore("")
	if store.Path() != DefaultFileName {
		t.Errorf("expected default path %q, got %q", DefaultFileName, store.Path())
	}
}

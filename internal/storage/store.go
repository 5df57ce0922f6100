package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/JustinJohnsonF98/churchSonglist/internal/model"
)

// File constants
const (
	DefaultFileName     = "songs.json"
	DefaultFilePerms    = 0644
	JSONIndent          = "  "
	emptyCatalogPayload = "[]"
)

// Legacy field names accepted on load
const (
	FieldTitle        = "title"
	FieldTitleLegacy  = "name"
	FieldNumber       = "number"
	FieldNumberLegacy = "num"
)

// record is the persisted on-disk shape of a song.
type record struct {
	Title  string `json:"title"`
	Number string `json:"number"`
}

// Store reads and writes the song catalog at a fixed file path.
type Store struct {
	path string
}

// NewStore creates a store bound to the given backing file path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file and returns the catalog. A missing file is not
// an error: an empty file is created and an empty catalog returned. Read or
// parse failures return an empty catalog together with the error so the
// caller can report it and continue. A top-level shape other than an array
// yields an empty catalog without error.
func (s *Store) Load() ([]model.Song, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, []byte(emptyCatalogPayload), DefaultFilePerms); err != nil {
			return []model.Song{}, fmt.Errorf("failed to create %s: %w", s.path, err)
		}
		return []model.Song{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return []model.Song{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []model.Song{}, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	entries, ok := raw.([]any)
	if !ok {
		return []model.Song{}, nil
	}

	return normalize(entries), nil
}

// Save serializes the full catalog to the backing file, overwriting it. An
// empty catalog is written as "[]", never null.
func (s *Store) Save(songs []model.Song) error {
	records := make([]record, 0, len(songs))
	for _, song := range songs {
		records = append(records, record{Title: song.Title, Number: song.Number})
	}

	data, err := json.MarshalIndent(records, "", JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(s.path, data, DefaultFilePerms); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}

// normalize converts heterogeneous decoded entries into songs. Objects read
// title/number with legacy name/num fallbacks, plain strings become titles,
// and unrecognized shapes are dropped.
func normalize(entries []any) []model.Song {
	songs := make([]model.Song, 0, len(entries))
	for _, entry := range entries {
		switch v := entry.(type) {
		case map[string]any:
			title := fieldString(v, FieldTitle, FieldTitleLegacy)
			number := fieldString(v, FieldNumber, FieldNumberLegacy)
			songs = append(songs, model.NewSong(title, number))
		case string:
			songs = append(songs, model.NewSong(v, ""))
		}
	}
	return songs
}

// fieldString reads the first non-falsy of two keys, coerced to a string.
// Falsy values (null, empty string, false, zero) defer to the fallback key;
// a falsy fallback yields the empty string rather than "false" or "0".
func fieldString(m map[string]any, key, legacyKey string) string {
	if v := m[key]; !falsy(v) {
		return coerceString(v)
	}
	if v := m[legacyKey]; !falsy(v) {
		return coerceString(v)
	}
	return ""
}

// falsy reports whether a decoded JSON value triggers the legacy fallback.
func falsy(v any) bool {
	switch t := v.(type) {
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	default:
		// null, absent keys, and non-scalar shapes
		return true
	}
}

// coerceString stringifies the JSON scalar shapes a legacy file may carry.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

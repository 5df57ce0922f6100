package catalog

import (
	"errors"

	"github.com/JustinJohnsonF98/churchSonglist/internal/model"
	"github.com/JustinJohnsonF98/churchSonglist/internal/storage"
)

// Validation and lookup errors returned by editor mutations.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrNotFound        = errors.New("song not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Editor owns the in-memory catalog and the store persisting it.
type Editor struct {
	store *storage.Store
	songs []model.Song
}

// NewEditor creates an editor over the given store with an empty catalog.
// Call Load to populate it from the backing file.
func NewEditor(store *storage.Store) *Editor {
	return &Editor{store: store}
}

// Load replaces the in-memory catalog with the backing file contents. On a
// load failure the catalog becomes empty and the error is returned for
// reporting; the editor stays usable.
func (e *Editor) Load() error {
	songs, err := e.store.Load()
	e.songs = songs
	return err
}

// Store returns the backing store.
func (e *Editor) Store() *storage.Store {
	return e.store
}

// SetStore re-points the editor at a different store. The in-memory catalog
// is unchanged until the next Load.
func (e *Editor) SetStore(store *storage.Store) {
	e.store = store
}

// Len returns the number of songs in the catalog.
func (e *Editor) Len() int {
	return len(e.songs)
}

// Songs returns a copy of the full catalog in order.
func (e *Editor) Songs() []model.Song {
	out := make([]model.Song, len(e.songs))
	copy(out, e.songs)
	return out
}

// Get returns the song with the given identity.
func (e *Editor) Get(id string) (model.Song, bool) {
	for _, song := range e.songs {
		if song.ID == id {
			return song, true
		}
	}
	return model.Song{}, false
}

// Filter returns the subsequence of the catalog matching the query, in
// catalog order. An empty query returns the full catalog.
func (e *Editor) Filter(query string) []model.Song {
	filtered := make([]model.Song, 0, len(e.songs))
	for _, song := range e.songs {
		if song.Matches(query) {
			filtered = append(filtered, song)
		}
	}
	return filtered
}

// Add appends a new song and persists the catalog. A title that is empty
// after trimming is rejected with ErrEmptyTitle and nothing is mutated or
// persisted.
func (e *Editor) Add(title, number string) (model.Song, error) {
	song := model.NewSong(title, number)
	if song.Title == "" {
		return model.Song{}, ErrEmptyTitle
	}

	e.songs = append(e.songs, song)
	return song, e.store.Save(e.songs)
}

// Update replaces the titled fields of the identified song in place,
// preserving its position and identity, then persists.
func (e *Editor) Update(id, title, number string) error {
	updated := model.NewSong(title, number)
	if updated.Title == "" {
		return ErrEmptyTitle
	}

	for i, song := range e.songs {
		if song.ID == id {
			updated.ID = song.ID
			e.songs[i] = updated
			return e.store.Save(e.songs)
		}
	}
	return ErrNotFound
}

// Remove deletes the identified song and persists, returning the removed
// record.
func (e *Editor) Remove(id string) (model.Song, error) {
	for i, song := range e.songs {
		if song.ID == id {
			e.songs = append(e.songs[:i], e.songs[i+1:]...)
			return song, e.store.Save(e.songs)
		}
	}
	return model.Song{}, ErrNotFound
}

// RemoveAt deletes the song at the given catalog position and persists.
// Indices outside [0, Len) are rejected with ErrIndexOutOfRange and nothing
// is mutated.
func (e *Editor) RemoveAt(index int) (model.Song, error) {
	if index < 0 || index >= len(e.songs) {
		return model.Song{}, ErrIndexOutOfRange
	}

	removed := e.songs[index]
	e.songs = append(e.songs[:index], e.songs[index+1:]...)
	return removed, e.store.Save(e.songs)
}

// ImportText parses free-form multi-line text and appends every parsed song,
// persisting once. It returns the number of songs imported; when nothing
// parses, the catalog is untouched and no save happens.
func (e *Editor) ImportText(text string) (int, error) {
	imported := model.ParseImportText(text)
	if len(imported) == 0 {
		return 0, nil
	}

	e.songs = append(e.songs, imported...)
	return len(imported), e.store.Save(e.songs)
}

// Save persists the full catalog unconditionally.
func (e *Editor) Save() error {
	return e.store.Save(e.songs)
}

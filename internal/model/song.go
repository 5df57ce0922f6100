package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Display formatting constants
const (
	TitleNumberSeparator = " — "
	ListNumberSeparator  = " - "
)

// Song represents a single catalog entry. ID is an opaque runtime identity
// used to resolve list selections back to the underlying record; it is never
// persisted.
type Song struct {
	ID     string `json:"-"`
	Title  string `json:"title"`
	Number string `json:"number"`
}

// NewSong creates a song with trimmed fields and a fresh identity.
func NewSong(title, number string) Song {
	return Song{
		ID:     uuid.NewString(),
		Title:  strings.TrimSpace(title),
		Number: strings.TrimSpace(number),
	}
}

// Matches reports whether the song matches a search query. Matching is a
// case-insensitive substring check against title and number; an empty query
// matches every song.
func (s Song) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Number), q)
}

// Label returns the display form used in the list view: "Title — Number",
// or the title alone when the number is empty.
func (s Song) Label() string {
	if s.Number == "" {
		return s.Title
	}
	return s.Title + TitleNumberSeparator + s.Number
}

// ListLine returns the batch listing form "index: title - number", omitting
// the number segment when it is empty.
func (s Song) ListLine(index int) string {
	if s.Number == "" {
		return fmt.Sprintf("%d: %s", index, s.Title)
	}
	return fmt.Sprintf("%d: %s%s%s", index, s.Title, ListNumberSeparator, s.Number)
}

package model

import "strings"

// Import line format constants
const (
	ImportSeparator = " - "
	ImportSplitMax  = 2
)

// ParseImportLine parses a single pasted line. A line containing the literal
// " - " separator splits into title and number on its first occurrence, both
// trimmed; otherwise the whole trimmed line is the title with an empty
// number. Blank lines yield ok=false.
func ParseImportLine(line string) (Song, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Song{}, false
	}

	if strings.Contains(line, ImportSeparator) {
		parts := strings.SplitN(line, ImportSeparator, ImportSplitMax)
		return NewSong(parts[0], parts[1]), true
	}

	return NewSong(line, ""), true
}

// ParseImportText parses free-form multi-line text into songs, one per
// non-blank line, preserving line order.
func ParseImportText(text string) []Song {
	var songs []Song
	for _, line := range strings.Split(text, "\n") {
		if song, ok := ParseImportLine(line); ok {
			songs = append(songs, song)
		}
	}
	return songs
}

package model

import "testing"

func TestParseImportLine(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		expectedOK     bool
		expectedTitle  string
		expectedNumber string
	}{
		{
			name:           "title with separator and number",
			line:           "Holy Holy Holy - 100",
			expectedOK:     true,
			expectedTitle:  "Holy Holy Holy",
			expectedNumber: "100",
		},
		{
			name:           "title only",
			line:           "Just As I Am",
			expectedOK:     true,
			expectedTitle:  "Just As I Am",
			expectedNumber: "",
		},
		{
			name:           "only first separator splits",
			line:           "Rock - of Ages - 5",
			expectedOK:     true,
			expectedTitle:  "Rock",
			expectedNumber: "of Ages - 5",
		},
		{
			name:           "surrounding whitespace is trimmed",
			line:           "  Abide With Me -  47  ",
			expectedOK:     true,
			expectedTitle:  "Abide With Me",
			expectedNumber: "47",
		},
		{
			name:       "blank line rejected",
			line:       "   ",
			expectedOK: false,
		},
		{
			name:           "hyphen without spaces is part of the title",
			line:           "All-Creatures",
			expectedOK:     true,
			expectedTitle:  "All-Creatures",
			expectedNumber: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song, ok := ParseImportLine(tt.line)

			if ok != tt.expectedOK {
				t.Fatalf("expected ok=%v, got %v", tt.expectedOK, ok)
			}
			if !ok {
				return
			}
			if song.Title != tt.expectedTitle {
				t.Errorf("expected title %q, got %q", tt.expectedTitle, song.Title)
			}
			if song.Number != tt.expectedNumber {
				t.Errorf("expected number %q, got %q", tt.expectedNumber, song.Number)
			}
		})
	}
}

func TestParseImportText(t *testing.T) {
	text := "Holy Holy Holy - 100\nJust As I Am\n\n  \nBe Thou My Vision - 30\n"

	songs := ParseImportText(text)

	if len(songs) != 3 {
		t.Fatalf("expected 3 songs, got %d", len(songs))
	}

	expected := []Song{
		{Title: "Holy Holy Holy", Number: "100"},
		{Title: "Just As I Am", Number: ""},
		{Title: "Be Thou My Vision", Number: "30"},
	}
	for i, want := range expected {
		if songs[i].Title != want.Title || songs[i].Number != want.Number {
			t.Errorf("song %d: expected %q/%q, got %q/%q",
				i, want.Title, want.Number, songs[i].Title, songs[i].Number)
		}
	}
}

func TestParseImportTextEmpty(t *testing.T) {
	if songs := ParseImportText(""); len(songs) != 0 {
		t.Errorf("expected no songs from empty text, got %d", len(songs))
	}
}

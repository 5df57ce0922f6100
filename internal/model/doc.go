package model

// Package model defines the domain data structures used across the app: song
// records, query matching, and the line format used by bulk text import.
// Structures are designed for direct display in the UI and in batch listings.

package storage

// Package storage implements the JSON backing-file adapter. It loads the song
// catalog from a single JSON file (creating an empty one if absent),
// normalizes legacy record shapes, and rewrites the whole file on save.

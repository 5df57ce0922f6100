package ui

// Package ui contains the Fyne-based desktop user interface for the catalog
// editor. It wires user interactions to the catalog editor and renders the
// filtered song list, entry forms, and dialogs. All UI strings are localized
// via Localization.

package catalog

// Package catalog implements the catalog editor: a service owning the
// in-memory song list and its backing store. Every mutation applies to the
// list first and then persists the whole catalog; a failed save keeps the
// in-memory change and returns the error for the caller to report.

package cli

// Package cli implements the non-interactive batch interface: listing,
// quick adds, and removals against the backing file, one operation per
// invocation. All output, error messages included, goes to the writer the
// caller provides.

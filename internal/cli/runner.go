package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"

	"github.com/JustinJohnsonF98/churchSonglist/internal/catalog"
	"github.com/JustinJohnsonF98/churchSonglist/internal/storage"
)

// Batch commands
const (
	CmdList   = "--list"
	CmdAdd    = "--add"
	CmdRemove = "--remove"
)

const usageText = `Church Song App - CLI
Usage:
  --list                   list songs
  --add "Title" [Number]   add a song
  --remove N               remove by index (use --list to see indexes)
`

// Run dispatches one batch command against the catalog at path. The catalog
// is loaded fresh for every invocation and persisted at most once. Invalid
// input produces a printed message and no mutation; no failure aborts the
// process, so nothing is returned.
func Run(args []string, path string, out io.Writer) {
	editor := catalog.NewEditor(storage.NewStore(path))
	if err := editor.Load(); err != nil {
		color.Fprintf(out, "Failed to load %s: %v\n", path, err)
	}

	if len(args) == 0 {
		fmt.Fprint(out, usageText)
		return
	}

	switch {
	case args[0] == CmdList:
		runList(editor, out)
	case args[0] == CmdAdd && len(args) >= 2:
		runAdd(editor, args[1:], out)
	case args[0] == CmdRemove && len(args) == 2:
		runRemove(editor, args[1], out)
	default:
		color.Fprintf(out, "Unknown CLI command\n")
	}
}

func runList(editor *catalog.Editor, out io.Writer) {
	for i, song := range editor.Songs() {
		fmt.Fprintln(out, song.ListLine(i))
	}
}

func runAdd(editor *catalog.Editor, args []string, out io.Writer) {
	title := args[0]
	number := ""
	if len(args) >= 2 {
		number = args[1]
	}

	song, err := editor.Add(title, number)
	switch {
	case errors.Is(err, catalog.ErrEmptyTitle):
		color.Fprintf(out, "Title cannot be empty\n")
	case err != nil:
		color.Fprintf(out, "Failed to save: %v\n", err)
	default:
		fmt.Fprintf(out, "Added: %s\n", song.Title)
	}
}

func runRemove(editor *catalog.Editor, arg string, out io.Writer) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		color.Fprintf(out, "Invalid index\n")
		return
	}

	removed, err := editor.RemoveAt(index)
	switch {
	case errors.Is(err, catalog.ErrIndexOutOfRange):
		color.Fprintf(out, "Index out of range\n")
	case err != nil:
		color.Fprintf(out, "Failed to save: %v\n", err)
	default:
		fmt.Fprintf(out, "Removed: %s\n", removed.Title)
	}
}

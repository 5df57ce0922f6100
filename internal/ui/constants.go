package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Dialog sizing
const (
	SongDialogWidth  float32 = 420
	SongDialogHeight float32 = 180

	ImportDialogWidth  float32 = 460
	ImportDialogHeight float32 = 320

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 320
)

// Entry sizing
const (
	ImportEntryMinLines = 8
)

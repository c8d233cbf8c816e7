package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Panel colors
const (
	ColorPanelBorder  Color = "62"  // Indigo - request panel frame
	ColorBlocked      Color = "203" // Salmon - blocked request accents
	ColorMigration    Color = "214" // Orange - migration notice
	ColorSelected     Color = "63"  // Blue - selected messages
	ColorSearchMatch  Color = "226" // Yellow - search hits
	ColorOwnMessage   Color = "114" // Green - messages sent from this screen
	ColorTrayBackdrop Color = "236" // Near black - attachment tray
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

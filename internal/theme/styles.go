package theme

import "github.com/charmbracelet/lipgloss"

// Screen styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HeaderMetaStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	OwnMessageStyle = lipgloss.NewStyle().
			Foreground(ColorOwnMessage)

	TrayStyle = lipgloss.NewStyle().
			Background(ColorTrayBackdrop).
			Foreground(ColorSubtle)
)

// Bottom bar styles
var (
	BarLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	BarKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	SearchMatchStyle = lipgloss.NewStyle().
				Foreground(ColorSearchMatch).
				Bold(true)

	SelectedMessageStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Bold(true)

	CursorMessageStyle = lipgloss.NewStyle().
				Reverse(true)
)

// Request and migration panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ColorPanelBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	PanelBodyStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PanelBlockedStyle = lipgloss.NewStyle().
				Foreground(ColorBlocked)

	PanelMigrationStyle = lipgloss.NewStyle().
				Foreground(ColorMigration).
				Bold(true)

	PanelButtonStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorPanelBorder).
				Padding(0, 1).
				MarginRight(1)

	PanelDestructiveButtonStyle = PanelButtonStyle.
					Background(ColorBlocked)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

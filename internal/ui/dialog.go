package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/convobar/internal/theme"
)

var dialogFrameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(0, 1)

// Dialog wraps any tea.Model content and adds a header with the title.
// The conversation screen composites it over a dimmed copy of itself.
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header and the wrapped content inside a frame
func (d *Dialog) View() string {
	return dialogFrameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, d.header(), d.content.View()))
}

// header is the app name, build details in dev mode, and the title
func (d *Dialog) header() string {
	name := theme.AppNameStyle.Render("convobar")
	if d.devMode {
		name += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s", buildInfo.Version, shortCommit(), buildInfo.GoVersion))
	}
	if d.title == "" {
		return name + "\n"
	}
	return name + "\n\n" + theme.SubtitleStyle.Render(d.title) + "\n"
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}

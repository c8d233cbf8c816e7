package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/convobar/internal/ports"
)

const toolbarRows = 3

// InputToolbar is the composer docked in the bottom bar in normal mode.
// The screen owns it; the bottom bar only borrows it.
type InputToolbar struct {
	hidden   bool
	textarea textarea.Model
}

var _ ports.View = (*InputToolbar)(nil)

// NewInputToolbar creates an empty composer
func NewInputToolbar() *InputToolbar {
	ta := textarea.New()
	ta.Placeholder = "Message"
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	ta.CharLimit = 2000
	ta.SetHeight(toolbarRows)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	return &InputToolbar{textarea: ta}
}

// PreferredHeight returns the composer rows, or zero while hidden
func (t *InputToolbar) PreferredHeight(int) int {
	if t.hidden {
		return 0
	}
	return toolbarRows
}

// Render draws the composer at width
func (t *InputToolbar) Render(width int) string {
	if t.hidden {
		return ""
	}
	t.textarea.SetWidth(width)
	return t.textarea.View()
}

// SetHidden hides the composer. Hiding ends the editing session.
func (t *InputToolbar) SetHidden(hidden bool) {
	t.hidden = hidden
	if hidden {
		t.textarea.Blur()
	}
}

// IsHidden reports whether the composer is hidden
func (t *InputToolbar) IsHidden() bool {
	return t.hidden
}

// Focus starts editing unless the composer is hidden
func (t *InputToolbar) Focus() tea.Cmd {
	if t.hidden {
		return nil
	}
	return t.textarea.Focus()
}

// Blur ends editing
func (t *InputToolbar) Blur() {
	t.textarea.Blur()
}

// Focused reports whether the composer is receiving keys
func (t *InputToolbar) Focused() bool {
	return t.textarea.Focused()
}

// Update forwards msg to the text area
func (t *InputToolbar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	return cmd
}

// Take returns the trimmed draft and clears the composer
func (t *InputToolbar) Take() string {
	text := strings.TrimSpace(t.textarea.Value())
	t.textarea.Reset()
	return text
}

// SetValue replaces the draft
func (t *InputToolbar) SetValue(s string) {
	t.textarea.SetValue(s)
}

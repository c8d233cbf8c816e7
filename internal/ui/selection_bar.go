package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/convobar/internal/ports"
	"github.com/renato0307/convobar/internal/theme"
)

// SelectionBar is the bottom bar in selection mode
type SelectionBar struct {
	keys     KeyMap
	selected int
}

var _ ports.View = (*SelectionBar)(nil)

// NewSelectionBar creates a selection bar showing keys' hints
func NewSelectionBar(keys KeyMap) *SelectionBar {
	return &SelectionBar{keys: keys}
}

// SetSelected updates the number of selected messages
func (b *SelectionBar) SetSelected(n int) {
	b.selected = n
}

func (b *SelectionBar) PreferredHeight(int) int {
	return 1
}

func (b *SelectionBar) Render(width int) string {
	count := theme.BarKeyStyle.Render(fmt.Sprintf("%d selected", b.selected))
	hint := theme.BarLabelStyle.Render(fmt.Sprintf("%s delete", b.keys.DeleteSelected.Help().Key))
	gap := max(width-lipgloss.Width(count)-lipgloss.Width(hint), 1)
	return count + lipgloss.NewStyle().Width(gap).Render("") + hint
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dim style for background when a dialog is shown
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// screenLines splits content into exactly height lines, each padded to width
func screenLines(content string, width, height int) []string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}

// compositeOverlay renders overlay centered on top of a dimmed background
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := screenLines(background, width, height)
	for i, line := range bgLines {
		bgLines[i] = dimStyle.Render(ansi.Strip(line))
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)

	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = dimStyle.Render(strings.Repeat(" ", startX)) + line + dimStyle.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}

// bottomAnchoredOverlay paints overlay over the last rows of background.
// Only the first visible rows of overlay are drawn, so a panel sliding off the
// bottom edge shows its top part.
func bottomAnchoredOverlay(background, overlay string, width, height, visible int) string {
	if visible <= 0 {
		return background
	}

	bgLines := screenLines(background, width, height)
	overlayLines := strings.Split(overlay, "\n")
	visible = min(visible, len(overlayLines), height)

	startY := height - visible
	for i := range visible {
		line := overlayLines[i]
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[startY+i] = line
	}

	return strings.Join(bgLines, "\n")
}

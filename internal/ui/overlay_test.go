package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBottomAnchoredOverlay(t *testing.T) {
	background := "one\ntwo\nthree\nfour"
	panel := "P1\nP2\nP3"

	tests := []struct {
		name     string
		visible  int
		expected []string
	}{
		{name: "fully visible", visible: 3, expected: []string{"one", "P1", "P2", "P3"}},
		{name: "partially slid off", visible: 1, expected: []string{"one", "two", "three", "P1"}},
		{name: "gone", visible: 0, expected: []string{"one", "two", "three", "four"}},
		{name: "taller than screen", visible: 9, expected: []string{"one", "P1", "P2", "P3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bottomAnchoredOverlay(background, panel, 8, 4, tt.visible)

			lines := strings.Split(out, "\n")
			require.Len(t, lines, 4)
			for i, line := range lines {
				assert.Equal(t, tt.expected[i], strings.TrimRight(line, " "))
			}
		})
	}
}

func TestCompositeOverlay_CentersDialog(t *testing.T) {
	out := compositeOverlay("a\nb\nc\nd\ne", "XX", 10, 5)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "    XX    ", ansi.Strip(lines[2]))
	for _, line := range lines {
		assert.Equal(t, 10, lipgloss.Width(line))
	}
}

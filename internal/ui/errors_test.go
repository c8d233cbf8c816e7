package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{name: "nil error", err: nil, width: 40, expected: ""},
		{name: "short message", err: errors.New("thread not found"), width: 40, expected: "Error: thread not found"},
		{name: "empty message", err: errors.New(""), width: 40, expected: "Error: unknown error"},
		{name: "collapses whitespace", err: errors.New("a\n  b"), width: 40, expected: "Error: a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_TruncatesLongMessages(t *testing.T) {
	err := errors.New(strings.Repeat("database is locked ", 20))

	out := formatErrorForDisplay(err, 30)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(out, errorPrefix))
	assert.True(t, strings.HasSuffix(out, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func TestErrorManager(t *testing.T) {
	em := NewErrorManager(time.Millisecond)
	assert.False(t, em.HasError())

	cmd := em.SetError(errors.New("boom"))
	assert.NotNil(t, cmd)
	assert.True(t, em.HasError())
	assert.EqualError(t, em.GetError(), "boom")

	assert.IsType(t, clearErrorMsg{}, cmd())

	em.ClearError()
	assert.False(t, em.HasError())
}

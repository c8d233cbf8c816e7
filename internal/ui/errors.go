package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// clearErrorMsg is sent after the error clear delay
type clearErrorMsg struct{}

// ErrorManager holds the error shown under the conversation and clears it after a delay
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error and returns the command that clears it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	return em.ClearAfterDelay()
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// formatErrorForDisplay wraps err to at most maxErrorLines lines of maxWidth,
// ending with truncationMark when the message does not fit
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		message = "unknown error"
	}

	maxWidth = max(maxWidth, 10)
	lines := strings.Split(ansi.Wordwrap(errorPrefix+message, maxWidth, ""), "\n")
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := lines[maxErrorLines-1]
	if ansi.StringWidth(last)+len(truncationMark) > maxWidth {
		last = ansi.Truncate(last, maxWidth-len(truncationMark), "")
	}
	lines[maxErrorLines-1] = last + truncationMark

	return strings.Join(lines, "\n")
}

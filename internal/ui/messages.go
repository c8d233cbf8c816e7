package ui

import "github.com/renato0307/convobar/internal/domain"

// PanelActionMsg carries an action raised by a request or migration panel
type PanelActionMsg struct {
	Action   domain.PanelAction
	ThreadID string
}

// gestureSettledMsg returns gestures to possible once an ended gesture has been handled
type gestureSettledMsg struct{}

package bottombar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/convobar/internal/ports"
)

const (
	// DismissalDuration is how long an outgoing panel takes to slide off
	DismissalDuration = 200 * time.Millisecond

	dismissalFrameInterval = 16 * time.Millisecond
)

// DismissalToken identifies one scheduled dismissal and the panel it releases
type DismissalToken struct {
	id    uint64
	panel ports.Panel
}

// Panel returns the panel this token releases
func (t DismissalToken) Panel() ports.Panel {
	return t.panel
}

// DismissalFrameMsg advances a dismissal animation.
// Route it to Controller.HandleDismissalFrame.
type DismissalFrameMsg struct {
	Time  time.Time
	Token DismissalToken
}

// dismissal is a panel detached from the bottom bar and sliding off the screen
type dismissal struct {
	distance int
	offset   int
	started  time.Time
	token    DismissalToken
}

// progress returns the eased completion at t, in [0, 1]
func (d *dismissal) progress(t time.Time) float64 {
	elapsed := t.Sub(d.started)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= DismissalDuration {
		return 1
	}
	return easeInOut(float64(elapsed) / float64(DismissalDuration))
}

func easeInOut(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	}
	return 1 - 2*(1-x)*(1-x)
}

func dismissalFrame(token DismissalToken) tea.Cmd {
	return tea.Tick(dismissalFrameInterval, func(t time.Time) tea.Msg {
		return DismissalFrameMsg{Time: t, Token: token}
	})
}

// Sliding is a snapshot of the panel currently sliding off the screen
type Sliding struct {
	// Offset is how many rows the panel has moved below its resting place
	Offset int
	Panel  ports.Panel
	// Rows is the full height the panel occupied, safe area included
	Rows int
}

// Visible returns how many rows of the panel are still on screen
func (s Sliding) Visible() int {
	return max(s.Rows-s.Offset, 0)
}

package ui

import (
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/ports"
)

// GestureKind identifies which interactive gesture a drag drives
type GestureKind int

const (
	// GesturePop is a drag starting at the left edge that closes the conversation
	GesturePop GestureKind = iota
	// GestureDismiss is a drag on the attachment tray that pulls it down
	GestureDismiss
)

// GestureTracker turns mouse drags into gesture phases.
// It answers the bottom bar's questions about gestures in flight.
type GestureTracker struct {
	active  GestureKind
	dismiss domain.GesturePhase
	pop     domain.GesturePhase
	startX  int
	startY  int
}

var _ ports.GestureProbe = (*GestureTracker)(nil)

// NewGestureTracker creates a tracker with both gestures idle
func NewGestureTracker() *GestureTracker {
	return &GestureTracker{}
}

func (g *GestureTracker) IsInteractiveDismissInProgress() bool {
	return g.dismiss.IsInteractive()
}

func (g *GestureTracker) IsInteractivePopInProgress() bool {
	return g.pop.IsInteractive()
}

// Phase returns the current phase of kind
func (g *GestureTracker) Phase(kind GestureKind) domain.GesturePhase {
	return *g.phase(kind)
}

// Begin starts kind at (x, y). Ignored while another gesture is being tracked.
func (g *GestureTracker) Begin(kind GestureKind, x, y int) bool {
	if g.tracking() {
		return false
	}
	g.active = kind
	g.startX, g.startY = x, y
	*g.phase(kind) = domain.GestureBegan
	return true
}

// Move updates the tracked gesture and returns the drag distance from its start
func (g *GestureTracker) Move(x, y int) (kind GestureKind, dx, dy int, ok bool) {
	if !g.tracking() {
		return 0, 0, 0, false
	}
	*g.phase(g.active) = domain.GestureChanged
	return g.active, x - g.startX, y - g.startY, true
}

// End finishes the tracked gesture. Its phase stays ended until Settle.
func (g *GestureTracker) End(x, y int) (kind GestureKind, dx, dy int, ok bool) {
	if !g.tracking() {
		return 0, 0, 0, false
	}
	*g.phase(g.active) = domain.GestureEnded
	return g.active, x - g.startX, y - g.startY, true
}

// Cancel aborts the tracked gesture and reports which one it was.
// A cancelled gesture stays in progress until Settle.
func (g *GestureTracker) Cancel() (kind GestureKind, ok bool) {
	if !g.tracking() {
		return 0, false
	}
	*g.phase(g.active) = domain.GestureCancelled
	return g.active, true
}

// Settle returns both gestures to possible
func (g *GestureTracker) Settle() {
	g.dismiss = domain.GesturePossible
	g.pop = domain.GesturePossible
}

func (g *GestureTracker) tracking() bool {
	p := *g.phase(g.active)
	return p == domain.GestureBegan || p == domain.GestureChanged
}

func (g *GestureTracker) phase(kind GestureKind) *domain.GesturePhase {
	if kind == GestureDismiss {
		return &g.dismiss
	}
	return &g.pop
}

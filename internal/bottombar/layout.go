package bottombar

import (
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ports"
)

// LayoutCoordinator recomputes the layout that depends on the bottom bar's content
type LayoutCoordinator struct {
	accessory       ports.KeyboardAccessory
	container       *Container
	gestures        ports.GestureProbe
	hasEverAppeared bool
	host            ports.HostScreen
	keyboardOverlap int
}

// NewLayoutCoordinator creates a coordinator for the given bottom bar
func NewLayoutCoordinator(
	container *Container,
	accessory ports.KeyboardAccessory,
	gestures ports.GestureProbe,
	host ports.HostScreen,
) *LayoutCoordinator {
	return &LayoutCoordinator{
		accessory: accessory,
		container: container,
		gestures:  gestures,
		host:      host,
	}
}

// MarkAppeared records that the screen has fully appeared once.
// Later recomputations animate inset changes.
func (l *LayoutCoordinator) MarkAppeared() {
	l.hasEverAppeared = true
}

// KeyboardOverlap returns the last known keyboard overlap in rows
func (l *LayoutCoordinator) KeyboardOverlap() int {
	return l.keyboardOverlap
}

// SetKeyboardOverlap records a new overlap and recomputes
func (l *LayoutCoordinator) SetKeyboardOverlap(rows int) {
	if rows < 0 {
		rows = 0
	}
	l.keyboardOverlap = rows
	l.Recompute()
}

// Recompute refreshes every quantity that depends on the mounted content
func (l *LayoutCoordinator) Recompute() {
	l.UpdateAccessoryHeight()
	l.UpdatePosition()
	l.host.UpdateContentInsets(l.hasEverAppeared)
	l.host.UpdateInputVisibility()
}

// UpdateAccessoryHeight sizes the accessory placeholder to the bar's measured height.
// Skipped during an interactive dismiss so the gesture and the accessory don't feed each other.
func (l *LayoutCoordinator) UpdateAccessoryHeight() {
	if l.gestures.IsInteractiveDismissInProgress() {
		logging.Logger.Debug("Skipping accessory height update during interactive dismiss")
		return
	}

	l.container.Layout()
	l.accessory.SetDesiredHeight(l.container.MeasuredHeight())
}

// UpdatePosition moves the bar above the keyboard overlap.
// Skipped while an interactive pop is in progress, which includes its ended phase;
// the host re-applies it once the gesture settles.
func (l *LayoutCoordinator) UpdatePosition() {
	if l.gestures.IsInteractivePopInProgress() {
		logging.Logger.Debug("Skipping bottom bar position update during interactive pop")
		return
	}

	l.container.SetBottomOffset(-l.keyboardOverlap)
	l.container.Layout()
}

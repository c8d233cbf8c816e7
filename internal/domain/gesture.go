package domain

// GesturePhase is the recognition phase of an interactive gesture
type GesturePhase int

const (
	GesturePossible GesturePhase = iota
	GestureBegan
	GestureChanged
	GestureEnded
	GestureCancelled
	GestureFailed
)

// IsInteractive reports whether the gesture is driving the screen.
// Only possible and failed are treated as idle, so ended still counts.
func (p GesturePhase) IsInteractive() bool {
	return p != GesturePossible && p != GestureFailed
}

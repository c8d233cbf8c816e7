package ports

import "github.com/renato0307/convobar/internal/domain"

// HostScreen is the conversation screen hosting the bottom bar
type HostScreen interface {
	OnKindChanged(kind domain.BottomViewKind)
	UpdateContentInsets(animated bool)
	UpdateInputVisibility()
}

// GestureProbe reports whether interactive gestures currently own the screen
type GestureProbe interface {
	IsInteractiveDismissInProgress() bool
	IsInteractivePopInProgress() bool
}

// KeyboardAccessory reserves space above the keyboard for the bottom bar
type KeyboardAccessory interface {
	DesiredHeight() int
	SetDesiredHeight(rows int)
}

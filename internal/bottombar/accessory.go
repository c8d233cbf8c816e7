package bottombar

import "github.com/renato0307/convobar/internal/ports"

// Accessory is the placeholder that reserves rows above the keyboard for the bottom bar
type Accessory struct {
	desiredHeight int
}

var _ ports.KeyboardAccessory = (*Accessory)(nil)

// DesiredHeight returns the reserved rows
func (a *Accessory) DesiredHeight() int {
	return a.desiredHeight
}

// SetDesiredHeight updates the reserved rows
func (a *Accessory) SetDesiredHeight(rows int) {
	a.desiredHeight = max(rows, 0)
}

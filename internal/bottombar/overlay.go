package bottombar

import (
	"slices"

	"github.com/renato0307/convobar/internal/ports"
)

// Overlay holds views parented to the screen itself rather than the bottom bar.
// Dismissing panels live here while they slide off.
type Overlay struct {
	views []ports.View
}

// Contains reports whether v is parented to the overlay
func (o *Overlay) Contains(v ports.View) bool {
	return slices.Contains(o.views, v)
}

// Len returns the number of views on the overlay
func (o *Overlay) Len() int {
	return len(o.views)
}

func (o *Overlay) addChild(v ports.View) {
	if !o.Contains(v) {
		o.views = append(o.views, v)
	}
}

func (o *Overlay) removeChild(v ports.View) {
	o.views = slices.DeleteFunc(o.views, func(x ports.View) bool { return x == v })
}

package bottombar

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/convobar/internal/ports"
)

// Pinning is how a child is laid out inside its parent
type Pinning int

const (
	// PinLayoutMargins insets the child horizontally and keeps it out of the safe area
	PinLayoutMargins Pinning = iota
	// PinFullEdges stretches the child to every edge, safe area included
	PinFullEdges
)

func (p Pinning) String() string {
	if p == PinFullEdges {
		return "full-edges"
	}
	return "layout-margins"
}

const horizontalMargin = 1

type placement struct {
	pinning Pinning
	view    ports.View
}

// Container is the bottom bar region of the conversation screen.
// Children are only added or removed by Controller.
type Container struct {
	bottomOffset   int
	children       []placement
	measuredHeight int
	safeAreaInset  int
	width          int
}

// NewContainer creates an empty bottom bar container
func NewContainer(safeAreaInset int) *Container {
	if safeAreaInset < 0 {
		safeAreaInset = 0
	}
	return &Container{safeAreaInset: safeAreaInset}
}

// SetWidth updates the width children are laid out against
func (c *Container) SetWidth(width int) {
	c.width = max(width, 0)
}

// Width returns the container width
func (c *Container) Width() int {
	return c.width
}

// SafeAreaInset returns the rows reserved below the content for the safe area
func (c *Container) SafeAreaInset() int {
	return c.safeAreaInset
}

// Children returns the direct children, in insertion order
func (c *Container) Children() []ports.View {
	views := make([]ports.View, len(c.children))
	for i, p := range c.children {
		views[i] = p.view
	}
	return views
}

// Contains reports whether v is a direct child
func (c *Container) Contains(v ports.View) bool {
	return c.indexOf(v) >= 0
}

// PinningOf returns how v is pinned, if it is a child
func (c *Container) PinningOf(v ports.View) (Pinning, bool) {
	i := c.indexOf(v)
	if i < 0 {
		return 0, false
	}
	return c.children[i].pinning, true
}

// Layout measures the container against its current children
func (c *Container) Layout() {
	height := 0
	for _, p := range c.children {
		height = max(height, p.view.PreferredHeight(c.childWidth(p.pinning)))
	}
	if len(c.children) > 0 {
		height += c.safeAreaInset
	}
	c.measuredHeight = height
}

// MeasuredHeight returns the height computed by the last Layout pass
func (c *Container) MeasuredHeight() int {
	return c.measuredHeight
}

// SetBottomOffset sets the vertical offset of the bar relative to the screen bottom.
// Negative values move the bar up.
func (c *Container) SetBottomOffset(rows int) {
	c.bottomOffset = rows
}

// BottomOffset returns the current vertical offset
func (c *Container) BottomOffset() int {
	return c.bottomOffset
}

// View renders the container's child honouring its pinning.
// The result is exactly the child's height plus the safe area inset.
func (c *Container) View() string {
	if len(c.children) == 0 || c.width == 0 {
		return ""
	}

	p := c.children[0]
	childWidth := c.childWidth(p.pinning)
	childHeight := p.view.PreferredHeight(childWidth)
	rows := childHeight + c.safeAreaInset
	if rows == 0 {
		return ""
	}

	content := ""
	if childHeight > 0 {
		content = p.view.Render(childWidth)
		if p.pinning == PinLayoutMargins {
			content = lipgloss.NewStyle().
				PaddingLeft(horizontalMargin).
				PaddingRight(horizontalMargin).
				Render(content)
		}
	}

	return lipgloss.NewStyle().
		Width(c.width).
		Height(rows).
		MaxHeight(rows).
		Render(content)
}

func (c *Container) childWidth(pinning Pinning) int {
	if pinning == PinFullEdges {
		return c.width
	}
	return max(c.width-2*horizontalMargin, 1)
}

func (c *Container) indexOf(v ports.View) int {
	return slices.IndexFunc(c.children, func(p placement) bool { return p.view == v })
}

func (c *Container) addChild(v ports.View, pinning Pinning) {
	if c.Contains(v) {
		return
	}
	c.children = append(c.children, placement{view: v, pinning: pinning})
}

func (c *Container) removeChild(v ports.View) bool {
	i := c.indexOf(v)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	return true
}

func (c *Container) removeAllChildren() {
	c.children = nil
}

package bottombar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_LayoutMeasuresChildAndInset(t *testing.T) {
	tests := []struct {
		name     string
		inset    int
		views    []*fakeView
		expected int
	}{
		{name: "empty has no height", inset: 2, expected: 0},
		{name: "single child plus inset", inset: 2, views: []*fakeView{{height: 3}}, expected: 5},
		{name: "no inset", inset: 0, views: []*fakeView{{height: 4}}, expected: 4},
		{name: "tallest child wins", inset: 1, views: []*fakeView{{height: 2}, {height: 6}}, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(tt.inset)
			c.SetWidth(40)
			for _, v := range tt.views {
				c.addChild(v, PinLayoutMargins)
			}

			c.Layout()

			assert.Equal(t, tt.expected, c.MeasuredHeight())
		})
	}
}

func TestContainer_NegativeInsetClamped(t *testing.T) {
	c := NewContainer(-3)
	assert.Equal(t, 0, c.SafeAreaInset())
}

func TestContainer_AddRemove(t *testing.T) {
	c := NewContainer(0)
	a := &fakeView{name: "a", height: 1}
	b := &fakeView{name: "b", height: 1}

	c.addChild(a, PinLayoutMargins)
	c.addChild(a, PinLayoutMargins)
	c.addChild(b, PinFullEdges)
	require.Len(t, c.Children(), 2)

	pinning, ok := c.PinningOf(b)
	require.True(t, ok)
	assert.Equal(t, PinFullEdges, pinning)

	assert.True(t, c.removeChild(a))
	assert.False(t, c.removeChild(a))
	assert.False(t, c.Contains(a))
	assert.True(t, c.Contains(b))

	c.removeAllChildren()
	assert.Empty(t, c.Children())
	_, ok = c.PinningOf(b)
	assert.False(t, ok)
}

func TestContainer_ViewHonoursPinning(t *testing.T) {
	t.Run("layout margins pad the content and leave the inset blank", func(t *testing.T) {
		c := NewContainer(1)
		c.SetWidth(20)
		c.addChild(&fakeView{name: "bar", height: 1}, PinLayoutMargins)

		lines := strings.Split(c.View(), "\n")

		require.Len(t, lines, 2)
		assert.Equal(t, " bar", strings.TrimRight(lines[0], " "))
		assert.Empty(t, strings.TrimSpace(lines[1]))
	})

	t.Run("zero height child keeps only the inset", func(t *testing.T) {
		c := NewContainer(2)
		c.SetWidth(20)
		c.addChild(&fakeView{name: "hidden", height: 0}, PinLayoutMargins)

		out := c.View()

		assert.Equal(t, 2, lipgloss.Height(out))
		assert.Empty(t, strings.TrimSpace(out))
	})

	t.Run("full edges fill width and inset", func(t *testing.T) {
		c := NewContainer(2)
		c.SetWidth(10)
		c.addChild(&fakeView{name: "panel", height: 1}, PinFullEdges)

		out := c.View()

		assert.Equal(t, 10, lipgloss.Width(out))
		assert.Equal(t, 3, lipgloss.Height(out))
	})

	t.Run("empty renders nothing", func(t *testing.T) {
		c := NewContainer(2)
		c.SetWidth(10)
		assert.Empty(t, c.View())
	})
}

func TestPinning_String(t *testing.T) {
	assert.Equal(t, "full-edges", PinFullEdges.String())
	assert.Equal(t, "layout-margins", PinLayoutMargins.String())
}

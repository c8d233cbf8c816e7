package bottombar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	portsmocks "github.com/renato0307/convobar/internal/ports/mocks"
)

func newLayoutFixture(t *testing.T, dismissing, popping bool) (*LayoutCoordinator, *Container, *Accessory, *portsmocks.MockHostScreen) {
	t.Helper()

	container := NewContainer(1)
	container.SetWidth(40)
	container.addChild(&fakeView{name: "toolbar", height: 3}, PinLayoutMargins)
	accessory := &Accessory{}

	gestures := portsmocks.NewMockGestureProbe(t)
	gestures.EXPECT().IsInteractiveDismissInProgress().Return(dismissing).Maybe()
	gestures.EXPECT().IsInteractivePopInProgress().Return(popping).Maybe()

	host := portsmocks.NewMockHostScreen(t)

	return NewLayoutCoordinator(container, accessory, gestures, host), container, accessory, host
}

func TestLayoutCoordinator_UpdateAccessoryHeight(t *testing.T) {
	tests := []struct {
		name       string
		dismissing bool
		expected   int
	}{
		{name: "tracks measured height", dismissing: false, expected: 4},
		{name: "skipped during interactive dismiss", dismissing: true, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, _, accessory, _ := newLayoutFixture(t, tt.dismissing, false)

			layout.UpdateAccessoryHeight()

			assert.Equal(t, tt.expected, accessory.DesiredHeight())
		})
	}
}

func TestLayoutCoordinator_UpdatePosition(t *testing.T) {
	tests := []struct {
		name     string
		popping  bool
		overlap  int
		expected int
	}{
		{name: "moves above keyboard", overlap: 5, expected: -5},
		{name: "no keyboard", overlap: 0, expected: 0},
		{name: "skipped during interactive pop", popping: true, overlap: 5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, container, _, _ := newLayoutFixture(t, false, tt.popping)
			layout.keyboardOverlap = tt.overlap

			layout.UpdatePosition()

			assert.Equal(t, tt.expected, container.BottomOffset())
		})
	}
}

func TestLayoutCoordinator_RecomputeAnimatesOnlyAfterAppearance(t *testing.T) {
	layout, _, accessory, host := newLayoutFixture(t, false, false)

	host.EXPECT().UpdateContentInsets(false).Return().Once()
	host.EXPECT().UpdateInputVisibility().Return().Twice()
	layout.Recompute()

	host.EXPECT().UpdateContentInsets(true).Return().Once()
	layout.MarkAppeared()
	layout.Recompute()

	assert.Equal(t, 4, accessory.DesiredHeight())
}

func TestLayoutCoordinator_SetKeyboardOverlap(t *testing.T) {
	layout, container, _, host := newLayoutFixture(t, false, false)
	host.EXPECT().UpdateContentInsets(false).Return()
	host.EXPECT().UpdateInputVisibility().Return()

	layout.SetKeyboardOverlap(8)
	assert.Equal(t, 8, layout.KeyboardOverlap())
	assert.Equal(t, -8, container.BottomOffset())

	layout.SetKeyboardOverlap(-2)
	assert.Equal(t, 0, layout.KeyboardOverlap())
	assert.Equal(t, 0, container.BottomOffset())
}

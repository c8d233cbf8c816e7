package bottombar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/ports"
	portsmocks "github.com/renato0307/convobar/internal/ports/mocks"
)

type controllerFixture struct {
	accessory  *Accessory
	borrowed   BorrowedViews
	clock      time.Time
	container  *Container
	controller *Controller
	factory    *portsmocks.MockPanelFactory
	host       *portsmocks.MockHostScreen
	overlay    *Overlay
}

func newControllerFixture(t *testing.T) *controllerFixture {
	t.Helper()

	f := &controllerFixture{
		accessory: &Accessory{},
		borrowed: BorrowedViews{
			InputToolbar: &fakeView{name: "toolbar", height: 3},
			Search:       &fakeView{name: "search", height: 1},
			Selection:    &fakeView{name: "selection", height: 1},
		},
		clock:     time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		container: NewContainer(2),
		factory:   portsmocks.NewMockPanelFactory(t),
		host:      portsmocks.NewMockHostScreen(t),
		overlay:   &Overlay{},
	}
	f.container.SetWidth(80)

	gestures := portsmocks.NewMockGestureProbe(t)
	gestures.EXPECT().IsInteractiveDismissInProgress().Return(false).Maybe()
	gestures.EXPECT().IsInteractivePopInProgress().Return(false).Maybe()

	f.host.EXPECT().UpdateContentInsets(mock.Anything).Return().Maybe()
	f.host.EXPECT().UpdateInputVisibility().Return().Maybe()
	f.host.EXPECT().OnKindChanged(mock.Anything).Return().Maybe()

	layout := NewLayoutCoordinator(f.container, f.accessory, gestures, f.host)
	f.controller = NewController(ControllerConfig{
		Borrowed:  f.borrowed,
		Container: f.container,
		Delegate:  nopDelegate{},
		Factory:   f.factory,
		Host:      f.host,
		Layout:    layout,
		Overlay:   f.overlay,
	})
	f.controller.now = func() time.Time { return f.clock }

	return f
}

// frame builds the frame message for the current dismissal at offset d from its start
func (f *controllerFixture) frame(t *testing.T, d time.Duration) DismissalFrameMsg {
	t.Helper()
	require.NotNil(t, f.controller.dismissing)
	return DismissalFrameMsg{Time: f.clock.Add(d), Token: f.controller.dismissing.token}
}

func TestController_StartsEmpty(t *testing.T) {
	f := newControllerFixture(t)

	assert.Equal(t, domain.BottomNone, f.controller.Current())
	assert.Nil(t, f.controller.MountedView())
	assert.Empty(t, f.container.Children())
}

func TestController_ApplySameKindIsNoop(t *testing.T) {
	f := newControllerFixture(t)

	cmd := f.controller.Apply(domain.BottomNone)

	assert.Nil(t, cmd)
	f.host.AssertNotCalled(t, "OnKindChanged", mock.Anything)
	f.host.AssertNotCalled(t, "UpdateContentInsets", mock.Anything)
}

func TestController_MountsBorrowedViewsWithLayoutMargins(t *testing.T) {
	tests := []struct {
		kind     domain.BottomViewKind
		expected func(BorrowedViews) any
	}{
		{kind: domain.BottomInputToolbar, expected: func(b BorrowedViews) any { return b.InputToolbar }},
		{kind: domain.BottomSearch, expected: func(b BorrowedViews) any { return b.Search }},
		{kind: domain.BottomSelection, expected: func(b BorrowedViews) any { return b.Selection }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := newControllerFixture(t)

			cmd := f.controller.Apply(tt.kind)

			assert.Nil(t, cmd)
			want := tt.expected(f.borrowed)
			assert.Same(t, want, f.controller.MountedView())
			children := f.container.Children()
			require.Len(t, children, 1)
			pinning, ok := f.container.PinningOf(children[0])
			require.True(t, ok)
			assert.Equal(t, PinLayoutMargins, pinning)
			f.host.AssertCalled(t, "OnKindChanged", tt.kind)
		})
	}
}

func TestController_ToolbarToMemberRequest(t *testing.T) {
	f := newControllerFixture(t)
	thread := domain.Thread{ID: "g1", IsGroup: true, IsLocalUserPendingMember: true}
	f.controller.SetThread(thread)
	panel := newFakePanel("member", 4)
	f.factory.EXPECT().MakeMemberRequestPanel(thread).Return(panel).Once()

	f.controller.Apply(domain.BottomInputToolbar)
	cmd := f.controller.Apply(domain.BottomMemberRequest)

	assert.Nil(t, cmd, "borrowed views are unparented without animation")
	assert.False(t, f.container.Contains(f.borrowed.InputToolbar))
	assert.Equal(t, 0, f.overlay.Len())
	assert.Same(t, panel, f.controller.MountedView())
	pinning, _ := f.container.PinningOf(panel)
	assert.Equal(t, PinFullEdges, pinning)
	assert.NotNil(t, panel.delegate)
	assert.Equal(t, 6, f.accessory.DesiredHeight())
}

func TestController_MessageRequestToToolbarDismissesPanel(t *testing.T) {
	f := newControllerFixture(t)
	panel := newFakePanel("request", 5)
	f.factory.EXPECT().MakeMessageRequestPanel(mock.Anything, domain.SubtypeGroupInvite).Return(panel).Once()

	f.controller.Apply(domain.BottomMessageRequest(domain.SubtypeGroupInvite))
	cmd := f.controller.Apply(domain.BottomInputToolbar)

	require.NotNil(t, cmd)
	assert.Same(t, f.borrowed.InputToolbar, f.controller.MountedView())
	assert.False(t, f.container.Contains(panel))
	assert.True(t, f.overlay.Contains(panel))

	sliding, ok := f.controller.Sliding()
	require.True(t, ok)
	assert.Same(t, panel, sliding.Panel)
	assert.Equal(t, 7, sliding.Rows, "panel height plus safe area inset")
	assert.Equal(t, 0, sliding.Offset)

	next := f.controller.HandleDismissalFrame(f.frame(t, DismissalDuration/2))
	assert.NotNil(t, next)
	sliding, ok = f.controller.Sliding()
	require.True(t, ok)
	assert.Equal(t, 3, sliding.Offset)
	assert.True(t, f.overlay.Contains(panel), "panel stays parented until the animation ends")

	done := f.controller.HandleDismissalFrame(f.frame(t, DismissalDuration))
	assert.Nil(t, done)
	_, ok = f.controller.Sliding()
	assert.False(t, ok)
	assert.False(t, f.overlay.Contains(panel))
}

func TestController_StaleFrameIsIgnored(t *testing.T) {
	f := newControllerFixture(t)
	panel := newFakePanel("migration", 2)
	f.factory.EXPECT().MakeMigrationPanel(mock.Anything).Return(panel).Once()

	f.controller.Apply(domain.BottomBlockingMigration)
	f.controller.Apply(domain.BottomInputToolbar)
	final := f.frame(t, DismissalDuration)

	assert.Nil(t, f.controller.HandleDismissalFrame(final))
	assert.Nil(t, f.controller.HandleDismissalFrame(final), "completion fires once per token")
	assert.Equal(t, 0, f.overlay.Len())
}

func TestController_SecondDismissalFinishesTheFirst(t *testing.T) {
	f := newControllerFixture(t)
	first := newFakePanel("first", 3)
	second := newFakePanel("second", 3)
	f.factory.EXPECT().MakeMessageRequestPanel(mock.Anything, domain.SubtypeContact).Return(first).Once()
	f.factory.EXPECT().MakeMemberRequestPanel(mock.Anything).Return(second).Once()

	f.controller.Apply(domain.BottomMessageRequest(domain.SubtypeContact))
	f.controller.Apply(domain.BottomMemberRequest)
	firstFrame := f.frame(t, DismissalDuration/4)
	f.controller.Apply(domain.BottomNone)

	assert.False(t, f.overlay.Contains(first))
	assert.True(t, f.overlay.Contains(second))
	assert.Equal(t, 1, f.overlay.Len())
	assert.Nil(t, f.controller.HandleDismissalFrame(firstFrame))

	sliding, ok := f.controller.Sliding()
	require.True(t, ok)
	assert.Same(t, second, sliding.Panel)
	assert.Empty(t, f.container.Children())
}

func TestController_MessageRequestSubtypeChangeRebuildsPanel(t *testing.T) {
	f := newControllerFixture(t)
	contact := newFakePanel("contact", 3)
	blocked := newFakePanel("blocked", 3)
	f.factory.EXPECT().MakeMessageRequestPanel(mock.Anything, domain.SubtypeContact).Return(contact).Once()
	f.factory.EXPECT().MakeMessageRequestPanel(mock.Anything, domain.SubtypeBlockedContact).Return(blocked).Once()

	f.controller.Apply(domain.BottomMessageRequest(domain.SubtypeContact))
	cmd := f.controller.Apply(domain.BottomMessageRequest(domain.SubtypeBlockedContact))

	assert.NotNil(t, cmd)
	assert.Same(t, blocked, f.controller.MountedView())
	assert.True(t, f.overlay.Contains(contact))
	assert.Len(t, f.container.Children(), 1)
}

func TestController_ApplyNoneEmptiesContainer(t *testing.T) {
	f := newControllerFixture(t)

	f.controller.Apply(domain.BottomSearch)
	f.controller.Apply(domain.BottomNone)

	assert.Empty(t, f.container.Children())
	assert.Nil(t, f.controller.MountedView())
	assert.Equal(t, 0, f.accessory.DesiredHeight())
}

func TestController_AtMostOneChildAcrossSequences(t *testing.T) {
	f := newControllerFixture(t)
	f.factory.EXPECT().MakeMemberRequestPanel(mock.Anything).RunAndReturn(func(domain.Thread) ports.Panel {
		return newFakePanel("member", 2)
	}).Maybe()
	f.factory.EXPECT().MakeMigrationPanel(mock.Anything).RunAndReturn(func(domain.Thread) ports.Panel {
		return newFakePanel("migration", 2)
	}).Maybe()

	sequence := []domain.BottomViewKind{
		domain.BottomInputToolbar,
		domain.BottomMemberRequest,
		domain.BottomBlockingMigration,
		domain.BottomSearch,
		domain.BottomSelection,
		domain.BottomMemberRequest,
		domain.BottomNone,
		domain.BottomInputToolbar,
	}

	for _, kind := range sequence {
		f.controller.Apply(kind)
		assert.LessOrEqual(t, len(f.container.Children()), 1, "after %s", kind)
		assert.LessOrEqual(t, f.overlay.Len(), 1, "after %s", kind)
		assert.Equal(t, kind, f.controller.Current())
	}
}

func TestMountStrategies_CoverEveryKind(t *testing.T) {
	for _, kind := range domain.AllKinds {
		t.Run(kind.String(), func(t *testing.T) {
			assert.NotPanics(t, func() { strategyFor(kind) })
		})
	}
	assert.Len(t, mountStrategies, len(domain.AllKinds))
}

func TestStrategyFor_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { strategyFor(domain.Kind(99)) })
}

func TestEaseInOut(t *testing.T) {
	assert.InDelta(t, 0.0, easeInOut(0), 1e-9)
	assert.InDelta(t, 0.5, easeInOut(0.5), 1e-9)
	assert.InDelta(t, 1.0, easeInOut(1), 1e-9)
	assert.Less(t, easeInOut(0.25), 0.25)
	assert.Greater(t, easeInOut(0.75), 0.75)
}

func TestSliding_Visible(t *testing.T) {
	assert.Equal(t, 4, Sliding{Rows: 7, Offset: 3}.Visible())
	assert.Equal(t, 0, Sliding{Rows: 7, Offset: 9}.Visible())
}

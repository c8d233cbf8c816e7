package bottombar

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/convobar/internal/assert"
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ports"
)

// BorrowedViews are the long-lived views owned by the host screen.
// The controller mounts and unmounts them but never releases them.
type BorrowedViews struct {
	InputToolbar ports.View
	Search       ports.View
	Selection    ports.View
}

// mounted is the content currently attached to the bottom bar.
// owned is nil for borrowed views.
type mounted struct {
	owned ports.Panel
	view  ports.View
}

// Controller swaps the bottom bar content when the selected kind changes.
// All methods must be called from the bubbletea Update loop.
type Controller struct {
	borrowed   BorrowedViews
	container  *Container
	current    domain.BottomViewKind
	delegate   ports.PanelDelegate
	dismissing *dismissal
	factory    ports.PanelFactory
	host       ports.HostScreen
	layout     *LayoutCoordinator
	mounted    *mounted
	nextToken  uint64
	now        func() time.Time
	overlay    *Overlay
	thread     domain.Thread
}

// ControllerConfig wires a Controller to its collaborators
type ControllerConfig struct {
	Borrowed  BorrowedViews
	Container *Container
	Delegate  ports.PanelDelegate
	Factory   ports.PanelFactory
	Host      ports.HostScreen
	Layout    *LayoutCoordinator
	Overlay   *Overlay
}

// NewController creates a controller with nothing mounted (kind none)
func NewController(cfg ControllerConfig) *Controller {
	overlay := cfg.Overlay
	if overlay == nil {
		overlay = &Overlay{}
	}
	return &Controller{
		borrowed:  cfg.Borrowed,
		container: cfg.Container,
		current:   domain.BottomNone,
		delegate:  cfg.Delegate,
		factory:   cfg.Factory,
		host:      cfg.Host,
		layout:    cfg.Layout,
		now:       time.Now,
		overlay:   overlay,
	}
}

// SetThread sets the thread passed to the panel factory on the next construction
func (c *Controller) SetThread(thread domain.Thread) {
	c.thread = thread
}

// Current returns the kind currently mounted
func (c *Controller) Current() domain.BottomViewKind {
	return c.current
}

// MountedView returns the view attached to the bottom bar, or nil
func (c *Controller) MountedView() ports.View {
	if c.mounted == nil {
		return nil
	}
	return c.mounted.view
}

// Sliding returns the panel sliding off the screen, if any
func (c *Controller) Sliding() (Sliding, bool) {
	if c.dismissing == nil {
		return Sliding{}, false
	}
	return Sliding{
		Offset: c.dismissing.offset,
		Panel:  c.dismissing.token.panel,
		Rows:   c.dismissing.distance,
	}, true
}

// Apply mounts the content for kind, replacing whatever is mounted.
// Applying the current kind is a no-op. The returned command drives the
// outgoing panel's slide-off animation, if one was scheduled.
func (c *Controller) Apply(kind domain.BottomViewKind) tea.Cmd {
	if kind.Equal(c.current) {
		return nil
	}

	logging.Logger.Debug("Swapping bottom view", "from", c.current.String(), "to", kind.String())

	var cmd tea.Cmd
	if old := c.takeMounted(); old != nil {
		if old.owned != nil {
			cmd = c.beginDismissal(old.owned)
		} else {
			c.container.removeChild(old.view)
		}
	}

	c.container.removeAllChildren()

	if view, owned := c.resolveContent(kind); view != nil {
		c.container.addChild(view, pinningFor(kind.Tag))
		c.mounted = &mounted{owned: owned, view: view}
	}
	c.current = kind

	assert.That(len(c.container.children) <= 1, "bottom bar holds more than one child")
	assert.That(c.dismissing == nil || c.mounted == nil || c.mounted.view != ports.View(c.dismissing.token.panel),
		"mounted and dismissing slots alias the same panel")

	c.layout.Recompute()
	c.host.OnKindChanged(kind)

	return cmd
}

// HandleDismissalFrame advances the slide-off animation for msg's token.
// Frames for a dismissal that already finished are ignored.
func (c *Controller) HandleDismissalFrame(msg DismissalFrameMsg) tea.Cmd {
	d := c.dismissing
	if d == nil || d.token.id != msg.Token.id {
		return nil
	}

	p := d.progress(msg.Time)
	if p >= 1 {
		c.finishDismissal()
		return nil
	}

	d.offset = int(p * float64(d.distance))
	return dismissalFrame(d.token)
}

// takeMounted moves the mounted content out of its slot
func (c *Controller) takeMounted() *mounted {
	m := c.mounted
	c.mounted = nil
	return m
}

// beginDismissal reparents panel to the screen overlay and schedules its slide-off
func (c *Controller) beginDismissal(panel ports.Panel) tea.Cmd {
	if c.dismissing != nil {
		// Only one panel slides at a time; the older one is done early
		logging.Logger.Debug("Finishing in-flight dismissal early", "token", c.dismissing.token.id)
		c.finishDismissal()
	}

	distance := panel.PreferredHeight(c.container.Width()) + c.container.SafeAreaInset()

	c.container.removeChild(panel)
	c.overlay.addChild(panel)

	c.nextToken++
	token := DismissalToken{id: c.nextToken, panel: panel}
	c.dismissing = &dismissal{
		distance: distance,
		started:  c.now(),
		token:    token,
	}

	logging.Logger.Debug("Scheduled panel dismissal", "token", token.id, "rows", distance, "duration", DismissalDuration)
	return dismissalFrame(token)
}

// finishDismissal unparents and releases the dismissing panel
func (c *Controller) finishDismissal() {
	d := c.dismissing
	c.dismissing = nil
	c.overlay.removeChild(d.token.panel)
	logging.Logger.Debug("Released dismissed panel", "token", d.token.id)
}

// resolveContent returns the view for kind and, for constructed panels, the owned panel
func (c *Controller) resolveContent(kind domain.BottomViewKind) (ports.View, ports.Panel) {
	switch strategyFor(kind.Tag) {
	case mountEmpty:
		return nil, nil
	case mountReuse:
		return c.borrowedView(kind.Tag), nil
	case mountConstruct:
		panel := c.constructPanel(kind)
		panel.SetDelegate(c.delegate)
		return panel, panel
	}
	panic(fmt.Sprintf("bottombar: unhandled mount strategy for %s", kind))
}

func (c *Controller) borrowedView(kind domain.Kind) ports.View {
	switch kind {
	case domain.KindInputToolbar:
		return c.borrowed.InputToolbar
	case domain.KindSearch:
		return c.borrowed.Search
	case domain.KindSelection:
		return c.borrowed.Selection
	}
	panic(fmt.Sprintf("bottombar: %s has no borrowed view", kind))
}

func (c *Controller) constructPanel(kind domain.BottomViewKind) ports.Panel {
	switch kind.Tag {
	case domain.KindMemberRequest:
		return c.factory.MakeMemberRequestPanel(c.thread)
	case domain.KindMessageRequest:
		return c.factory.MakeMessageRequestPanel(c.thread, kind.Subtype)
	case domain.KindBlockingMigration:
		return c.factory.MakeMigrationPanel(c.thread)
	}
	panic(fmt.Sprintf("bottombar: %s is not a constructed panel", kind))
}

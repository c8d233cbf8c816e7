package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/convobar/internal/bottombar"
	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ports"
	"github.com/renato0307/convobar/internal/services"
	"github.com/renato0307/convobar/internal/ui/panels"
)

type uiState int

const (
	stateConversation uiState = iota
	stateConfirmingBlock
)

const (
	headerRows        = 1
	statusRows        = 2
	helpRows          = 1
	defaultTrayRows   = 6
	popEdgeColumns    = 2
	learnMoreNotice   = "Legacy groups can't receive new messages. Start a new group with the same members to continue."
	emptyConversation = "No messages yet"
)

// ScreenConfig holds the options of a conversation screen
type ScreenConfig struct {
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Preview         bool
	SafeAreaInset   int
	ThreadID        string
	TrayRows        int
}

// ConversationScreen is the bubbletea model of one conversation.
// It hosts the bottom bar and answers its layout callbacks.
type ConversationScreen struct {
	accessory       *bottombar.Accessory
	appeared        bool
	blockConfirmed  *bool
	blockThreadID   string
	bottomBar       *bottombar.Container
	confirmDialog   *Dialog
	controller      *bottombar.Controller
	cursor          int
	devMode         bool
	errorManager    *ErrorManager
	gestures        *GestureTracker
	height          int
	help            help.Model
	inputVisibility domain.InputVisibility
	keys            KeyMap
	kind            domain.BottomViewKind
	layout          *bottombar.LayoutCoordinator
	messages        []string
	mode            domain.UIMode
	notice          string
	pending         []tea.Cmd
	quitting        bool
	search          *SearchBar
	selected        map[int]bool
	selection       *SelectionBar
	service         *services.ConversationService
	state           uiState
	thread          *domain.Thread
	threadID        string
	toolbar         *InputToolbar
	trayOpen        bool
	trayRows        int
	viewport        viewport.Model
	width           int
}

var (
	_ ports.HostScreen    = (*ConversationScreen)(nil)
	_ ports.PanelDelegate = (*ConversationScreen)(nil)
	_ tea.Model           = (*ConversationScreen)(nil)
)

// NewConversationScreen creates the screen for cfg.ThreadID.
// Nothing is mounted in the bottom bar until the first window size arrives.
func NewConversationScreen(
	cfg ScreenConfig,
	service *services.ConversationService,
	factory ports.PanelFactory,
) *ConversationScreen {
	keys := NewKeyMap(cfg.Keys)

	trayRows := cfg.TrayRows
	if trayRows <= 0 {
		trayRows = defaultTrayRows
	}

	s := &ConversationScreen{
		accessory:       &bottombar.Accessory{},
		blockConfirmed:  new(bool),
		bottomBar:       bottombar.NewContainer(cfg.SafeAreaInset),
		devMode:         cfg.DevMode,
		errorManager:    NewErrorManager(cfg.ErrorClearDelay),
		gestures:        NewGestureTracker(),
		help:            help.New(),
		inputVisibility: domain.InputVisibility{IsPreview: cfg.Preview},
		keys:            keys,
		kind:            domain.BottomNone,
		mode:            domain.ModeNormal,
		search:          NewSearchBar(),
		selected:        make(map[int]bool),
		selection:       NewSelectionBar(keys),
		service:         service,
		state:           stateConversation,
		threadID:        cfg.ThreadID,
		toolbar:         NewInputToolbar(),
		trayRows:        trayRows,
		viewport:        viewport.New(0, 0),
	}

	s.layout = bottombar.NewLayoutCoordinator(s.bottomBar, s.accessory, s.gestures, s)
	s.controller = bottombar.NewController(bottombar.ControllerConfig{
		Borrowed: bottombar.BorrowedViews{
			InputToolbar: s.toolbar,
			Search:       s.search,
			Selection:    s.selection,
		},
		Container: s.bottomBar,
		Delegate:  s,
		Factory:   factory,
		Host:      s,
		Layout:    s.layout,
	})

	return s
}

// Quitting reports whether the screen has asked the program to exit
func (s *ConversationScreen) Quitting() bool {
	return s.quitting
}

func (s *ConversationScreen) Init() tea.Cmd {
	return textarea.Blink
}

func (s *ConversationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := s.update(msg)
	cmds := append(s.pending, cmd)
	s.pending = nil
	return s, tea.Batch(cmds...)
}

func (s *ConversationScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return s.resize(msg.Width, msg.Height)
	case bottombar.DismissalFrameMsg:
		return s.controller.HandleDismissalFrame(msg)
	case clearErrorMsg:
		s.errorManager.ClearError()
		s.notice = ""
		return nil
	case gestureSettledMsg:
		s.gestures.Settle()
		logging.Logger.Debug("Gestures settled, re-applying bottom bar layout")
		s.layout.Recompute()
		return nil
	case PanelActionMsg:
		return s.handlePanelAction(msg)
	}

	if s.state == stateConfirmingBlock {
		return s.updateConfirmingBlock(msg)
	}
	return s.updateConversation(msg)
}

// resize lays the screen out for a new terminal size.
// The first size marks the screen as appeared and selects the initial bottom view.
func (s *ConversationScreen) resize(width, height int) tea.Cmd {
	s.width, s.height = width, height
	s.viewport.Width = width
	s.bottomBar.SetWidth(width)
	s.help.Width = width
	settle := s.cancelGesture()

	if s.appeared {
		// A failed first refresh left the bar empty; try again
		if s.controller.Current().Tag == domain.KindNone {
			return tea.Batch(settle, s.refresh())
		}
		s.layout.Recompute()
		return settle
	}

	s.appeared = true
	logging.Logger.Info("Conversation screen appeared", "thread", s.threadID, "width", width, "height", height)
	cmd := s.refresh()
	s.layout.MarkAppeared()
	return tea.Batch(settle, cmd)
}

// cancelGesture aborts a drag in flight. A dragged tray snaps back to its
// open state, and the returned command settles the gestures so layout
// updates resume.
func (s *ConversationScreen) cancelGesture() tea.Cmd {
	kind, ok := s.gestures.Cancel()
	if !ok {
		return nil
	}
	logging.Logger.Debug("Gesture cancelled by resize", "kind", kind)
	if kind == GestureDismiss {
		s.setTrayOpen(s.trayOpen)
	}
	return func() tea.Msg { return gestureSettledMsg{} }
}

// refresh reads a fresh snapshot and mounts the bottom view it selects
func (s *ConversationScreen) refresh() tea.Cmd {
	snapshot, thread, err := s.service.Snapshot(context.Background(), s.threadID, services.ScreenState{
		HasAppeared: s.appeared,
		UIMode:      string(s.mode),
	})
	if err != nil {
		logging.Logger.Error("Failed to read view state", "thread", s.threadID, "error", err)
		return s.errorManager.SetError(err)
	}

	s.thread = thread
	s.controller.SetThread(*thread)

	cmd := s.controller.Apply(domain.SelectBottomView(snapshot))

	if s.inputVisibility.HasLeftGroup != thread.HasLeftGroup {
		s.inputVisibility.HasLeftGroup = thread.HasLeftGroup
		s.UpdateInputVisibility()
	}
	return cmd
}

func (s *ConversationScreen) setMode(mode domain.UIMode) tea.Cmd {
	if s.mode == mode {
		return nil
	}
	logging.Logger.Debug("Switching UI mode", "from", s.mode, "to", mode)

	s.mode = mode
	switch mode {
	case domain.ModeSearch:
		s.search.Reset()
	case domain.ModeSelection:
		s.selected = make(map[int]bool)
		s.selection.SetSelected(0)
		s.cursor = max(len(s.messages)-1, 0)
	}

	cmd := s.refresh()
	s.refreshContent()
	return cmd
}

func (s *ConversationScreen) updateConversation(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseMsg:
		return s.handleMouse(msg)
	}

	// Cursor blinks and other internal messages
	return tea.Batch(s.toolbar.Update(msg), s.search.Update(msg, s.messages))
}

func (s *ConversationScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.ForceQuit, s.keys.Quit):
		s.quitting = true
		return tea.Quit
	case key.Matches(msg, s.keys.Tray):
		if s.toolbar.IsHidden() && !s.trayOpen {
			return nil
		}
		s.setTrayOpen(!s.trayOpen)
		return nil
	case key.Matches(msg, s.keys.NormalMode):
		if s.mode != domain.ModeNormal {
			return s.setMode(domain.ModeNormal)
		}
		if s.trayOpen {
			s.setTrayOpen(false)
		}
		return nil
	case key.Matches(msg, s.keys.Search):
		return s.setMode(domain.ModeSearch)
	case key.Matches(msg, s.keys.Select):
		return s.setMode(domain.ModeSelection)
	}

	switch s.kind.Tag {
	case domain.KindInputToolbar:
		if key.Matches(msg, s.keys.Send) {
			s.send()
			return nil
		}
		return s.toolbar.Update(msg)
	case domain.KindSearch:
		return s.handleSearchKey(msg)
	case domain.KindSelection:
		s.handleSelectionKey(msg)
		return nil
	case domain.KindMemberRequest, domain.KindMessageRequest, domain.KindBlockingMigration:
		if handler, ok := s.controller.MountedView().(panels.KeyHandler); ok {
			handler.HandleKey(msg.String())
		}
		return nil
	}
	return nil
}

func (s *ConversationScreen) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.search.Prev()
	case key.Matches(msg, s.keys.Down):
		s.search.Next()
	default:
		cmd := s.search.Update(msg, s.messages)
		s.refreshContent()
		return cmd
	}
	s.refreshContent()
	if i, ok := s.search.Current(); ok {
		s.scrollTo(i)
	}
	return nil
}

func (s *ConversationScreen) handleSelectionKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.cursor = max(s.cursor-1, 0)
		s.scrollTo(s.cursor)
	case key.Matches(msg, s.keys.Down):
		s.cursor = min(s.cursor+1, max(len(s.messages)-1, 0))
		s.scrollTo(s.cursor)
	case key.Matches(msg, s.keys.ToggleSelected):
		if len(s.messages) == 0 {
			return
		}
		if s.selected[s.cursor] {
			delete(s.selected, s.cursor)
		} else {
			s.selected[s.cursor] = true
		}
	case key.Matches(msg, s.keys.DeleteSelected):
		s.deleteSelected()
	}
	s.selection.SetSelected(len(s.selected))
	s.refreshContent()
}

func (s *ConversationScreen) send() {
	text := s.toolbar.Take()
	if text == "" {
		return
	}
	s.messages = append(s.messages, text)
	logging.Logger.Debug("Message composed", "thread", s.threadID, "length", len(text))
	s.refreshContent()
	s.viewport.GotoBottom()
}

func (s *ConversationScreen) deleteSelected() {
	if len(s.selected) == 0 {
		return
	}
	kept := s.messages[:0]
	for i, m := range s.messages {
		if !s.selected[i] {
			kept = append(kept, m)
		}
	}
	logging.Logger.Debug("Deleted selected messages", "count", len(s.messages)-len(kept))
	s.messages = kept
	s.selected = make(map[int]bool)
	s.cursor = min(s.cursor, max(len(s.messages)-1, 0))
}

func (s *ConversationScreen) setTrayOpen(open bool) {
	s.trayOpen = open
	rows := 0
	if open {
		rows = s.trayRows
	}
	s.layout.SetKeyboardOverlap(rows)
}

func (s *ConversationScreen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return cmd
		}
		if msg.X < popEdgeColumns {
			s.gestures.Begin(GesturePop, msg.X, msg.Y)
		} else if s.trayOpen && msg.Y >= s.height-s.layout.KeyboardOverlap() {
			s.gestures.Begin(GestureDismiss, msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		kind, _, dy, ok := s.gestures.Move(msg.X, msg.Y)
		if ok && kind == GestureDismiss {
			s.layout.SetKeyboardOverlap(s.trayRows - max(dy, 0))
		}
	case tea.MouseActionRelease:
		kind, dx, dy, ok := s.gestures.End(msg.X, msg.Y)
		if !ok {
			return nil
		}
		logging.Logger.Debug("Gesture ended", "kind", kind, "dx", dx, "dy", dy)
		settle := func() tea.Msg { return gestureSettledMsg{} }

		switch kind {
		case GesturePop:
			if dx > s.width/3 {
				s.quitting = true
				return tea.Sequence(settle, tea.Quit)
			}
		case GestureDismiss:
			s.setTrayOpen(dy < s.trayRows/2)
		}
		return settle
	}
	return nil
}

// HandlePanelAction queues the action so it is applied on the next Update
func (s *ConversationScreen) HandlePanelAction(threadID string, action domain.PanelAction) {
	s.pending = append(s.pending, func() tea.Msg {
		return PanelActionMsg{Action: action, ThreadID: threadID}
	})
}

func (s *ConversationScreen) handlePanelAction(msg PanelActionMsg) tea.Cmd {
	switch msg.Action {
	case domain.ActionBlock:
		return s.openBlockConfirm(msg.ThreadID)
	case domain.ActionLearnMore:
		s.notice = learnMoreNotice
		return s.errorManager.ClearAfterDelay()
	}
	return s.applyAction(msg.ThreadID, msg.Action)
}

func (s *ConversationScreen) applyAction(threadID string, action domain.PanelAction) tea.Cmd {
	changed, err := s.service.HandleAction(context.Background(), threadID, action)
	if err != nil {
		return s.errorManager.SetError(err)
	}

	if action == domain.ActionDelete {
		logging.Logger.Info("Conversation deleted, closing screen", "thread", threadID)
		s.quitting = true
		return tea.Quit
	}
	if !changed {
		return nil
	}
	return s.refresh()
}

func (s *ConversationScreen) openBlockConfirm(threadID string) tea.Cmd {
	*s.blockConfirmed = false
	s.blockThreadID = threadID

	name := "this conversation"
	if s.thread != nil && s.thread.Name != "" {
		name = s.thread.Name
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Block %s?", name)).
				Description("Blocked people and groups can't message or call you.").
				Value(s.blockConfirmed).
				Affirmative("Block").
				Negative("Cancel"),
		),
	)
	s.confirmDialog = NewDialog("Block", form, s.devMode)
	s.state = stateConfirmingBlock
	return s.confirmDialog.Init()
}

func (s *ConversationScreen) updateConfirmingBlock(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, s.keys.NormalMode, s.keys.ForceQuit) {
			s.closeBlockConfirm()
			return nil
		}
	}

	updated, cmd := s.confirmDialog.Update(msg)
	s.confirmDialog = updated.(*Dialog)

	form, ok := s.confirmDialog.Content().(*huh.Form)
	if !ok {
		return cmd
	}

	switch form.State {
	case huh.StateCompleted:
		confirmed := *s.blockConfirmed
		threadID := s.blockThreadID
		logging.Logger.Info("Block decision", "thread", threadID, "block", confirmed)
		s.closeBlockConfirm()
		if confirmed {
			return s.applyAction(threadID, domain.ActionBlock)
		}
		return nil
	case huh.StateAborted:
		s.closeBlockConfirm()
		return nil
	}
	return cmd
}

func (s *ConversationScreen) closeBlockConfirm() {
	s.state = stateConversation
	s.confirmDialog = nil
	s.blockThreadID = ""
}

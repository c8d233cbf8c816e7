package server

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ui"
	"github.com/renato0307/convobar/internal/ui/panels"
)

// teaHandler creates a conversation screen for each SSH session.
// The thread ID is the session's command: ssh -p 23235 host <thread-id>
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"command", strings.Join(sess.Command(), " "),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	threadID, err := threadFromCommand(sess.Command())
	if err != nil {
		logging.Logger.Warn("Rejected SSH session", "session_id", sessionID, "error", err)
		return errorModel{err}, nil
	}

	screen := ui.NewConversationScreen(ui.ScreenConfig{
		ErrorClearDelay: s.options.ErrorClearDelay,
		Keys:            s.options.Keys,
		Preview:         s.options.Preview,
		SafeAreaInset:   s.options.SafeAreaInset,
		ThreadID:        threadID,
	}, s.conversation, panels.NewFactory())

	model := &sessionModel{
		ConversationScreen: screen,
		sessionID:          sessionID,
		startTime:          time.Now(),
	}
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func threadFromCommand(command []string) (string, error) {
	if len(command) != 1 || strings.TrimSpace(command[0]) == "" {
		return "", fmt.Errorf("usage: ssh <host> <thread-id>")
	}
	return command[0], nil
}

// sessionModel wraps the screen to log the session lifetime
type sessionModel struct {
	*ui.ConversationScreen
	sessionID string
	startTime time.Time
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.ConversationScreen.Update(msg)
	if m.ConversationScreen.Quitting() {
		logging.Logger.Info("SSH session ended",
			"session_id", m.sessionID,
			"duration", time.Since(m.startTime).String())
	}
	return m, cmd
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return tea.Quit
}

func (e errorModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}

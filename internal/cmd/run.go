package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ui"
)

// RunCmd opens the conversation screen for one thread
type RunCmd struct {
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Preview         bool   `help:"Open the thread read-only (input hidden)"`
	SafeAreaInset   int    `help:"Rows reserved below the bottom bar (-1 = from settings)" default:"-1"`
	Thread          string `arg:"" help:"ID of the thread to open"`
	TrayRows        int    `help:"Height of the attachment tray in rows" default:"6"`
}

func (r *RunCmd) Run(cli *CLI) error {
	if _, err := cli.Container.ThreadService.GetThread(context.Background(), r.Thread); err != nil {
		return err
	}

	customKeys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	screen := ui.NewConversationScreen(ui.ScreenConfig{
		DevMode:         r.Dev,
		ErrorClearDelay: cli.errorClearDelay(r.ErrorClearDelay),
		Keys:            customKeys,
		Preview:         r.Preview,
		SafeAreaInset:   cli.safeAreaInset(r.SafeAreaInset),
		ThreadID:        r.Thread,
		TrayRows:        r.TrayRows,
	}, cli.Container.ConversationService, cli.Container.PanelFactory)

	// mouse cell motion delivers edge drags and tray drags
	program := tea.NewProgram(screen, tea.WithAltScreen(), tea.WithMouseCellMotion())

	logging.Logger.Info("Opening conversation", "thread", r.Thread, "preview", r.Preview)
	if _, err := program.Run(); err != nil {
		logging.Logger.Error("Conversation screen failed", "thread", r.Thread, "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Logger.Info("Conversation closed", "thread", r.Thread)
	return nil
}

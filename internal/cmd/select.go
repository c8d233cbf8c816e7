package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/services"
)

// SelectCmd prints the bottom view a thread resolves to
type SelectCmd struct {
	Format     string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Mode       string `help:"UI mode of the screen" enum:"normal,search,selection" default:"normal"`
	NotVisible bool   `help:"Evaluate as if the screen has not appeared yet"`
	Thread     string `arg:"" help:"ID of the thread"`
}

// Run executes the select command
func (s *SelectCmd) Run(cli *CLI) error {
	snapshot, _, err := cli.Container.ConversationService.Snapshot(context.Background(), s.Thread, services.ScreenState{
		HasAppeared: !s.NotVisible,
		UIMode:      s.Mode,
	})
	if err != nil {
		return err
	}

	kind := domain.SelectBottomView(snapshot)

	if s.Format == "json" {
		return writeJSON(map[string]any{
			"kind":     kind.String(),
			"snapshot": snapshot,
		})
	}

	fmt.Println(kind)
	return nil
}

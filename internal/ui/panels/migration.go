package panels

import (
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/theme"
)

// MigrationPanel blocks sending until a legacy group is migrated
type MigrationPanel struct {
	requestPanel
}

// NewMigrationPanel creates the panel for thread
func NewMigrationPanel(thread domain.Thread) *MigrationPanel {
	return &MigrationPanel{requestPanel{
		body: "This is a legacy group and can no longer be used. Create a new group to keep talking to its members.",
		buttons: []Button{
			{Action: domain.ActionLearnMore, Key: "l", Label: "Learn more"},
			{Action: domain.ActionDelete, Destructive: true, Key: "d", Label: "Delete"},
		},
		threadID:   thread.ID,
		title:      "This group needs to be upgraded",
		titleStyle: theme.PanelMigrationStyle,
	}}
}

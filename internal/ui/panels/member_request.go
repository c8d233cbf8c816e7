package panels

import (
	"fmt"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/theme"
)

// MemberRequestPanel is shown while the local user's request to join a group is pending
type MemberRequestPanel struct {
	requestPanel
}

// NewMemberRequestPanel creates the panel for thread
func NewMemberRequestPanel(thread domain.Thread) *MemberRequestPanel {
	return &MemberRequestPanel{requestPanel{
		body: "An admin of this group needs to approve your request before you can send messages.",
		buttons: []Button{
			{Action: domain.ActionCancelRequest, Destructive: true, Key: "c", Label: "Cancel request"},
		},
		threadID:   thread.ID,
		title:      fmt.Sprintf("Your request to join %s is pending", displayName(thread)),
		titleStyle: theme.PanelTitleStyle,
	}}
}

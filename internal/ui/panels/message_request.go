package panels

import (
	"fmt"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/theme"
)

var (
	acceptButton  = Button{Action: domain.ActionAccept, Key: "a", Label: "Accept"}
	blockButton   = Button{Action: domain.ActionBlock, Destructive: true, Key: "b", Label: "Block"}
	deleteButton  = Button{Action: domain.ActionDelete, Destructive: true, Key: "d", Label: "Delete"}
	unblockButton = Button{Action: domain.ActionUnblock, Key: "u", Label: "Unblock"}
)

// MessageRequestPanel asks the local user to accept, block or delete an incoming request
type MessageRequestPanel struct {
	requestPanel
	subtype domain.RequestSubtype
}

// NewMessageRequestPanel creates the panel for thread; its copy and buttons follow subtype
func NewMessageRequestPanel(thread domain.Thread, subtype domain.RequestSubtype) *MessageRequestPanel {
	name := displayName(thread)
	p := &MessageRequestPanel{
		requestPanel: requestPanel{threadID: thread.ID, titleStyle: theme.PanelTitleStyle},
		subtype:      subtype,
	}

	switch subtype {
	case domain.SubtypeBlockedContact:
		p.title = fmt.Sprintf("You blocked %s", name)
		p.body = "You won't receive messages or calls from them. Unblock to continue the conversation."
		p.buttons = []Button{deleteButton, unblockButton}
	case domain.SubtypeGroupInvite:
		p.title = fmt.Sprintf("You were invited to join %s", name)
		p.body = "Join this group? Members won't know you've seen their messages until you accept."
		p.buttons = []Button{blockButton, deleteButton, acceptButton}
	case domain.SubtypeBlockedGroupInvite:
		p.title = fmt.Sprintf("You blocked %s", name)
		p.body = "You won't receive messages from this group. Unblock to join it."
		p.buttons = []Button{deleteButton, unblockButton}
	default:
		p.title = fmt.Sprintf("%s wants to message you", name)
		p.body = "Let them message you and see when you've read their messages? They won't know you've seen this until you accept."
		p.buttons = []Button{blockButton, deleteButton, acceptButton}
	}

	if subtype.IsBlocked() {
		p.titleStyle = theme.PanelTitleStyle.Foreground(theme.ColorBlocked)
	}
	return p
}

// Subtype returns the request subtype this panel was built for
func (p *MessageRequestPanel) Subtype() domain.RequestSubtype {
	return p.subtype
}

package ports

import "github.com/renato0307/convobar/internal/domain"

// View is anything that can occupy the bottom bar region
type View interface {
	// PreferredHeight returns the rows the view needs at the given width
	PreferredHeight(width int) int
	Render(width int) string
}

// PanelDelegate receives user actions raised by a panel
type PanelDelegate interface {
	HandlePanelAction(threadID string, action domain.PanelAction)
}

// Panel is a request or migration view built fresh for each mount
type Panel interface {
	View
	SetDelegate(delegate PanelDelegate)
}

// PanelFactory constructs panels for the kinds that need a fresh instance
type PanelFactory interface {
	MakeMemberRequestPanel(thread domain.Thread) Panel
	MakeMessageRequestPanel(thread domain.Thread, subtype domain.RequestSubtype) Panel
	MakeMigrationPanel(thread domain.Thread) Panel
}

package panels

import (
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/ports"
)

// Factory builds a new panel on every call
type Factory struct{}

var _ ports.PanelFactory = Factory{}

// NewFactory creates a panel factory
func NewFactory() Factory {
	return Factory{}
}

func (Factory) MakeMemberRequestPanel(thread domain.Thread) ports.Panel {
	return NewMemberRequestPanel(thread)
}

func (Factory) MakeMessageRequestPanel(thread domain.Thread, subtype domain.RequestSubtype) ports.Panel {
	return NewMessageRequestPanel(thread, subtype)
}

func (Factory) MakeMigrationPanel(thread domain.Thread) ports.Panel {
	return NewMigrationPanel(thread)
}

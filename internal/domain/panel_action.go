package domain

// PanelAction is a user action raised by a request or migration panel
type PanelAction string

const (
	ActionAccept        PanelAction = "accept"
	ActionBlock         PanelAction = "block"
	ActionCancelRequest PanelAction = "cancel-request"
	ActionDelete        PanelAction = "delete"
	ActionLearnMore     PanelAction = "learn-more"
	ActionUnblock       PanelAction = "unblock"
)

package services

// CreateThreadParams holds the inputs for creating a thread
type CreateThreadParams struct {
	HasPendingMessageRequest bool
	ID                       string // Generated when empty
	IsBlocked                bool
	IsBlockedByMigration     bool
	IsGroup                  bool
	IsLocalUserPendingMember bool
	Name                     string
}

// ScreenState is what the conversation screen knows about itself
// when it asks for a new snapshot
type ScreenState struct {
	HasAppeared bool
	UIMode      string
}

// ThreadKind pairs a thread with the bottom view it resolves to
type ThreadKind struct {
	Kind     string
	ThreadID string
	Name     string
}

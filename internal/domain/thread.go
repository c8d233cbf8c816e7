package domain

import "time"

// Thread is a conversation as seen by the local user (domain entity)
type Thread struct {
	HasLeftGroup             bool
	HasPendingMessageRequest bool
	ID                       string
	IsBlocked                bool
	IsBlockedByMigration     bool
	IsGroup                  bool
	IsLocalUserPendingMember bool
	LastUpdated              time.Time
	Name                     string
}

// ThreadFlags carries the mutable booleans of a thread.
// Nil fields are left untouched by an update.
type ThreadFlags struct {
	HasLeftGroup             *bool
	HasPendingMessageRequest *bool
	IsBlocked                *bool
	IsBlockedByMigration     *bool
	IsLocalUserPendingMember *bool
}

// ResolveRequestSubtype maps a thread to the kind of message request it shows.
// Only meaningful while HasPendingMessageRequest is set.
func (t Thread) ResolveRequestSubtype() RequestSubtype {
	switch {
	case t.IsGroup && t.IsBlocked:
		return SubtypeBlockedGroupInvite
	case t.IsGroup:
		return SubtypeGroupInvite
	case t.IsBlocked:
		return SubtypeBlockedContact
	default:
		return SubtypeContact
	}
}

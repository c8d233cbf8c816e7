package storage

import (
	"github.com/renato0307/convobar/internal/domain"
)

// threadModelToDomain converts a ThreadModel (GORM) to domain.Thread
func threadModelToDomain(m ThreadModel) domain.Thread {
	return domain.Thread{
		HasLeftGroup:             m.HasLeftGroup,
		HasPendingMessageRequest: m.HasPendingMessageRequest,
		ID:                       m.ID,
		IsBlocked:                m.IsBlocked,
		IsBlockedByMigration:     m.IsBlockedByMigration,
		IsGroup:                  m.IsGroup,
		IsLocalUserPendingMember: m.IsLocalUserPendingMember,
		LastUpdated:              m.LastUpdated,
		Name:                     m.Name,
	}
}

// domainToThreadModel converts a domain.Thread to ThreadModel (GORM)
func domainToThreadModel(t domain.Thread) ThreadModel {
	return ThreadModel{
		HasLeftGroup:             t.HasLeftGroup,
		HasPendingMessageRequest: t.HasPendingMessageRequest,
		ID:                       t.ID,
		IsBlocked:                t.IsBlocked,
		IsBlockedByMigration:     t.IsBlockedByMigration,
		IsGroup:                  t.IsGroup,
		IsLocalUserPendingMember: t.IsLocalUserPendingMember,
		LastUpdated:              t.LastUpdated,
		Name:                     t.Name,
	}
}

// flagsToUpdates converts the set fields of domain.ThreadFlags to a column map
func flagsToUpdates(f domain.ThreadFlags) map[string]any {
	updates := map[string]any{}
	if f.HasLeftGroup != nil {
		updates["has_left_group"] = *f.HasLeftGroup
	}
	if f.HasPendingMessageRequest != nil {
		updates["has_pending_message_request"] = *f.HasPendingMessageRequest
	}
	if f.IsBlocked != nil {
		updates["is_blocked"] = *f.IsBlocked
	}
	if f.IsBlockedByMigration != nil {
		updates["is_blocked_by_migration"] = *f.IsBlockedByMigration
	}
	if f.IsLocalUserPendingMember != nil {
		updates["is_local_user_pending_member"] = *f.IsLocalUserPendingMember
	}
	return updates
}

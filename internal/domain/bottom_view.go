package domain

import (
	"fmt"

	"github.com/renato0307/convobar/internal/assert"
)

// Kind tags which bottom panel a conversation screen shows
type Kind int

const (
	KindNone Kind = iota
	KindInputToolbar
	KindMemberRequest
	KindMessageRequest
	KindSearch
	KindSelection
	KindBlockingMigration
)

// AllKinds lists every Kind. Tables keyed by Kind are checked against it.
var AllKinds = []Kind{
	KindNone,
	KindInputToolbar,
	KindMemberRequest,
	KindMessageRequest,
	KindSearch,
	KindSelection,
	KindBlockingMigration,
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInputToolbar:
		return "inputToolbar"
	case KindMemberRequest:
		return "memberRequest"
	case KindMessageRequest:
		return "messageRequest"
	case KindSearch:
		return "search"
	case KindSelection:
		return "selection"
	case KindBlockingMigration:
		return "blockingMigration"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// RequestSubtype describes what kind of message request is pending
type RequestSubtype string

const (
	SubtypeBlockedContact     RequestSubtype = "blocked-contact"
	SubtypeBlockedGroupInvite RequestSubtype = "blocked-group-invite"
	SubtypeContact            RequestSubtype = "contact"
	SubtypeGroupInvite        RequestSubtype = "group-invite"
)

// IsBlocked reports whether the requester is already blocked
func (s RequestSubtype) IsBlocked() bool {
	return s == SubtypeBlockedContact || s == SubtypeBlockedGroupInvite
}

// IsGroup reports whether the request is a group invite
func (s RequestSubtype) IsGroup() bool {
	return s == SubtypeGroupInvite || s == SubtypeBlockedGroupInvite
}

// BottomViewKind is the tagged variant selected for the bottom bar.
// Subtype is only set when Tag is KindMessageRequest.
type BottomViewKind struct {
	Subtype RequestSubtype
	Tag     Kind
}

var (
	BottomNone              = BottomViewKind{Tag: KindNone}
	BottomInputToolbar      = BottomViewKind{Tag: KindInputToolbar}
	BottomMemberRequest     = BottomViewKind{Tag: KindMemberRequest}
	BottomSearch            = BottomViewKind{Tag: KindSearch}
	BottomSelection         = BottomViewKind{Tag: KindSelection}
	BottomBlockingMigration = BottomViewKind{Tag: KindBlockingMigration}
)

// BottomMessageRequest builds the messageRequest variant for a subtype
func BottomMessageRequest(subtype RequestSubtype) BottomViewKind {
	return BottomViewKind{Tag: KindMessageRequest, Subtype: subtype}
}

// Equal compares two kinds, ignoring the subtype for tags that carry none
func (k BottomViewKind) Equal(other BottomViewKind) bool {
	if k.Tag != other.Tag {
		return false
	}
	if k.Tag == KindMessageRequest {
		return k.Subtype == other.Subtype
	}
	return true
}

func (k BottomViewKind) String() string {
	if k.Tag == KindMessageRequest {
		return fmt.Sprintf("%s(%s)", k.Tag, k.Subtype)
	}
	return k.Tag.String()
}

// UIMode is the interaction mode of the conversation screen
type UIMode string

const (
	ModeNormal    UIMode = "normal"
	ModeSearch    UIMode = "search"
	ModeSelection UIMode = "selection"
)

// ViewStateSnapshot holds the point-in-time facts needed to pick a bottom view.
// RequestSubtype must be resolved before selection when HasPendingMessageRequest is set.
type ViewStateSnapshot struct {
	HasAppeared              bool
	HasPendingMessageRequest bool
	IsBlockedByMigration     bool
	IsLocalUserPendingMember bool
	RequestSubtype           RequestSubtype
	UIMode                   UIMode
}

// SelectBottomView resolves the bottom view for a snapshot.
// Rules are evaluated in order and the first match wins.
func SelectBottomView(s ViewStateSnapshot) BottomViewKind {
	kind := selectBottomView(s)
	assert.That(s.HasAppeared || kind.Tag == KindNone, "bottom view selected before first appearance")
	return kind
}

func selectBottomView(s ViewStateSnapshot) BottomViewKind {
	switch {
	case !s.HasAppeared:
		return BottomNone
	case s.HasPendingMessageRequest:
		return BottomMessageRequest(s.RequestSubtype)
	case s.IsLocalUserPendingMember:
		return BottomMemberRequest
	case s.IsBlockedByMigration:
		return BottomBlockingMigration
	}

	switch s.UIMode {
	case ModeSearch:
		return BottomSearch
	case ModeSelection:
		return BottomSelection
	default:
		return BottomInputToolbar
	}
}

package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ports"
)

// maxConcurrentReads bounds the number of snapshot reads in flight when resolving many threads
const maxConcurrentReads = 4

// ConversationService builds view state snapshots and applies panel actions
type ConversationService struct {
	threadReader ports.ThreadReader
	threadWriter ports.ThreadWriter
}

// NewConversationService creates a new ConversationService
func NewConversationService(threadReader ports.ThreadReader, threadWriter ports.ThreadWriter) *ConversationService {
	return &ConversationService{
		threadReader: threadReader,
		threadWriter: threadWriter,
	}
}

// Snapshot reads the thread and builds the facts needed to select a bottom view.
// The request subtype is resolved here, before selection runs.
func (s *ConversationService) Snapshot(
	ctx context.Context,
	threadID string,
	screen ScreenState,
) (domain.ViewStateSnapshot, *domain.Thread, error) {
	thread, err := s.threadReader.Get(ctx, threadID)
	if err != nil {
		return domain.ViewStateSnapshot{}, nil, fmt.Errorf("failed to load thread: %w", err)
	}

	snapshot := domain.ViewStateSnapshot{
		HasAppeared:              screen.HasAppeared,
		HasPendingMessageRequest: thread.HasPendingMessageRequest,
		IsBlockedByMigration:     thread.IsBlockedByMigration,
		IsLocalUserPendingMember: thread.IsLocalUserPendingMember,
		UIMode:                   domain.UIMode(screen.UIMode),
	}

	if snapshot.HasPendingMessageRequest {
		subtype, err := s.threadReader.ReadRequestSubtype(ctx, threadID)
		if err != nil {
			return domain.ViewStateSnapshot{}, nil, err
		}
		snapshot.RequestSubtype = subtype
	}

	logging.Logger.Debug("Built view state snapshot",
		"thread", threadID,
		"appeared", snapshot.HasAppeared,
		"pending_request", snapshot.HasPendingMessageRequest,
		"subtype", snapshot.RequestSubtype,
		"mode", snapshot.UIMode)

	return snapshot, thread, nil
}

// ResolveKinds resolves the bottom view every thread would show on an appeared screen
// in normal mode. Reads run concurrently, each in its own transaction.
func (s *ConversationService) ResolveKinds(ctx context.Context, threads []domain.Thread) ([]ThreadKind, error) {
	results := make([]ThreadKind, len(threads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i, thread := range threads {
		g.Go(func() error {
			snapshot, _, err := s.Snapshot(ctx, thread.ID, ScreenState{HasAppeared: true, UIMode: string(domain.ModeNormal)})
			if err != nil {
				return fmt.Errorf("thread %s: %w", thread.ID, err)
			}
			results[i] = ThreadKind{
				Kind:     domain.SelectBottomView(snapshot).String(),
				Name:     thread.Name,
				ThreadID: thread.ID,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// HandleAction applies a panel action to the thread.
// Returns true when the stored state changed and the bottom view should be re-evaluated.
func (s *ConversationService) HandleAction(ctx context.Context, threadID string, action domain.PanelAction) (bool, error) {
	logging.Logger.Info("Handling panel action", "thread", threadID, "action", action)

	var err error
	switch action {
	case domain.ActionAccept:
		err = s.threadWriter.AcceptRequest(ctx, threadID)
	case domain.ActionBlock:
		blocked := true
		err = s.threadWriter.UpdateFlags(ctx, threadID, domain.ThreadFlags{IsBlocked: &blocked})
	case domain.ActionUnblock:
		blocked := false
		err = s.threadWriter.UpdateFlags(ctx, threadID, domain.ThreadFlags{IsBlocked: &blocked})
	case domain.ActionCancelRequest:
		pending := false
		err = s.threadWriter.UpdateFlags(ctx, threadID, domain.ThreadFlags{IsLocalUserPendingMember: &pending})
	case domain.ActionDelete:
		err = s.threadWriter.Delete(ctx, threadID)
	case domain.ActionLearnMore:
		return false, nil
	default:
		logging.Logger.Warn("Unknown panel action, ignoring", "action", action)
		return false, nil
	}

	if err != nil {
		logging.Logger.Error("Failed to apply panel action", "thread", threadID, "action", action, "error", err)
		return false, fmt.Errorf("failed to %s: %w", action, err)
	}
	return true, nil
}

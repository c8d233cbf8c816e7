package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ports"
)

// ThreadService manages the stored threads
type ThreadService struct {
	threadReader ports.ThreadReader
	threadWriter ports.ThreadWriter
}

// NewThreadService creates a new ThreadService
func NewThreadService(threadReader ports.ThreadReader, threadWriter ports.ThreadWriter) *ThreadService {
	return &ThreadService{
		threadReader: threadReader,
		threadWriter: threadWriter,
	}
}

// CreateThread stores a new thread and returns it
func (s *ThreadService) CreateThread(ctx context.Context, params CreateThreadParams) (*domain.Thread, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("thread name is required")
	}

	id := params.ID
	if id == "" {
		id = uuid.New().String()
	}

	thread := domain.Thread{
		HasPendingMessageRequest: params.HasPendingMessageRequest,
		ID:                       id,
		IsBlocked:                params.IsBlocked,
		IsBlockedByMigration:     params.IsBlockedByMigration,
		IsGroup:                  params.IsGroup,
		IsLocalUserPendingMember: params.IsLocalUserPendingMember,
		Name:                     name,
	}

	logging.Logger.Info("Creating thread", "id", id, "name", name, "group", params.IsGroup)
	if err := s.threadWriter.Add(ctx, thread); err != nil {
		return nil, fmt.Errorf("failed to add thread: %w", err)
	}

	return &thread, nil
}

// DeleteThread removes a thread
func (s *ThreadService) DeleteThread(ctx context.Context, id string) error {
	logging.Logger.Info("Deleting thread", "id", id)
	if err := s.threadWriter.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	return nil
}

// GetThread returns one thread
func (s *ThreadService) GetThread(ctx context.Context, id string) (*domain.Thread, error) {
	return s.threadReader.Get(ctx, id)
}

// ListThreads returns all threads
func (s *ThreadService) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	return s.threadReader.List(ctx)
}

// SetFlags updates the flags that are set in flags
func (s *ThreadService) SetFlags(ctx context.Context, id string, flags domain.ThreadFlags) error {
	logging.Logger.Debug("Updating thread flags", "id", id)
	if err := s.threadWriter.UpdateFlags(ctx, id, flags); err != nil {
		return fmt.Errorf("failed to update thread flags: %w", err)
	}
	return nil
}

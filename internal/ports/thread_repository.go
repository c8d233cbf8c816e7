package ports

import (
	"context"

	"github.com/renato0307/convobar/internal/domain"
)

// ThreadReader reads thread data
type ThreadReader interface {
	Get(ctx context.Context, id string) (*domain.Thread, error)
	List(ctx context.Context) ([]domain.Thread, error)

	// ReadRequestSubtype resolves the pending request subtype inside a read-only transaction
	ReadRequestSubtype(ctx context.Context, id string) (domain.RequestSubtype, error)
}

// ThreadWriter creates, deletes and updates threads
type ThreadWriter interface {
	AcceptRequest(ctx context.Context, id string) error
	Add(ctx context.Context, thread domain.Thread) error
	Delete(ctx context.Context, id string) error
	UpdateFlags(ctx context.Context, id string, flags domain.ThreadFlags) error
}

// ThreadRepository is the composite interface
type ThreadRepository interface {
	ThreadReader
	ThreadWriter
	Close() error
}

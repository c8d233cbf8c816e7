package cmd

import (
	adapterstorage "github.com/renato0307/convobar/internal/adapters/storage"
	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/ports"
	"github.com/renato0307/convobar/internal/services"
	"github.com/renato0307/convobar/internal/ui/panels"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ConversationService *services.ConversationService
	ThreadService       *services.ThreadService

	// Adapters
	PanelFactory ports.PanelFactory

	// Internal - for cleanup only
	threadRepo ports.ThreadRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	threadRepo, err := adapterstorage.NewSQLiteRepository(settings.ResolveDBPath())
	if err != nil {
		return nil, err
	}

	return &Container{
		ConversationService: services.NewConversationService(threadRepo, threadRepo),
		PanelFactory:        panels.NewFactory(),
		ThreadService:       services.NewThreadService(threadRepo, threadRepo),
		threadRepo:          threadRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.threadRepo != nil {
		return c.threadRepo.Close()
	}
	return nil
}

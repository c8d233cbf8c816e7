package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/services"
)

const shutdownTimeout = 30 * time.Second

// Options configure the screens served over SSH
type Options struct {
	AuthorizedKeysPath string
	ErrorClearDelay    time.Duration
	Keys               config.KeyBindingsConfig
	Preview            bool
	SafeAreaInset      int
	TrustedKeys        []string
}

// Server serves conversation screens over SSH
type Server struct {
	address      string
	conversation *services.ConversationService
	options      Options
	wishServer   *ssh.Server
}

// NewServer creates a new SSH server instance.
// The host key lives in sshDir and is generated on first start.
func NewServer(host, port, sshDir string, conversation *services.ConversationService, options Options) (*Server, error) {
	s := &Server{
		address:      net.JoinHostPort(host, port),
		conversation: conversation,
		options:      options,
	}

	if err := os.MkdirAll(sshDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	auth := keyAuthorizer{
		authorizedKeysPath: options.AuthorizedKeysPath,
		trustedKeys:        options.TrustedKeys,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(auth.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.address
}

// Start starts the SSH server and blocks until ctx is done or a shutdown signal arrives
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logging.Logger.Error("SSH server error", "error", err)
			return fmt.Errorf("SSH server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

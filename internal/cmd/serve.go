package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/server"
)

// ServeCmd serves conversation screens over SSH
type ServeCmd struct {
	AuthorizedKeys  string `help:"authorized_keys file used for public key auth" default:"~/.ssh/authorized_keys"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Address to bind to (overrides settings)" default:""`
	Port            string `help:"Port to listen on (overrides settings)" default:""`
	Preview         bool   `help:"Serve threads read-only (input hidden)"`
	SafeAreaInset   int    `help:"Rows reserved below the bottom bar (-1 = from settings)" default:"-1"`
}

// Run starts the SSH server and blocks until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	host, port := s.address(cli.settings)

	keysConfig, err := cli.keyBindings()
	if err != nil {
		return err
	}

	var trustedKeys []string
	if cli.settings != nil {
		trustedKeys = cli.settings.TrustedKeys
	}

	srv, err := server.NewServer(host, port, config.GetSSHDir(), cli.Container.ConversationService, server.Options{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		ErrorClearDelay:    cli.errorClearDelay(s.ErrorClearDelay),
		Keys:               keysConfig,
		Preview:            s.Preview,
		SafeAreaInset:      cli.safeAreaInset(s.SafeAreaInset),
		TrustedKeys:        trustedKeys,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Serving conversations over SSH",
		"address", srv.Address(),
		"host_key_dir", config.GetSSHDir())
	fmt.Printf("Listening on %s (ssh -p %s %s <thread-id>)\n", srv.Address(), port, host)

	return srv.Start(context.Background())
}

// address resolves host and port: flag > settings > default
func (s *ServeCmd) address(settings *config.Settings) (string, string) {
	host, port := s.Host, s.Port
	if host == "" && settings != nil {
		host = settings.SSHHost
	}
	if host == "" {
		host = config.DefaultSSHHost
	}
	if port == "" && settings != nil {
		port = settings.SSHPort
	}
	if port == "" {
		port = config.DefaultSSHPort
	}
	return host, port
}

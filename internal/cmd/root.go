package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/ui"
)

// CLI is the root of the kong command tree
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Open the conversation screen for a thread (default)" default:"withargs"`
	Select   SelectCmd   `cmd:"select" help:"Print the bottom view a thread resolves to"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve conversation screens over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`
	Threads  ThreadsCmd  `cmd:"threads" help:"Manage threads (list, view, add, del, set)"`

	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings hands the loaded settings.json to the CLI before parsing
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply runs once flags are parsed. Settings fill in flags that kept
// their default and have no CONVOBAR_* override, then logging starts and
// the container is built so gorm logs through it.
func (c *CLI) AfterApply() error {
	c.applySettings()

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	return nil
}

func (c *CLI) applySettings() {
	s := c.settings
	if s == nil {
		return
	}
	if c.MaxLogFiles == logging.DefaultMaxLogFiles && s.MaxLogFiles != nil && !envSet("CONVOBAR_MAX_LOG_FILES") {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if !c.Debug && s.Debug != nil && !envSet("CONVOBAR_DEBUG") {
		c.Debug = *s.Debug
	}
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// Close releases the container
func (c *CLI) Close() error {
	if c.Container == nil {
		return nil
	}
	return c.Container.Close()
}

// keyBindings returns the custom key bindings from settings, validated
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || len(c.settings.Keys) == 0 {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded", "count", len(c.settings.Keys))
	return c.settings.Keys, nil
}

// errorClearDelay applies the settings value when the flag kept its default
func (c *CLI) errorClearDelay(flag int) time.Duration {
	if flag == config.DefaultErrorClearDelay && c.settings != nil && c.settings.ErrorClearDelay != nil {
		flag = *c.settings.ErrorClearDelay
	}
	return time.Duration(flag) * time.Second
}

// safeAreaInset applies the settings value when the flag was not given
func (c *CLI) safeAreaInset(flag int) int {
	if flag >= 0 {
		return flag
	}
	return c.settings.ResolveBottomSafeAreaInset()
}

package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/convobar/internal/config"
	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
)

func TestServeCmd_Address(t *testing.T) {
	tests := []struct {
		name     string
		cmd      ServeCmd
		settings *config.Settings
		wantHost string
		wantPort string
	}{
		{"defaults", ServeCmd{}, nil, config.DefaultSSHHost, config.DefaultSSHPort},
		{"settings", ServeCmd{}, &config.Settings{SSHHost: "0.0.0.0", SSHPort: "2222"}, "0.0.0.0", "2222"},
		{"flags win", ServeCmd{Host: "h", Port: "1"}, &config.Settings{SSHHost: "0.0.0.0", SSHPort: "2222"}, "h", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port := tt.cmd.address(tt.settings)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}

func TestFlagSummary(t *testing.T) {
	assert.Equal(t, "-", flagSummary(domain.Thread{}))
	assert.Equal(t, "request,blocked", flagSummary(domain.Thread{HasPendingMessageRequest: true, IsBlocked: true}))
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, parseKeyValues(" up, k ,"))
	assert.Empty(t, parseKeyValues(" , "))
}

func TestCLI_ErrorClearDelayAndInset(t *testing.T) {
	delay, inset := 3, 2
	cli := &CLI{}
	cli.SetSettings(&config.Settings{ErrorClearDelay: &delay, BottomSafeAreaInset: &inset})

	assert.Equal(t, 3.0, cli.errorClearDelay(config.DefaultErrorClearDelay).Seconds())
	assert.Equal(t, 5.0, cli.errorClearDelay(5).Seconds())
	assert.Equal(t, 2, cli.safeAreaInset(-1))
	assert.Equal(t, 0, cli.safeAreaInset(0))
}

func TestCLI_ApplySettings(t *testing.T) {
	on, files := true, 5

	t.Run("settings fill defaults", func(t *testing.T) {
		t.Setenv("CONVOBAR_DEBUG", "")
		os.Unsetenv("CONVOBAR_DEBUG")
		t.Setenv("CONVOBAR_MAX_LOG_FILES", "")
		os.Unsetenv("CONVOBAR_MAX_LOG_FILES")

		cli := &CLI{MaxLogFiles: logging.DefaultMaxLogFiles}
		cli.SetSettings(&config.Settings{Debug: &on, MaxLogFiles: &files})
		cli.applySettings()

		assert.True(t, cli.Debug)
		assert.Equal(t, 5, cli.MaxLogFiles)
	})

	t.Run("env blocks settings", func(t *testing.T) {
		t.Setenv("CONVOBAR_DEBUG", "0")
		t.Setenv("CONVOBAR_MAX_LOG_FILES", "7")

		cli := &CLI{MaxLogFiles: logging.DefaultMaxLogFiles}
		cli.SetSettings(&config.Settings{Debug: &on, MaxLogFiles: &files})
		cli.applySettings()

		assert.False(t, cli.Debug)
		assert.Equal(t, logging.DefaultMaxLogFiles, cli.MaxLogFiles)
	})

	t.Run("flags win", func(t *testing.T) {
		cli := &CLI{MaxLogFiles: 3}
		cli.SetSettings(&config.Settings{MaxLogFiles: &files})
		cli.applySettings()

		assert.Equal(t, 3, cli.MaxLogFiles)
	})
}

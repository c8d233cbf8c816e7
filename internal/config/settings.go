package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultErrorClearDelay is the number of seconds an error stays on screen
	DefaultErrorClearDelay = 10
	// DefaultSSHHost is the address the SSH server binds to
	DefaultSSHHost = "localhost"
	// DefaultSSHPort is the port the SSH server listens on
	DefaultSSHPort = "23235"
)

// Settings represents $CONVOBAR_HOME/settings.json. Pointer fields
// distinguish "unset" from a zero value.
type Settings struct {
	BottomSafeAreaInset *int              `json:"bottom_safe_area_inset,omitempty"`
	DBPath              string            `json:"db_path,omitempty"`
	Debug               *bool             `json:"debug,omitempty"`
	ErrorClearDelay     *int              `json:"error_clear_delay,omitempty"`
	Keys                KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles         *int              `json:"max_log_files,omitempty"`
	SSHHost             string            `json:"ssh_host,omitempty"`
	SSHPort             string            `json:"ssh_port,omitempty"`
	TrustedKeys         StringArray       `json:"trusted_keys,omitempty"`
}

// StringArray is a JSON array of strings or one comma-separated string
type StringArray []string

func (sa *StringArray) UnmarshalJSON(data []byte) error {
	list, err := decodeList(data, splitCommas)
	if err != nil {
		return err
	}
	*sa = list
	return nil
}

func splitCommas(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadSettings reads $CONVOBAR_HOME/settings.json. A missing file yields
// empty Settings.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom reads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}
	return settings, nil
}

// SaveSettings writes settings to $CONVOBAR_HOME/settings.json through a
// temp file so a crash never leaves a truncated file behind
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// ResolveDBPath prefers db_path from settings over $CONVOBAR_HOME/threads.db
func (s *Settings) ResolveDBPath() string {
	if s != nil && s.DBPath != "" {
		return s.DBPath
	}
	return GetDBPath()
}

// ResolveBottomSafeAreaInset returns the configured bottom inset in rows, 0 if unset or negative
func (s *Settings) ResolveBottomSafeAreaInset() int {
	if s == nil || s.BottomSafeAreaInset == nil {
		return 0
	}
	return max(*s.BottomSafeAreaInset, 0)
}

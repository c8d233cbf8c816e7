package config

import (
	"os"
	"path/filepath"
)

// GetHome returns CONVOBAR_HOME or the ~/.convobar default
func GetHome() string {
	home := os.Getenv("CONVOBAR_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".convobar"
		}
		return filepath.Join(homeDir, ".convobar")
	}
	return ExpandPath(home)
}

// GetDBPath returns $CONVOBAR_HOME/threads.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "threads.db")
}

// GetSettingsPath returns $CONVOBAR_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $CONVOBAR_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

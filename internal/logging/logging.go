package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/convobar/internal/config"
)

// DefaultMaxLogFiles is the number of log files kept when nothing else is configured
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = discard()

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Initialize points Logger at a JSON log file when debugging is on.
// CONVOBAR_DEBUG, CONVOBAR_DEBUG_FILE and CONVOBAR_MAX_LOG_FILES fill in
// values the caller left at their defaults.
// Returns the log file path, or "" when logs are discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	debug = debug || os.Getenv("CONVOBAR_DEBUG") == "1"
	if debugFile == "" {
		debugFile = os.Getenv("CONVOBAR_DEBUG_FILE")
	}
	if maxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("CONVOBAR_MAX_LOG_FILES")); err == nil {
			maxLogFiles = n
		}
	}

	if !debug && debugFile == "" {
		Logger = discard()
		return "", nil
	}

	path := debugFile
	if path == "" {
		dir := LogDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if maxLogFiles > 0 {
			if err := rotateLogs(dir, maxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(dir, newLogName(time.Now()))
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("pid", os.Getpid())
	Logger.Info("Debug logging initialized", "log_file", path)

	// stdout belongs to the TUI
	fmt.Fprintf(os.Stderr, "Debug logs: %s\n", path)

	return path, nil
}

// LogDir returns $CONVOBAR_HOME/logs
func LogDir() string {
	return filepath.Join(config.GetHome(), "logs")
}

// newLogName sorts by start time and stays unique across concurrent runs
func newLogName(now time.Time) string {
	return fmt.Sprintf("%s-%s.log", now.UTC().Format("20060102T150405"), uuid.New().String()[:8])
}

// rotateLogs deletes the oldest .log files so that, with the file about to be
// created, at most maxLogFiles remain
func rotateLogs(dir string, maxLogFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	var files []logFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{modTime: info.ModTime(), path: filepath.Join(dir, e.Name())})
	}

	excess := len(files) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	sort.Slice(files, func(i, j int) bool { return files[i].modTime.Before(files[j].modTime) })
	for _, f := range files[:excess] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}
	return nil
}

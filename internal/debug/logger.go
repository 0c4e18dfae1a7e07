package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// logPath, when set through Enable, overrides the environment.
var logPath string

// Enable forces debug logging to path. An empty path clears the override
// and defers to the SEQUEL_DEBUG_LOG environment variable.
func Enable(path string) {
	logPath = path
}

// activeLogPath returns the debug log destination, or "" when logging is
// disabled.
func activeLogPath() string {
	if logPath != "" {
		return logPath
	}

	debugEnv := os.Getenv("SEQUEL_DEBUG_LOG")
	if debugEnv == "" || debugEnv == "0" || debugEnv == "false" {
		return ""
	}

	// If it's a path (contains / or \), use it as the log path
	if filepath.IsAbs(debugEnv) || filepath.Dir(debugEnv) != "." {
		return debugEnv
	}
	return filepath.Join(os.TempDir(), "sequel_debug.log")
}

// LogToFile writes a debug message to the debug log file
func LogToFile(message string) {
	path := activeLogPath()
	if path == "" {
		return
	}

	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
		defer func() { _ = f.Close() }()
		_, _ = f.WriteString(message)
	}
}

// LogToFilef writes a formatted debug message to the debug log file
func LogToFilef(format string, args ...interface{}) {
	LogToFile(fmt.Sprintf(format, args...))
}

// LogToFileWithTimestamp writes a debug message with timestamp prefix
func LogToFileWithTimestamp(message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	LogToFile(fmt.Sprintf("[%s] %s", timestamp, message))
}

// LogToFileWithTimestampf writes a formatted debug message with timestamp prefix
func LogToFileWithTimestampf(format string, args ...interface{}) {
	LogToFileWithTimestamp(fmt.Sprintf(format, args...))
}

package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"visualcrossing.app/internal/ports"
	"visualcrossing.app/pkg/errors"
)

// FileLoggerAdapter appends structured JSON log lines to a file.
// Used for the transport log when FORECAST_LOG_FILE_PATH is set.
type FileLoggerAdapter struct {
	filePath string
	now      func() time.Time
	mutex    sync.Mutex
}

// NewFileLoggerAdapter creates a new file logger adapter
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		now:      time.Now,
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	logEntry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		logEntry[field.Key] = field.Value
	}
	// Reserved keys win over fields of the same name
	logEntry["timestamp"] = f.now().UTC().Format(time.RFC3339Nano)
	logEntry["level"] = level
	logEntry["message"] = msg

	jsonData, err := json.Marshal(logEntry)
	if err != nil {
		jsonData, _ = json.Marshal(map[string]interface{}{
			"timestamp": f.now().UTC().Format(time.RFC3339Nano),
			"level":     "ERROR",
			"message":   "failed to marshal log entry",
			"error":     err.Error(),
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.writeRawLog(jsonData)
}

func (f *FileLoggerAdapter) writeRawLog(data []byte) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

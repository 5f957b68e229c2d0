// Package common provides shared utilities for the note portal.
package common

import (
	"os"

	"github.com/phuslu/log"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
	"github.com/ternarybob/arbor/writers"
)

// Logger wraps arbor.ILogger to provide a consistent interface.
type Logger struct {
	arbor.ILogger
}

// LoggingOptions configures logger construction.
type LoggingOptions struct {
	Level    string
	Outputs  []string // "console", "file"
	FilePath string
}

// discardWriter implements writers.IWriter and drops all output.
// Used by NewSilentLogger so tests do not dispatch to globally-registered writers.
type discardWriter struct{}

func (w *discardWriter) Write(p []byte) (int, error)           { return len(p), nil }
func (w *discardWriter) WithLevel(_ log.Level) writers.IWriter { return w }
func (w *discardWriter) GetFilePath() string                   { return "" }
func (w *discardWriter) Close() error                          { return nil }

// NewLogger creates a logger with console (stderr) and file writers plus a
// memory writer for diagnostics.
func NewLogger(level string) *Logger {
	return NewLoggerFromOptions(LoggingOptions{
		Level:   level,
		Outputs: []string{"console", "file"},
	})
}

// NewLoggerFromOptions creates a logger configured from LoggingOptions.
func NewLoggerFromOptions(opts LoggingOptions) *Logger {
	level := opts.Level
	if level == "" {
		level = "info"
	}

	l := arbor.NewLogger()

	outputs := opts.Outputs
	if len(outputs) == 0 {
		outputs = []string{"console", "file"}
	}

	for _, out := range outputs {
		switch out {
		case "console":
			l = l.WithConsoleWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeConsole,
				Writer:     os.Stderr,
				TimeFormat: "2006-01-02T15:04:05Z07:00",
			})
		case "file":
			filePath := opts.FilePath
			if filePath == "" {
				filePath = "logs/note-portal.log"
			}
			l = l.WithFileWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeFile,
				FileName:   filePath,
				MaxSize:    500 * 1024,
				MaxBackups: 10,
				TimeFormat: "2006-01-02T15:04:05Z07:00",
			})
		}
	}

	l = l.WithMemoryWriter(models.WriterConfiguration{
		Type: models.LogWriterTypeMemory,
	}).WithLevelFromString(level)

	return &Logger{ILogger: l}
}

// NewSilentLogger creates a logger that discards all output.
func NewSilentLogger() *Logger {
	l := arbor.NewLogger().WithWriters([]writers.IWriter{&discardWriter{}})
	return &Logger{ILogger: l}
}

// WithCorrelationId returns a Logger with a correlation ID set, used to trace
// a request through all layers.
func (l *Logger) WithCorrelationId(id string) *Logger {
	return &Logger{ILogger: l.ILogger.WithCorrelationId(id)}
}

// Package logger provides structured logging for lakesync using zap.
//
// There is no package-level logger: a Logger is constructed once at the CLI
// boundary and injected into every component that needs one.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/lakesync/internal/config"
)

// Logger wraps zap.SugaredLogger with context methods.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a new Logger from configuration.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	level := parseLevel(cfg.Level)
	encoder := buildEncoder(cfg.Format)
	writers := buildWriters(cfg.Output)

	core := zapcore.NewCore(encoder, writers, level)
	baseLogger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		SugaredLogger: baseLogger.Sugar(),
		base:          baseLogger,
	}, nil
}

// NewDefault creates a Logger with default settings (info level, text format, stderr).
func NewDefault() *Logger {
	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}
	logger, _ := New(cfg)
	return logger
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// buildEncoder creates the appropriate encoder based on format.
func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	// Text format with colored output
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// buildWriters creates the output writers based on configuration.
// stdout carries protocol messages, so logs default to stderr.
func buildWriters(output string) zapcore.WriteSyncer {
	switch output {
	case "stderr", "":
		return zapcore.AddSync(os.Stderr)
	case "stdout":
		return zapcore.AddSync(os.Stdout)
	default:
		// File output
		file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			// Fall back to stderr
			return zapcore.AddSync(os.Stderr)
		}
		// Write to both file and stderr
		return zapcore.NewMultiWriteSyncer(
			zapcore.AddSync(file),
			zapcore.AddSync(os.Stderr),
		)
	}
}

// WithStream returns a Logger with stream context.
func (l *Logger) WithStream(streamName string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("stream", streamName),
		base:          l.base,
	}
}

// WithTable returns a Logger with fully-qualified table context.
func (l *Logger) WithTable(tableName string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("table", tableName),
		base:          l.base,
	}
}

// WithQuery returns a Logger with statement context.
func (l *Logger) WithQuery(statement string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("query", statement),
		base:          l.base,
	}
}

// WithFields returns a Logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(args...),
		base:          l.base,
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

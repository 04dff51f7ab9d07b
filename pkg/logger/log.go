// Package logger wraps zap with the small structured-logging surface the
// collector uses. Context-aware variants stamp each entry with the collection
// cycle id, and errors carrying a pkg/errors stack trace are logged with it.
package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muhammadchandra19/crypto-collector/pkg/errors"
	"github.com/muhammadchandra19/crypto-collector/pkg/util"
)

// Interface is an interface that wraps the Logger methods.
//
//go:generate mockgen -source log.go -destination=mock/log_mock.go -package=logger_mock
type Interface interface {
	Debug(message string, fields ...Field)
	DebugContext(ctx context.Context, message string, fields ...Field)
	Error(err error, fields ...Field)
	ErrorContext(ctx context.Context, err error, fields ...Field)
	GetZap() *zap.Logger
	Info(message string, fields ...Field)
	InfoContext(ctx context.Context, message string, fields ...Field)
	Sync() error
	Warn(message string, fields ...Field)
	WarnContext(ctx context.Context, message string, fields ...Field)
	WithFields(fields ...Field) *Logger
}

// Logger is a thin wrapper around zap.Logger.
type Logger struct {
	logger *zap.Logger
}

// Field holds one key-value pair to attach to a log entry.
type Field struct {
	Key   string
	Value any
}

// NewField returns Field with given key and value.
func NewField(key string, value any) Field {
	return Field{key, value}
}

// Level represents the minimum severity that gets written.
type Level string

// Supported log levels. Anything else falls back to info, matching zap's
// production default.
const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

const messageKey = "message"

func (level Level) zapLevel() zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options holds configuration options for the logger.
type Options struct {
	level           Level
	outputPaths     []string
	timeKey         string
	levelKey        string
	callerTraceSkip int
}

// WithLoggingLevel sets the minimum level written; info and above when unset.
func WithLoggingLevel(level Level) Options {
	return Options{level: level}
}

// WithOutputPaths sets where log entries go. "stdout" and "stderr" are
// interpreted as the process streams, anything else as a file path.
func WithOutputPaths(paths []string) Options {
	return Options{outputPaths: paths}
}

// WithTimeKey overrides the JSON key holding the entry timestamp.
func WithTimeKey(key string) Options {
	return Options{timeKey: key}
}

// WithLevelKey overrides the JSON key holding the entry severity.
func WithLevelKey(key string) Options {
	return Options{levelKey: key}
}

// WithCallerTraceSkip skips the given number of frames when resolving the
// caller, for wrappers that log on behalf of their caller.
func WithCallerTraceSkip(skip int) Options {
	return Options{callerTraceSkip: skip}
}

// NewLogger creates a Logger on top of zap's production config, applying the
// given options in order.
func NewLogger(opts ...Options) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.MessageKey = messageKey

	var buildOptions []zap.Option
	for _, opt := range opts {
		if opt.level != "" {
			cfg.Level = zap.NewAtomicLevelAt(opt.level.zapLevel())
		}
		if opt.outputPaths != nil {
			cfg.OutputPaths = opt.outputPaths
		}
		if opt.timeKey != "" {
			cfg.EncoderConfig.TimeKey = opt.timeKey
		}
		if opt.levelKey != "" {
			cfg.EncoderConfig.LevelKey = opt.levelKey
		}
		if opt.callerTraceSkip > 0 {
			buildOptions = append(buildOptions, zap.AddCallerSkip(opt.callerTraceSkip))
		}
	}

	logger, err := cfg.Build(buildOptions...)
	return &Logger{logger: logger}, err
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.logger.Sync()
}

// GetZap exposes the underlying zap.Logger for libraries that want one.
func (l *Logger) GetZap() *zap.Logger {
	return l.logger
}

// Debug writes a debug entry.
func (l *Logger) Debug(message string, fields ...Field) {
	l.logger.Debug(message, convertFields(fields...)...)
}

// DebugContext writes a debug entry stamped with the cycle id from ctx.
func (l *Logger) DebugContext(ctx context.Context, message string, fields ...Field) {
	l.Debug(message, appendCycleID(ctx, fields)...)
}

// Info writes an info entry.
func (l *Logger) Info(message string, fields ...Field) {
	l.logger.Info(message, convertFields(fields...)...)
}

// InfoContext writes an info entry stamped with the cycle id from ctx.
func (l *Logger) InfoContext(ctx context.Context, message string, fields ...Field) {
	l.Info(message, appendCycleID(ctx, fields)...)
}

// Warn writes a warning entry.
func (l *Logger) Warn(message string, fields ...Field) {
	l.logger.Warn(message, convertFields(fields...)...)
}

// WarnContext writes a warning entry stamped with the cycle id from ctx.
func (l *Logger) WarnContext(ctx context.Context, message string, fields ...Field) {
	l.Warn(message, appendCycleID(ctx, fields)...)
}

// Error writes an error entry. When err carries a pkg/errors stack trace the
// entry's stack field is replaced with it, pointing at where the error was
// first wrapped rather than at this call.
func (l *Logger) Error(err error, fields ...Field) {
	stacktrace := ""
	if traced, ok := err.(errors.StackTracer); ok {
		stacktrace = strings.TrimSpace(fmt.Sprintf("%+v", traced.StackTrace()))
	}

	if ce := l.logger.Check(zapcore.ErrorLevel, err.Error()); ce != nil {
		if stacktrace != "" {
			ce.Stack = stacktrace
		}
		ce.Write(convertFields(fields...)...)
	}
}

// ErrorContext writes an error entry stamped with the cycle id from ctx.
func (l *Logger) ErrorContext(ctx context.Context, err error, fields ...Field) {
	l.Error(err, appendCycleID(ctx, fields)...)
}

// WithFields returns a child logger that attaches fields to every entry.
func (l *Logger) WithFields(fields ...Field) *Logger {
	return &Logger{logger: l.logger.With(convertFields(fields...)...)}
}

func convertFields(fields ...Field) []zapcore.Field {
	zapFields := make([]zapcore.Field, 0, len(fields))
	for _, field := range fields {
		zapFields = append(zapFields, zap.Any(field.Key, field.Value))
	}
	return zapFields
}

func appendCycleID(ctx context.Context, fields []Field) []Field {
	id := util.GetCycleID(ctx)
	if id == "" {
		return fields
	}
	return append(fields, NewField("cycle_id", id))
}

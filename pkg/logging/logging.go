package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog and satisfies the orchestrator backend's Logger
// interface, so one logger serves both this application and the task hub.
type Logger struct {
	logger *slog.Logger
	opts   *slog.HandlerOptions
	out    io.Writer
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(l *Logger) {
		l.opts.Level = level
	}
}

// WithOutput redirects log output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// New builds a JSON slog logger and installs it as the process default.
func New(options ...Option) Logger {
	l := Logger{
		opts: &slog.HandlerOptions{Level: slog.LevelInfo},
		out:  os.Stdout,
	}
	for _, opt := range options {
		opt(&l)
	}

	l.logger = slog.New(slog.NewJSONHandler(l.out, l.opts))
	slog.SetDefault(l.logger)
	return l
}

// Debug logs a message at level Debug.
func (l Logger) Debug(v ...any) {
	l.logger.Debug(fmt.Sprint(v...))
}

// Debugf logs a formatted message at level Debug.
func (l Logger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

// DebugS logs a structured message at level Debug.
func (l Logger) DebugS(msg string, v ...any) {
	l.logger.Debug(msg, v...)
}

// Info logs a message at level Info.
func (l Logger) Info(v ...any) {
	l.logger.Info(fmt.Sprint(v...))
}

// Infof logs a formatted message at level Info.
func (l Logger) Infof(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// InfoS logs a structured message at level Info.
func (l Logger) InfoS(msg string, v ...any) {
	l.logger.Info(msg, v...)
}

// Warn logs a message at level Warn.
func (l Logger) Warn(v ...any) {
	l.logger.Warn(fmt.Sprint(v...))
}

// Warnf logs a formatted message at level Warn.
func (l Logger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

// WarnS logs a structured message at level Warn.
func (l Logger) WarnS(msg string, v ...any) {
	l.logger.Warn(msg, v...)
}

// Error logs a message at level Error.
func (l Logger) Error(v ...any) {
	l.logger.Error(fmt.Sprint(v...))
}

// Errorf logs a formatted message at level Error.
func (l Logger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// ErrorS logs a structured message at level Error.
func (l Logger) ErrorS(msg string, v ...any) {
	l.logger.Error(msg, v...)
}

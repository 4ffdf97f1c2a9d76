package log

import (
	"io"
	"os"

	"dirtree/internal/errors"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

var logger = NewLogger(WithLevel("warn"))

// Field is a structured key/value attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures the underlying logrus logger.
type Option func(*logrus.Logger)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
	}
}

// WithLevel sets the minimum level by name. Unknown names are ignored.
func WithLevel(level string) Option {
	return func(l *logrus.Logger) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(lvl)
		}
	}
}

// Logger is a leveled, structured logger writing to stderr by default.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a text logger at info level on stderr, then applies opts.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	for _, opt := range opts {
		opt(base)
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

// WithError returns a child logger describing err.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}
	var pathErr *errors.PathError
	if errors.As(err, &pathErr) && pathErr.Path() != "" {
		fields = append(fields, F("path", pathErr.Path()))
	}
	return l.With(fields...)
}

// SetLevel changes the minimum level by name. Unknown names are ignored.
func (l *Logger) SetLevel(level string) {
	WithLevel(level)(l.entry.Logger)
}

// IsDebug reports whether debug lines are emitted.
func (l *Logger) IsDebug() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) { l.entry.Debug(msg) }

// Info logs msg at info level.
func (l *Logger) Info(msg string) { l.entry.Info(msg) }

// Warn logs msg at warning level.
func (l *Logger) Warn(msg string) { l.entry.Warn(msg) }

// Error logs msg at error level.
func (l *Logger) Error(msg string) { l.entry.Error(msg) }

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Default returns the package logger.
func Default() *Logger {
	return logger
}

// SetDebug toggles debug output on the package logger.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel("debug")
		return
	}
	logger.SetLevel("warn")
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger annotated with err.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err at error level with a message.
func LogError(err error, msg string) {
	logger.WithError(err).Error(msg)
}

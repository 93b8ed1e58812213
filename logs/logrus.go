package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to create
// a Logger backed by logrus
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries written
	Level logrus.Level

	// Output is where entries are written to. It defaults
	// to os.Stderr
	Output io.Writer

	// JSON selects the JSON formatter instead of the text one
	JSON bool
}

type logrusFields logrus.Fields

// Add implementation of Fields for logrusFields
func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

type logrusLogger struct {
	logger *logrus.Logger
}

// NewLogrus creates a new Logger that writes its entries
// using logrus
func NewLogrus(props LogrusLoggerProperties) Logger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return &logrusLogger{logger: logger}
}

// ParseLevel turns the name of a level into a logrus.Level
func ParseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(level)
}

func (l *logrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := logrusFields{}
	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add("trace_id", traceID)
	}

	if loggable != nil {
		loggable.Log(fields)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger
func (l *logrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

// Info implementation of Logger
func (l *logrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

// Warn implementation of Logger
func (l *logrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

// Error implementation of Logger
func (l *logrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}

package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to create
// a logger backed by logrus
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where entries are written. It defaults to os.Stderr
	Output io.Writer

	// Formatter formats the entries. It defaults to a text formatter
	Formatter logrus.Formatter
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

// LogrusLogger is the implementation of Logger on top of logrus
type LogrusLogger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// NewLogrus creates a new Logger backed by logrus
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Formatter != nil {
		logger.SetFormatter(props.Formatter)
	}

	return &LogrusLogger{logger: logger, fields: logrus.Fields{}}
}

func (l *LogrusLogger) entry(ctx context.Context, loggables []Loggable) *logrus.Entry {
	fields := make(logrusFields, len(l.fields)+len(loggables)+1)
	for key, value := range l.fields {
		fields[key] = value
	}

	for _, loggable := range loggables {
		if loggable != nil {
			loggable.Log(fields)
		}
	}

	if traceID := GetTraceID(ctx); traceID != 0 {
		fields["trace_id"] = traceID
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger for LogrusLogger
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.DebugLevel) {
		l.entry(ctx, loggables).Debug(msg)
	}
}

// Info implementation of Logger for LogrusLogger
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.InfoLevel) {
		l.entry(ctx, loggables).Info(msg)
	}
}

// Warn implementation of Logger for LogrusLogger
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.WarnLevel) {
		l.entry(ctx, loggables).Warn(msg)
	}
}

// Error implementation of Logger for LogrusLogger
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.ErrorLevel) {
		l.entry(ctx, loggables).Error(msg)
	}
}

// ForClass implementation of Logger for LogrusLogger
func (l *LogrusLogger) ForClass(pkg, class string) Logger {
	fields := make(logrus.Fields, len(l.fields)+2)
	for key, value := range l.fields {
		fields[key] = value
	}

	fields["package"] = pkg
	fields["class"] = class

	return &LogrusLogger{logger: l.logger, fields: fields}
}

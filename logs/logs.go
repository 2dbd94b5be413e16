package logs

import "context"

// Fields accumulates the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to describe
// themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a set of fields that can be passed directly to
// a Logger
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for key, value := range f {
		fields.Add(key, value)
	}
}

// Logger is the logging interface used across the project. All
// the methods take a context so that request scoped values, like
// the trace id, end up in the log entry
type Logger interface {
	// Debug logs a message with debug level
	Debug(ctx context.Context, msg string, loggables ...Loggable)

	// Info logs a message with info level
	Info(ctx context.Context, msg string, loggables ...Loggable)

	// Warn logs a message with warn level
	Warn(ctx context.Context, msg string, loggables ...Loggable)

	// Error logs a message with error level
	Error(ctx context.Context, msg string, loggables ...Loggable)

	// ForClass returns a logger that adds the package and
	// class to every entry
	ForClass(pkg, class string) Logger
}

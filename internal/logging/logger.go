// Package logging decouples the converter from the concrete logging library.
// Components receive a Logger by injection; the production implementation is
// backed by logrus and tests use MockLogger.
package logging

// Logger is the structured logger used across the converter.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger carrying err as the error field.
	WithError(err error) Logger

	// WithField returns a logger carrying a single extra field.
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger carrying the given fields.
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

package logger

import "context"

// Logger is the structured logging interface used across the service.
// Every call takes a context so request-scoped metadata can flow into
// log entries.
type Logger interface {
	// Debug logs fine-grained diagnostic detail
	Debug(ctx context.Context, msg string, fields map[string]interface{})

	// Info logs routine operational events
	Info(ctx context.Context, msg string, fields map[string]interface{})

	// Warn logs recoverable or suspicious conditions
	Warn(ctx context.Context, msg string, fields map[string]interface{})

	// Error logs failures that need attention
	Error(ctx context.Context, msg string, fields map[string]interface{})

	// WithField returns a logger that attaches the field to every entry
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger that attaches all fields to every entry
	WithFields(fields map[string]interface{}) Logger
}

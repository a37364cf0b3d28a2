package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldConversionID tags every line logged during one CLI invocation.
	FieldConversionID = "conversion_id"
	// FieldDocumentID is the Google Docs document being read or written.
	FieldDocumentID = "document_id"
)

type contextKey struct{}

// WithConversionID returns a context carrying id for WithContext to pick up.
func WithConversionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// ConversionID returns the id stored by WithConversionID.
func ConversionID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns logger augmented with the fields carried by ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := ConversionID(ctx); ok {
		return logger.With(slog.String(FieldConversionID, id))
	}
	return logger
}

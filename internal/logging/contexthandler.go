// Package logging wires slog handlers used across planfit binaries.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKey string

const attrsKey contextKey = "planfitSlogAttrs"

// ContextHandler is a slog.Handler that enriches every record with the
// attributes stored in the context via WithAttrs.
type ContextHandler struct {
	inner slog.Handler
}

// NewContextHandler wraps h so that context-scoped attributes reach its output.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{inner: h}
}

// Enabled delegates to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle appends the context-scoped attributes before delegating.
func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}
	if err := h.inner.Handle(ctx, record); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

// WithAttrs wraps the result of calling WithAttrs on the inner handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup wraps the result of calling WithGroup on the inner handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}

// WithAttrs stores attributes in the context so that ContextHandler attaches
// them to every record logged with that context.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(attrsKey).([]slog.Attr); ok {
		return context.WithValue(ctx, attrsKey, append(existing, attrs...))
	}
	return context.WithValue(ctx, attrsKey, attrs)
}

// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestIDKey
	traceKey
)

// Trace collects identifiers learned deeper in the handler chain, so that
// middleware wrapping it can still report them once the request returns.
type Trace struct {
	mu     sync.Mutex
	userID uuid.UUID
}

// WithTrace attaches a new Trace to ctx.
func WithTrace(ctx context.Context) (context.Context, *Trace) {
	tr := &Trace{}
	return context.WithValue(ctx, traceKey, tr), tr
}

// UserID returns the owner recorded by a WithUserID call below the trace.
func (t *Trace) UserID() (uuid.UUID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.userID, t.userID != uuid.Nil
}

// WithUserID stores the authenticated user ID in the context and records it
// on the enclosing Trace, if any.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if tr, ok := ctx.Value(traceKey).(*Trace); ok {
		tr.mu.Lock()
		tr.userID = id
		tr.mu.Unlock()
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LogAttrs returns the request_id and user_id attributes known to ctx,
// including a user id recorded on its Trace.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	userID, ok := UserIDFromCtx(ctx)
	if !ok {
		if tr, found := ctx.Value(traceKey).(*Trace); found {
			userID, ok = tr.UserID()
		}
	}
	if ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	return attrs
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

type ownerVerifier interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth puts the token owner's id into the request context. Every API route
// is per-owner, so a request without a usable Bearer token is answered with
// 401 before it reaches a handler.
func Auth(verifier ownerVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			ownerID, err := verifier.ValidateToken(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()),
				)
				unauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), ownerID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="lifeflow"`)
	writeError(w, http.StatusUnauthorized, "Unauthorized", message)
}

// bearerToken returns the credentials of a "Bearer <token>" header, matching
// the scheme case-insensitively.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

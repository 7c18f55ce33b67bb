package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/lifeflow-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 StorageError response. The
// panicking request's transaction has already been rolled back by the time
// the panic unwinds to here. If the handler had started writing, the
// response is left as is and only the log line is produced.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				attrs := append([]slog.Attr{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				}, ctxutil.LogAttrs(r.Context())...)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !sw.wroteHeader {
					writeError(sw, http.StatusInternalServerError, "StorageError", "internal server error")
				}
			}()
			next.ServeHTTP(sw, r)
		})
	}
}

package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recovery turns a handler panic into a 500 response instead of killing the
// console; a crashed request must not take the pollers down with it.
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic in request handler",
						zap.Any("panic", rec),
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("stack", string(debug.Stack())),
					)

					reject(w, r, http.StatusInternalServerError, codeInternal, messageInternal)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Timeout middleware adds a timeout to requests.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})

			go func() {
				next.ServeHTTP(w, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				return
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					reject(w, r, http.StatusRequestTimeout, codeTimeout, messageTimeout)
				}
			}
		})
	}
}

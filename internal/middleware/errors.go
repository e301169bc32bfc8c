package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Error codes for responses the chain produces itself, before a request
// reaches the console handlers.
const (
	codeInternal  = "INTERNAL_ERROR"
	codeThrottled = "RATE_LIMIT_EXCEEDED"
	codeTimeout   = "REQUEST_TIMEOUT"
)

const (
	messageInternal  = "The console hit an unexpected error"
	messageThrottled = "Too many requests, slow down"
	messageTimeout   = "The request took too long"
)

// reject answers from inside the chain with the same error envelope the
// handlers use, so clients parse one shape everywhere.
func reject(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
	render.JSON(w, r, map[string]interface{}{
		"error":     code,
		"message":   message,
		"timestamp": time.Now(),
	})
}

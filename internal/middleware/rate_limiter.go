package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	clientSweepInterval = time.Minute
	clientIdleTTL       = 3 * time.Minute
)

// RateLimiter throttles per client IP so one misbehaving dashboard cannot
// starve the others.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rate    rate.Limit
	burst   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		rate:    r,
		burst:   b,
	}

	go rl.sweepIdleClients()

	return rl
}

// sweepIdleClients drops limiters for clients that went quiet, keeping the
// map bounded over long uptimes.
func (rl *RateLimiter) sweepIdleClients() {
	for {
		time.Sleep(clientSweepInterval)

		rl.mu.Lock()
		for ip, c := range rl.clients {
			if time.Since(c.lastSeen) > clientIdleTTL {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

// Middleware returns the throttling middleware.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.limiterFor(clientIP(r)).Allow() {
				reject(w, r, http.StatusTooManyRequests, codeThrottled, messageThrottled)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys limiters by address only, so the same client is not handed a
// fresh bucket on every new source port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

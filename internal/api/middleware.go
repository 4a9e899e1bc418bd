package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/sportspeed/internal/api/respond"
)

// --------------------------------------------------------------------------
// Request timing middleware
// --------------------------------------------------------------------------

// TimingMiddleware adds the X-Process-Time header. The header is set when the
// handler writes its status, since headers written after that are dropped.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&timingWriter{ResponseWriter: w, start: time.Now()}, r)
	})
}

type timingWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (tw *timingWriter) WriteHeader(status int) {
	if !tw.wroteHeader {
		tw.wroteHeader = true
		elapsed := time.Since(tw.start)
		tw.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	}
	tw.ResponseWriter.WriteHeader(status)
}

func (tw *timingWriter) Write(b []byte) (int, error) {
	if !tw.wroteHeader {
		tw.WriteHeader(http.StatusOK)
	}
	return tw.ResponseWriter.Write(b)
}

func (tw *timingWriter) Unwrap() http.ResponseWriter { return tw.ResponseWriter }

// --------------------------------------------------------------------------
// Rate limiting middleware (IP-based token bucket)
// --------------------------------------------------------------------------

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the window are full again, so Sweep can drop them without changing
// behavior.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*ipEntry
	rate       rate.Limit
	burst      int
	idle       time.Duration
	retryAfter string
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows requestsPerWindow per IP, with a burst of half that.
func NewRateLimiter(requestsPerWindow int, window time.Duration) *RateLimiter {
	rps := float64(requestsPerWindow) / window.Seconds()
	return &RateLimiter{
		limiters:   make(map[string]*ipEntry),
		rate:       rate.Limit(rps),
		burst:      max(requestsPerWindow/2, 1),
		idle:       window,
		retryAfter: strconv.Itoa(int(window.Seconds())),
	}
}

func (l *RateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.limiters[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Sweep drops buckets not seen since now minus the window and returns how
// many were removed. Called from the maintenance ticker.
func (l *RateLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for ip, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.limiters, ip)
			n++
		}
	}
	return n
}

// Len is the number of tracked IPs.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware rate-limits by client IP.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)
		if ip == "" {
			ip = r.RemoteAddr
		}

		if !l.allow(ip, time.Now()) {
			w.Header().Set("Retry-After", l.retryAfter)
			respond.WriteError(w, http.StatusTooManyRequests, respond.CodeRateLimited, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware returns middleware backed by a private RateLimiter.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	return NewRateLimiter(requestsPerWindow, window).Middleware
}

package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"newsdesk/internal/handler/http/respond"
)

// Timeout returns middleware that bounds handler execution time. When
// the deadline passes before the handler writes a response, the client
// gets a 504 and the handler's context is canceled.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})

			go func() {
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				tw.markTimedOut()
				respond.JSON(w, http.StatusGatewayTimeout,
					map[string]string{"error": "request timed out"})
			}
		})
	}
}

// timeoutWriter suppresses handler writes after the timeout response
// has been sent, so the two goroutines never interleave output.
type timeoutWriter struct {
	mu       sync.Mutex
	w        http.ResponseWriter
	timedOut bool
}

func (tw *timeoutWriter) markTimedOut() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.timedOut = true
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.w.Header()
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return
	}
	tw.w.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return len(b), nil
	}
	return tw.w.Write(b)
}

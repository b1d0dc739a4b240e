package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RequestTimeout bounds how long a request may hold the document file
const RequestTimeout = 10 * time.Second

// TimeoutMiddleware cancels requests that outlive the given timeout
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(w, r)
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					zap.S().Warnw("request timeout",
						"path", r.URL.Path,
						"method", r.Method,
						"timeout", timeout.String(),
					)
					w.WriteHeader(http.StatusRequestTimeout)
					w.Write([]byte(`{"erro": "tempo de resposta excedido"}`))
				}
			}
		})
	}
}

package middleware

import (
	"io"
	"net/http"
)

// LimitRequestBody caps what a handler can read from the request body at
// maxBytes; reads past it fail with *http.MaxBytesError. After the handler
// returns, the unread rest of the body (up to the cap) is drained and the
// body closed.
func LimitRequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := http.MaxBytesReader(w, r.Body, maxBytes)
			r.Body = body
			next.ServeHTTP(w, r)
			_, _ = io.Copy(io.Discard, body)
			_ = body.Close()
		})
	}
}

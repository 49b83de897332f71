// Package middleware holds the chi-compatible HTTP middleware the REST
// server wires into its stack alongside chi's own request-ID/recoverer
// middleware.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger is a request-logging middleware: it wraps the ResponseWriter to
// capture the final status code and byte count, then logs one line per
// request with the chi request ID, method, path, status, size, and
// duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		reqID := chimiddleware.GetReqID(r.Context())
		log.Printf("%s %s %s -> %d %dB in %s [%s]",
			r.Method, r.URL.Path, r.RemoteAddr, ww.Status(), ww.BytesWritten(), time.Since(start), reqID)
	})
}

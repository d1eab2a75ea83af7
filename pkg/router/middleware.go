package router

import (
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/mediaonstake/agencysite/pkg/logging"
)

// Recovery turns handler panics into 500 responses and logs the stack.
func Recovery(log logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic serving request",
						logging.Any("panic", rec),
						logging.String("path", r.URL.Path),
						logging.String("stack", string(debug.Stack())),
					)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SecureHeadersConfig controls the headers set by SecureHeaders.
type SecureHeadersConfig struct {
	ContentSecurityPolicy string
	ReferrerPolicy        string
	HSTSMaxAge            int
}

// DefaultSecureHeadersConfig allows the inline styles of the page, the
// live socket, Google Maps and the portfolio previews in frames.
func DefaultSecureHeadersConfig() SecureHeadersConfig {
	return SecureHeadersConfig{
		ContentSecurityPolicy: "default-src 'self'; " +
			"script-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https:; " +
			"connect-src 'self' ws: wss:; " +
			"frame-src https:; " +
			"frame-ancestors 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'",
		ReferrerPolicy: "strict-origin-when-cross-origin",
		HSTSMaxAge:     31536000,
	}
}

// SecureHeaders sets the browser hardening headers.
func SecureHeaders(cfg SecureHeadersConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if cfg.HSTSMaxAge > 0 && (r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https") {
				h.Set("Strict-Transport-Security", "max-age="+strconv.Itoa(cfg.HSTSMaxAge)+"; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

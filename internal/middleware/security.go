// internal/middleware/security.go
//
// Security-header middleware.
//
// Injects industry-standard headers on every response:
//
//   • Strict-Transport-Security  –  forces HTTPS (2 years + preload)
//   • Content-Security-Policy   –  sane default self-only policy
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  drops path/query from Referer
//   • Permissions-Policy        –  disables powerful features by default
//
// Notes
// -----
// • Headers are seeded *before* next.ServeHTTP — net/http flushes the header
//   map on the first write, so anything added afterwards is lost.  Values
//   already present are never overwritten, and inner routes may still Set a
//   replacement (the Swagger UI ships its own, looser CSP this way).
// • If Gamedex is running behind a TLS-terminating proxy, HSTS is still
//   useful because browsers see the public domain as HTTPS.
// • Oxford commas, two spaces after periods.

package middleware

import "net/http"

// Security sets security headers for every response.
func Security(next http.Handler) http.Handler {
	const (
		hsts = "max-age=63072000; includeSubDomains; preload"
		csp  = "default-src 'self'; img-src 'self' data:; object-src 'none'; " +
			"base-uri 'self'; frame-ancestors 'none'"
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "strict-origin-when-cross-origin"
		perm  = "geolocation=(), microphone=(), camera=()"
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		setIfEmpty := func(key, val string) {
			if h.Get(key) == "" {
				h.Set(key, val)
			}
		}

		setIfEmpty("Strict-Transport-Security", hsts)
		setIfEmpty("Content-Security-Policy", csp)
		setIfEmpty("X-Frame-Options", xfo)
		setIfEmpty("X-Content-Type-Options", nosn)
		setIfEmpty("Referrer-Policy", refer)
		setIfEmpty("Permissions-Policy", perm)

		next.ServeHTTP(w, r)
	})
}

// internal/middleware/security_test.go
//
// Unit-tests for the Security header middleware.
//
// Run: go test ./internal/middleware -v

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurity_SetsDefaultHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Security(okHandler()).ServeHTTP(rr, req)

	want := map[string]string{
		"Strict-Transport-Security": "max-age=63072000; includeSubDomains; preload",
		"X-Frame-Options":           "DENY",
		"X-Content-Type-Options":    "nosniff",
		"Referrer-Policy":           "strict-origin-when-cross-origin",
		"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
	}
	for key, val := range want {
		if got := rr.Header().Get(key); got != val {
			t.Errorf("%s = %q, want %q", key, got, val)
		}
	}
	if rr.Header().Get("Content-Security-Policy") == "" {
		t.Errorf("missing Content-Security-Policy")
	}
}

func TestSecurity_KeepsPreSeededHeader(t *testing.T) {
	// An outer layer that already set a policy wins; Security never
	// overwrites a present header.
	outer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		Security(okHandler()).ServeHTTP(w, r)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	outer.ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Security-Policy"); got != "default-src 'none'" {
		t.Fatalf("CSP = %q, want pre-seeded value", got)
	}
}

func TestSecurity_InnerRouteMayReplace(t *testing.T) {
	// Headers are seeded before the inner handler runs, so a route that
	// needs a different policy can still Set one (the Swagger UI does).
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "script-src 'unsafe-inline'")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Security(inner).ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Security-Policy"); got != "script-src 'unsafe-inline'" {
		t.Fatalf("CSP = %q, want inner replacement", got)
	}
}

func TestSecurity_HeadersSurviveFirstWrite(t *testing.T) {
	// net/http flushes the header map on the first body write; headers
	// seeded before next.ServeHTTP must be in that flush.
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("body"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Security(inner).ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("X-Frame-Options = %q after body write, want DENY", got)
	}
}

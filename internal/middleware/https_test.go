// internal/middleware/https_test.go
//
// Unit-tests for the ForceHTTPS redirect middleware.
//
// Context
// -------
// ForceHTTPS reads the live config snapshot, so this test drives the real
// loader against a temp root: first with no config at all, then with
// force_https enabled from YAML, then flipped off through the env overlay
// and a reload.  All three states run inside one function so ordering is
// self-contained.
//
// Run: go test ./internal/middleware -v

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/yanizio/gamedex/internal/config"
)

const httpsTestYAML = `http:
  listen_addr: ":8080"
  force_https: true

database:
  uri: "mongodb://localhost:27017"
  name: "gamedex"
`

func serveHTTPS(target string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	ForceHTTPS(okHandler()).ServeHTTP(rr, req)
	return rr
}

func TestForceHTTPS(t *testing.T) {
	// Before any config loads, the wrapper must pass through; redirecting
	// during early boot would break health probes.
	if rr := serveHTTPS("http://example.com/games", nil); rr.Code != http.StatusOK {
		t.Fatalf("no-config status = %d, want 200", rr.Code)
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "conf"), 0o755); err != nil {
		t.Fatalf("mkdir conf: %v", err)
	}
	yamlPath := filepath.Join(dir, "conf", "global.yaml")
	if err := os.WriteFile(yamlPath, []byte(httpsTestYAML), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("GAMEDEX_ROOT", dir)

	if _, err := config.Load(context.Background()); err != nil {
		t.Fatalf("config load: %v", err)
	}

	// Plain HTTP on a public host redirects permanently.
	rr := serveHTTPS("http://example.com/games?x=1", nil)
	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("status = %d, want 308", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "https://example.com/games?x=1" {
		t.Fatalf("Location = %q", loc)
	}

	// localhost is exempt so local development keeps working.
	if rr := serveHTTPS("http://localhost:8080/games", nil); rr.Code != http.StatusOK {
		t.Fatalf("localhost status = %d, want 200", rr.Code)
	}

	// TLS terminated upstream is recognized via X-Forwarded-Proto.
	rr = serveHTTPS("http://example.com/games", map[string]string{
		"X-Forwarded-Proto": "https",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("forwarded-proto status = %d, want 200", rr.Code)
	}

	// The env overlay wins over YAML; a reload picks it up.
	t.Setenv("GAMEDEX_HTTP__FORCE_HTTPS", "false")
	if err := config.Reload(context.Background()); err != nil {
		t.Fatalf("config reload: %v", err)
	}
	if rr := serveHTTPS("http://example.com/games", nil); rr.Code != http.StatusOK {
		t.Fatalf("disabled status = %d, want 200", rr.Code)
	}
}

func TestStripPort(t *testing.T) {
	cases := map[string]string{
		"localhost:8080":  "localhost",
		"localhost":       "localhost",
		"example.com:443": "example.com",
		"example.com":     "example.com",
	}
	for in, want := range cases {
		if got := stripPort(in); got != want {
			t.Errorf("stripPort(%q) = %q, want %q", in, got, want)
		}
	}
}

// internal/requestinfo/middleware_test.go
//
// Unit-tests for the Enrich middleware and its helpers.
//
// Run: go test ./internal/requestinfo -v

package requestinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnrich_AttachesInfoAndEchoesHeader(t *testing.T) {
	var got *RequestInfo
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/games", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) "+
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	rr := httptest.NewRecorder()

	Enrich(inner).ServeHTTP(rr, req)

	if got == nil {
		t.Fatalf("RequestInfo missing from context")
	}
	if got.ID == "" {
		t.Fatalf("request id is empty")
	}
	if hdr := rr.Header().Get("X-Request-Id"); hdr != got.ID {
		t.Fatalf("X-Request-Id = %q, context id = %q; want equal", hdr, got.ID)
	}
	if got.UA.Browser != "Chrome" || got.UA.Device != "Desktop" {
		t.Errorf("ua = %+v, want Chrome desktop", got.UA)
	}
	if got.Lang != "en-us" {
		t.Errorf("lang = %q, want en-us", got.Lang)
	}
	// httptest.NewRequest stamps RemoteAddr 192.0.2.1:1234 (TEST-NET-1).
	if got.IP == nil || got.IP.String() != "192.0.2.1" {
		t.Errorf("ip = %v, want 192.0.2.1", got.IP)
	}
	if got.URL == nil || got.URL.Path != "/games" {
		t.Errorf("url = %v, want /games", got.URL)
	}
	if got.Timestamp.IsZero() {
		t.Errorf("timestamp not set")
	}
}

func TestEnrich_DistinctIDsPerRequest(t *testing.T) {
	ids := make(map[string]bool)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[FromContext(r.Context()).ID] = true
	})
	h := Enrich(inner)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	if len(ids) != 5 {
		t.Fatalf("distinct ids = %d, want 5", len(ids))
	}
}

func TestFromContext_NilWithoutMiddleware(t *testing.T) {
	if got := FromContext(context.Background()); got != nil {
		t.Fatalf("FromContext = %+v, want nil", got)
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		label  string
		xff    string
		xrip   string
		remote string
		want   string
	}{
		{"forwarded-for single", "203.0.113.7", "", "10.0.0.1:80", "203.0.113.7"},
		{"forwarded-for list", "203.0.113.7, 10.0.0.2", "", "10.0.0.1:80", "203.0.113.7"},
		{"forwarded-for skips garbage", "garbage, 203.0.113.7", "", "10.0.0.1:80", "203.0.113.7"},
		{"real-ip fallback", "", "198.51.100.4", "10.0.0.1:80", "198.51.100.4"},
		{"remote addr fallback", "", "", "192.0.2.9:4321", "192.0.2.9"},
		{"ipv6 remote", "", "", "[2001:db8::1]:443", "2001:db8::1"},
	}

	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = c.remote
		if c.xff != "" {
			req.Header.Set("X-Forwarded-For", c.xff)
		}
		if c.xrip != "" {
			req.Header.Set("X-Real-Ip", c.xrip)
		}

		ip := clientIP(req)
		if ip == nil || ip.String() != c.want {
			t.Errorf("%s: clientIP = %v, want %s", c.label, ip, c.want)
		}
	}
}

func TestPrimaryLang(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"en-US,en;q=0.9", "en-us"},
		{"fr-CH, fr;q=0.9, en;q=0.8", "fr-ch"},
		{"de", "de"},
	}
	for _, c := range cases {
		if got := primaryLang(c.in); got != c.want {
			t.Errorf("primaryLang(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

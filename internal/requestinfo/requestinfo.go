// internal/requestinfo/requestinfo.go
//
// Per-request metadata attached to the request context.
//
// Context
// -------
// The Enrich middleware collects one RequestInfo per request: a unique
// request id, the parsed User-Agent, the client IP, the primary language,
// and the arrival timestamp.  The struct is inert—no database handles or
// large buffers—so it is safe to log or JSON-encode.
//
// Notes
// -----
//   • UA parsing is delegated to internal/ua (uasurfer underneath).
//   • Oxford commas, two spaces after periods.
package requestinfo

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/yanizio/gamedex/internal/ua"
)

// RequestInfo is stored in the request context by Enrich, so handlers and
// middleware further down the chain can read request attributes without
// reparsing headers.
type RequestInfo struct {
	ID        string // unique per request, echoed in X-Request-Id
	UA        ua.Info
	IP        net.IP   // left-most public client address
	Lang      string   // first Accept-Language subtag ("en", "es", …)
	URL       *url.URL // pointer copy, safe to dereference read-only
	Timestamp time.Time
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich.  It returns
// nil if the middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// primaryLang extracts the first language subtag before any ";q=" rule.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	parts := strings.Split(al, ",")
	tag := strings.TrimSpace(parts[0])
	if i := strings.Index(tag, ";"); i != -1 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}

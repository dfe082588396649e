// internal/middleware/accesslog.go
//
// Structured access logging plus request-duration metrics.
//
/*
Context
--------
AccessLog sits immediately after requestinfo.Enrich.  For every request it
records one INFO span with the request id, method, route pattern, status,
byte count, latency, client IP, and the parsed browser and device class,
then observes the same latency in the Prometheus histogram labelled by
route pattern, method, and status class.

Notes
-----
  • The route pattern label comes from chi's RouteContext, so /games/123
    and /games/456 share one series (`/games/{id}`).
  • Status class ("2xx", "4xx") keeps histogram cardinality flat.
  • Oxford commas, two spaces after periods.
*/
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/gamedex/internal/metrics"
	"github.com/yanizio/gamedex/internal/requestinfo"
)

/*──────────────────────────── recorder ─────────────────────────────────────*/

// statusRecorder captures the status code and byte count written by the
// handler chain.  WriteHeader may be called once or not at all; Write
// defaults the status to 200 the way net/http does.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

/*──────────────────────────── middleware ───────────────────────────────────*/

// AccessLog logs one line per request and feeds the latency histogram.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		elapsed := time.Since(start)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}

		fields := []any{
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"elapsed_ms", elapsed.Milliseconds(),
		}
		if info := requestinfo.FromContext(r.Context()); info != nil {
			fields = append(fields,
				"request_id", info.ID,
				"ip", info.IP,
				"browser", info.UA.Browser,
				"device", info.UA.Device,
				"bot", info.UA.IsBot,
			)
		}
		zap.S().Infow("http request", fields...)

		metrics.RequestDuration.
			WithLabelValues(route, r.Method, statusClass(rec.status)).
			Observe(elapsed.Seconds())
	})
}

// statusClass buckets a code into "2xx".."5xx".
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

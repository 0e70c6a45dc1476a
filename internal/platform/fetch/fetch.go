// Package fetch is the shared HTTP adapter used by every upstream
// client. One GET per call, no retries. Non-2xx responses are ordinary
// results so callers can branch on the status code; only connection-level
// failures (DNS, refused, timeout) come back as errors.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"mashupapi/internal/metrics"
	"mashupapi/internal/source"
)

// Response is the outcome of a completed HTTP exchange, whatever the
// status code.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is in the 2xx range.
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Do issues a single GET against url with the given headers. The
// caller's client carries the per-source timeout. src labels metrics and
// error messages.
func Do(ctx context.Context, client *http.Client, src, url string, headers map[string]string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, source.Network(src, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := client.Do(req)
	metrics.UpstreamDuration.WithLabelValues(src).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(src, source.KindNetwork.String()).Inc()
		return Response{}, source.Network(src, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(src, source.KindNetwork.String()).Inc()
		return Response{}, source.Network(src, err)
	}

	outcome := "ok"
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = source.FromStatus(src, resp.StatusCode, body).Kind.String()
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(src, outcome).Inc()

	return Response{Status: resp.StatusCode, Body: body}, nil
}

// DecodeJSON unmarshals body into target, reporting failures as the
// malformed-response kind.
func DecodeJSON(src string, body []byte, target interface{}) error {
	if err := json.Unmarshal(body, target); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(src, source.KindMalformed.String()).Inc()
		return source.Malformed(src, err)
	}
	return nil
}

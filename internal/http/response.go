package http

import (
	"errors"
	"net/http"

	"mashupapi/internal/entity"
	"mashupapi/internal/httpx"
	"mashupapi/internal/source"
)

// writeSourceError maps the upstream error taxonomy onto HTTP statuses.
// Missing credentials are the service's own problem (503); anything the
// upstream got wrong is a bad gateway; an unreachable upstream is a
// gateway timeout.
func writeSourceError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *source.Error
	if !errors.As(err, &serr) {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "internal_error", "An internal error occurred", nil)
		return
	}

	var status int
	switch serr.Kind {
	case source.KindNotConfigured:
		status = http.StatusServiceUnavailable
	case source.KindNotFound:
		status = http.StatusNotFound
	case source.KindNetwork:
		status = http.StatusGatewayTimeout
	default:
		// unauthorized, upstream_error, malformed_response
		status = http.StatusBadGateway
	}

	httpx.JSONErrorWithRequest(r, w, status, serr.Kind.String(), serr.Message, nil)
}

// writeRecords sends a record list as a success envelope. An empty list
// is a valid outcome and answers 200, with a meta message so the page
// can say why it is blank.
func writeRecords(w http.ResponseWriter, r *http.Request, records []entity.DisplayRecord, emptyMessage string) {
	var meta interface{}
	if len(records) == 0 {
		records = []entity.DisplayRecord{}
		meta = map[string]interface{}{"message": emptyMessage}
	}
	httpx.JSONSuccessWithRequest(r, w, records, meta)
}

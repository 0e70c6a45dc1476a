package http

import (
	"net/http"
	"strings"

	"mashupapi/internal/httpx"
)

type NewsHandler struct {
	svc NewsService
}

func NewNewsHandler(svc NewsService) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// List serves both news modes: ?mode=viewed (the default) returns the
// most-viewed feed, ?mode=search&q=term runs an article search.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "viewed"
	}

	switch mode {
	case "viewed":
		records, err := h.svc.MostViewed(r.Context())
		if err != nil {
			writeSourceError(w, r, err)
			return
		}
		writeRecords(w, r, records, "no articles found")

	case "search":
		term := strings.TrimSpace(r.URL.Query().Get("q"))
		if term == "" {
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "validation_error", "Invalid query parameters",
				[]httpx.ErrorDetail{{Field: "q", Message: "q is required when mode is search"}})
			return
		}
		records, err := h.svc.Search(r.Context(), term)
		if err != nil {
			writeSourceError(w, r, err)
			return
		}
		writeRecords(w, r, records, "no articles found")

	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "validation_error", "Invalid query parameters",
			[]httpx.ErrorDetail{{Field: "mode", Message: "mode must be viewed or search"}})
	}
}

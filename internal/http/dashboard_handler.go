package http

import (
	"net/http"

	"mashupapi/internal/httpx"
)

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Snapshot always answers 200: failed sources already degraded to zero
// counts inside the aggregator.
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.svc.Aggregate(r.Context()), nil)
}

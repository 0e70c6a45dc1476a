package http

import "net/http"

type MoviesHandler struct {
	svc MoviesService
}

func NewMoviesHandler(svc MoviesService) *MoviesHandler {
	return &MoviesHandler{svc: svc}
}

func (h *MoviesHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.RecentlyWatched(r.Context())
	if err != nil {
		writeSourceError(w, r, err)
		return
	}
	writeRecords(w, r, records, "no history found")
}

func (h *MoviesHandler) Popular(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Popular(r.Context())
	if err != nil {
		writeSourceError(w, r, err)
		return
	}
	writeRecords(w, r, records, "no popular movies found")
}

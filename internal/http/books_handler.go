package http

import "net/http"

type BooksHandler struct {
	svc BooksService
}

func NewBooksHandler(svc BooksService) *BooksHandler {
	return &BooksHandler{svc: svc}
}

func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		writeSourceError(w, r, err)
		return
	}
	writeRecords(w, r, records, "no books found")
}

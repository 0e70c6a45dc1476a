package http

import (
	"net/http"

	"mashupapi/internal/httpx"
	"mashupapi/internal/knowledge"
)

type SearchHandler struct {
	svc KnowledgeService
}

func NewSearchHandler(svc KnowledgeService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search answers the film lookup. A request without a term is not an
// error: the page just has not been searched yet.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeSourceError(w, r, err)
		return
	}

	meta := map[string]interface{}{"state": string(res.State)}
	if res.Term != "" {
		meta["term"] = res.Term
	}
	if res.State == knowledge.StateResulted && len(res.Results) == 0 {
		meta["message"] = "no results"
	}

	httpx.JSONSuccessWithRequest(r, w, res.Results, meta)
}

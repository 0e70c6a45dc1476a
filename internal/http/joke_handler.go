package http

import (
	"net/http"

	"mashupapi/internal/httpx"
)

type JokeHandler struct {
	src JokeSource
}

func NewJokeHandler(src JokeSource) *JokeHandler {
	return &JokeHandler{src: src}
}

// Random never fails; the client substitutes a canned joke on any
// upstream trouble.
func (h *JokeHandler) Random(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, map[string]string{"joke": h.src.RandomJoke(r.Context())}, nil)
}

package http

import (
	"net/http"

	"mashupapi/internal/httpx"
)

// MethodMux chooses a handler based on the incoming HTTP method. Every
// route here is read-only, so in practice the map holds GET and the
// occasional OPTIONS passthrough.
func MethodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h.ServeHTTP(w, r)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed", nil)
	})
}

package shell

import (
	"net/http"

	"github.com/ziadkadry99/restohub/internal/router"
)

// handleView renders one fragment without a websocket. The fragment defaults
// to the home route. A route that renders nothing answers 204.
func (s *Shell) handleView(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("fragment")
	if fragment == "" {
		fragment = "#/"
	}

	route, html, ok := router.Render(r.Context(), s.site, fragment)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Route", route.Name())
	if _, isUnknown := route.(router.Unknown); isUnknown {
		w.WriteHeader(http.StatusNotFound)
	}
	w.Write([]byte(html))
}

// Package shell serves the browser side of restohub: the page with the
// navigation chrome, the service worker and manifest, and the /ws/navigate
// channel that turns fragment changes into rendered main content.
package shell

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/restohub/internal/router"
)

// Site is what the shell drives: the route pages plus the favorite toggle on
// the detail page.
type Site interface {
	router.Pages
	ToggleFavorite(ctx context.Context, id string) (bool, error)
}

// Shell provides the navigation shell routes.
type Shell struct {
	site Site
}

// New creates a new Shell.
func New(site Site) *Shell {
	return &Shell{site: site}
}

// RegisterRoutes mounts all shell routes onto the given router.
func (s *Shell) RegisterRoutes(r chi.Router) {
	r.Get("/", s.ServeIndex)
	r.Get("/sw.js", s.ServeServiceWorker)
	r.Get("/manifest.webmanifest", s.ServeManifest)
	r.Get("/view", s.handleView)
	r.Get("/ws/navigate", s.handleWebSocket)
}

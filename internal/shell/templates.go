package shell

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

//go:embed sw.js
var serviceWorkerJS []byte

//go:embed manifest.webmanifest
var manifestJSON []byte

// ServeIndex serves the embedded shell page.
func (s *Shell) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// ServeServiceWorker serves the service worker script from the site root so
// its scope covers the whole app.
func (s *Shell) ServeServiceWorker(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(serviceWorkerJS)
}

// ServeManifest serves the web app manifest.
func (s *Shell) ServeManifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/manifest+json")
	w.Write(manifestJSON)
}

package server

import (
	_ "embed"
	"net/http"
)

//go:embed assets/app.html
var appPage []byte

// appHandler serves the single-page app. The page owns its controls and
// re-queries /api/state and /chart.svg on every change, recomputations are
// counted there.
func (s *Server) appHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(appPage)
}

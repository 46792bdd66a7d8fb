package server

import (
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
	Error  string `json:"error,omitempty"`
}

// healthHandler reports ok even after a failed load, the app still serves an empty view.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, healthResponse{Status: "ok", Rows: s.ds.Len(), Error: s.loadError()})
}

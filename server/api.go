package server

import (
	"encoding/json"
	"net/http"

	"github.com/uyouii/glucose-insights/render"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

type stateResponse struct {
	render.State
	Error string `json:"error,omitempty"`
}

type boundsResponse struct {
	render.ControlBounds
	XAxis render.Axis   `json:"x_axis"`
	YAxis render.Axis   `json:"y_axis"`
	Axes  []render.Axis `json:"axes"`
	Error string        `json:"error,omitempty"`
}

func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	done := observe(frontendAPI)
	state := render.RenderControls(s.ds, render.ParseControls(r.URL.Query()))
	done()

	writeJSON(w, r, stateResponse{State: state, Error: s.loadError()})
}

func (s *Server) boundsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, boundsResponse{
		ControlBounds: render.Bounds(s.ds),
		XAxis:         render.DefaultXAxis,
		YAxis:         render.DefaultYAxis,
		Axes:          render.AllAxes,
		Error:         s.loadError(),
	})
}

// distributionHandler answers null when the filtered rows are too few to estimate.
func (s *Server) distributionHandler(w http.ResponseWriter, r *http.Request) {
	done := observe(frontendAPI)
	state := render.RenderControls(s.ds, render.ParseControls(r.URL.Query()))
	dist := state.Distribution(r.Context())
	done()

	writeJSON(w, r, dist)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.GetLogger(r.Context()).Error("write json response failed", zap.Error(err))
	}
}

package server

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/uyouii/glucose-insights/render"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

func (s *Server) chartHandler(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r.Context())
	format := render.Format(mux.Vars(r)["format"])

	done := observe(frontendChart)
	state := render.RenderControls(s.ds, render.ParseControls(r.URL.Query()))

	var buf bytes.Buffer
	if err := render.RenderChart(&buf, state.Chart, s.chart, format); err != nil {
		logger.Error("render chart failed, using placeholder", zap.Error(err),
			zap.Int("points", len(state.Chart.Points)))
		buf.Reset()
		_ = render.RenderChart(&buf, render.ChartInput{}, s.chart, format)
	}
	done()

	writeImage(w, format, buf.Bytes())
}

func (s *Server) distributionChartHandler(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r.Context())
	format := render.Format(mux.Vars(r)["format"])

	done := observe(frontendChart)
	state := render.RenderControls(s.ds, render.ParseControls(r.URL.Query()))

	var buf bytes.Buffer
	if err := render.RenderDistributionChart(&buf, state.Distribution(r.Context()), s.chart, format); err != nil {
		logger.Error("render distribution chart failed, using placeholder", zap.Error(err))
		buf.Reset()
		_ = render.RenderDistributionChart(&buf, nil, s.chart, format)
	}
	done()

	writeImage(w, format, buf.Bytes())
}

func writeImage(w http.ResponseWriter, format render.Format, body []byte) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

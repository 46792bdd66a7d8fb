package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/uyouii/glucose-insights/kde"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/render"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

//go:embed assets/dashboard.html
var assets embed.FS

var dashboardTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"pct": func(f float64) float64 { return f * 100 },
}).ParseFS(assets, "assets/dashboard.html"))

type quantileView struct {
	Label string
	Value float64
}

type dashboardView struct {
	Title     string
	Error     string
	Axes      []render.Axis
	X, Y      render.Axis
	Bounds    render.ControlBounds
	ValueMin  string
	ValueMax  string
	StartDate string
	EndDate   string
	Lines     []string
	Ranges    model.RangeAnalysis
	Quantiles []quantileView
	ChartURL  template.URL
	DistURL   template.URL
}

// dashboardHandler renders the declarative dashboard. The controls are a plain
// GET form; every submission recomputes the whole page from the query.
func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r.Context())

	done := observe(frontendDashboard)
	controls := render.ParseControls(r.URL.Query())
	x, y := controls.Axes()
	criteria := render.ResolveCriteria(s.ds, controls)
	state := render.RenderState(s.ds, criteria, x, y)
	dist := state.Distribution(r.Context())
	done()

	bounds := render.Bounds(s.ds)
	view := dashboardView{
		Title:     AppTitle,
		Error:     s.loadError(),
		Axes:      render.AllAxes,
		X:         x,
		Y:         y,
		Bounds:    bounds,
		ValueMin:  formatBound(controls.ValueMin, bounds.ValueMin, bounds.Empty),
		ValueMax:  formatBound(controls.ValueMax, bounds.ValueMax, bounds.Empty),
		StartDate: orDefault(controls.StartDate, bounds.DateMin),
		EndDate:   orDefault(controls.EndDate, bounds.DateMax),
		Lines:     state.Lines,
		Ranges:    state.Ranges,
		Quantiles: quantiles(dist),
	}
	q := controls.Values()
	q.Set("x", string(x))
	q.Set("y", string(y))
	view.ChartURL = template.URL("/chart.svg?" + q.Encode())
	view.DistURL = template.URL("/distribution.svg?" + q.Encode())

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, view); err != nil {
		logger.Error("render dashboard failed", zap.Error(err))
		http.Error(w, "render dashboard failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func formatBound(v *float64, fallback float64, empty bool) string {
	if v != nil {
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	if empty {
		return ""
	}
	return strconv.FormatFloat(fallback, 'f', -1, 64)
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func quantiles(dist *model.Distribution) []quantileView {
	res := []quantileView{}
	for _, p := range kde.AllCalculateQuantiles {
		q, ok := dist.GetQuantileValue(p)
		if !ok {
			continue
		}
		res = append(res, quantileView{
			Label: fmt.Sprintf("%.0fth percentile", p*100),
			Value: q.Value,
		})
	}
	return res
}

package render

import (
	"context"

	"github.com/uyouii/glucose-insights/filter"
	"github.com/uyouii/glucose-insights/kde"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/summary"
)

const ChartTitle = "Glucose Levels"

// Point is one filtered row projected onto the selected axes.
type Point struct {
	X interface{} `json:"x"`
	Y interface{} `json:"y"`
}

type ChartInput struct {
	Title  string  `json:"title"`
	X      Axis    `json:"x_axis"`
	Y      Axis    `json:"y_axis"`
	Points []Point `json:"points"`

	rows *model.Dataset
}

// State is everything a front-end needs to draw one view.
type State struct {
	Criteria model.FilterCriteria    `json:"criteria"`
	Chart    ChartInput              `json:"chart"`
	Stats    model.SummaryStatistics `json:"stats"`
	Lines    []string                `json:"lines"`
	Ranges   model.RangeAnalysis     `json:"ranges"`
}

// RenderState runs filter, summary and projection for one set of criteria.
// It has no side effects and never fails.
func RenderState(ds *model.Dataset, criteria model.FilterCriteria, x, y Axis) State {
	filtered := filter.Filter(ds, criteria)
	stats := summary.Summarize(filtered)

	points := make([]Point, 0, filtered.Len())
	for i := 0; i < filtered.Len(); i++ {
		r := filtered.At(i)
		points = append(points, Point{X: x.project(r), Y: y.project(r)})
	}

	return State{
		Criteria: criteria,
		Chart: ChartInput{
			Title:  ChartTitle,
			X:      x,
			Y:      y,
			Points: points,
			rows:   filtered,
		},
		Stats:  stats,
		Lines:  summary.Lines(stats),
		Ranges: summary.Ranges(filtered),
	}
}

// RenderControls resolves raw controls and renders the resulting state.
func RenderControls(ds *model.Dataset, c Controls) State {
	x, y := c.Axes()
	return RenderState(ds, ResolveCriteria(ds, c), x, y)
}

// Distribution estimates the glucose distribution of the filtered rows, nil when
// there are too few distinct readings.
func (s State) Distribution(ctx context.Context) *model.Distribution {
	dist, err := kde.EstimateDistribution(ctx, s.Chart.rows.Values())
	if err != nil {
		return nil
	}
	return dist
}

// ControlBounds are the limits of the UI range controls.
type ControlBounds struct {
	Empty    bool    `json:"empty"`
	ValueMin float64 `json:"value_min"`
	ValueMax float64 `json:"value_max"`
	DateMin  string  `json:"date_min,omitempty"`
	DateMax  string  `json:"date_max,omitempty"`
}

func Bounds(ds *model.Dataset) ControlBounds {
	b, ok := ds.Bounds()
	if !ok {
		return ControlBounds{Empty: true}
	}
	return ControlBounds{
		ValueMin: b.ValueMin,
		ValueMax: b.ValueMax,
		DateMin:  b.TimeMin.Format(DateLayout),
		DateMax:  b.TimeMax.Format(DateLayout),
	}
}

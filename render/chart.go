package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"time"

	"github.com/uyouii/glucose-insights/model"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DistributionTitle = "Glucose Distribution"

	timeLabelLayout = "Jan 2 15:04"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

type ChartOptions struct {
	Width  int
	Height int
}

func (o ChartOptions) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 1024
	}
	if h <= 0 {
		h = 480
	}
	return w, h
}

func lineStyle() chart.Style {
	return chart.Style{
		StrokeColor: drawing.ColorFromHex("1f77b4"),
		StrokeWidth: 2,
	}
}

// RenderChart draws the projected rows as a line chart in source order.
// An empty input renders a "no data" placeholder.
func RenderChart(w io.Writer, input ChartInput, opts ChartOptions, format Format) error {
	width, height := opts.size()
	if input.rows.IsEmpty() {
		return placeholder(w, width, height, format)
	}

	xs := make([]float64, 0, input.rows.Len()+1)
	ys := make([]float64, 0, input.rows.Len()+1)
	for i := 0; i < input.rows.Len(); i++ {
		r := input.rows.At(i)
		xs = append(xs, input.X.numeric(r))
		ys = append(ys, input.Y.numeric(r))
	}
	// go-chart needs at least two values per series
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	ch := chart.Chart{
		Title:      input.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           string(input.X),
			ValueFormatter: formatter(input.X),
			Range:          paddedRange(xs, input.X),
		},
		YAxis: chart.YAxis{
			Name:           string(input.Y),
			ValueFormatter: formatter(input.Y),
			Range:          paddedRange(ys, input.Y),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("%s vs %s", input.Y, input.X),
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(),
			},
		},
	}
	return ch.Render(provider(format), w)
}

// RenderDistributionChart draws a density curve, or the placeholder when dist is nil.
func RenderDistributionChart(w io.Writer, dist *model.Distribution, opts ChartOptions, format Format) error {
	width, height := opts.size()
	if dist == nil || len(dist.Density) < 2 {
		return placeholder(w, width, height, format)
	}

	xs := make([]float64, len(dist.Density))
	ys := make([]float64, len(dist.Density))
	for i, d := range dist.Density {
		xs[i], ys[i] = d.X, d.Value
	}

	ch := chart.Chart{
		Title:      DistributionTitle,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: string(AxisGlucoseValue), ValueFormatter: formatter(AxisGlucoseValue)},
		YAxis:      chart.YAxis{Name: "Density"},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: lineStyle()},
		},
	}
	return ch.Render(provider(format), w)
}

func provider(format Format) chart.RendererProvider {
	if format == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

func formatter(a Axis) chart.ValueFormatter {
	if !a.IsTime() {
		return func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.0f", f)
			}
			return ""
		}
	}
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return time.Unix(0, int64(f)).UTC().Format(timeLabelLayout)
		}
		return ""
	}
}

// paddedRange widens a zero-width range so a constant series still draws.
func paddedRange(values []float64, a Axis) chart.Range {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi > lo {
		return nil
	}
	pad := 1.0
	if a.IsTime() {
		pad = float64(time.Hour)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func placeholder(w io.Writer, width, height int, format Format) error {
	if format == FormatPNG {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
		return png.Encode(w, img)
	}
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
		`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
		`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="16" fill="#888888">no data</text>`+
		`</svg>`, width, height)
	return err
}

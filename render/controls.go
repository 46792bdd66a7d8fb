package render

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/uyouii/glucose-insights/filter"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/utils"
)

const DateLayout = "2006-01-02"

// Controls is the raw state of the UI controls. Any field may be missing or malformed.
type Controls struct {
	XAxis     string
	YAxis     string
	ValueMin  *float64
	ValueMax  *float64
	StartDate string
	EndDate   string
}

// ParseControls reads controls from query parameters x, y, min, max, start and end.
// Unparseable numbers are treated as missing.
func ParseControls(q url.Values) Controls {
	return Controls{
		XAxis:     q.Get("x"),
		YAxis:     q.Get("y"),
		ValueMin:  parseNumber(q.Get("min")),
		ValueMax:  parseNumber(q.Get("max")),
		StartDate: q.Get("start"),
		EndDate:   q.Get("end"),
	}
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Axes returns the selected axes, substituting the defaults for unknown values.
func (c Controls) Axes() (Axis, Axis) {
	x, ok := ParseAxis(c.XAxis)
	if !ok {
		x = DefaultXAxis
	}
	y, ok := ParseAxis(c.YAxis)
	if !ok {
		y = DefaultYAxis
	}
	return x, y
}

// ResolveCriteria turns controls into filter criteria. Missing or malformed
// bounds fall back to the dataset's observed extremes. A date-only end bound
// covers its whole day.
func ResolveCriteria(ds *model.Dataset, c Controls) model.FilterCriteria {
	criteria := filter.FullRange(ds)

	if c.ValueMin != nil {
		criteria.ValueMin = *c.ValueMin
	}
	if c.ValueMax != nil {
		criteria.ValueMax = *c.ValueMax
	}
	if t, ok := parseInstant(c.StartDate, false); ok {
		criteria.TimeStart = t
	}
	if t, ok := parseInstant(c.EndDate, true); ok {
		criteria.TimeEnd = t
	}
	return criteria
}

func parseInstant(s string, endOfDay bool) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		if endOfDay {
			return utils.DayEnd(t), true
		}
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	// <input type="datetime-local">
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Values encodes controls back into query parameters, skipping missing fields.
func (c Controls) Values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("x", c.XAxis)
	set("y", c.YAxis)
	if c.ValueMin != nil {
		q.Set("min", strconv.FormatFloat(*c.ValueMin, 'f', -1, 64))
	}
	if c.ValueMax != nil {
		q.Set("max", strconv.FormatFloat(*c.ValueMax, 'f', -1, 64))
	}
	set("start", c.StartDate)
	set("end", c.EndDate)
	return q
}

package render

import (
	"strings"

	"github.com/uyouii/glucose-insights/model"
)

// Axis is a selectable chart field.
type Axis string

const (
	AxisTime         Axis = "Time"
	AxisGlucoseValue Axis = "Glucose Value"

	DefaultXAxis = AxisTime
	DefaultYAxis = AxisGlucoseValue
)

var AllAxes = []Axis{AxisTime, AxisGlucoseValue}

func ParseAxis(s string) (Axis, bool) {
	switch strings.ToLower(strings.Join(strings.Fields(s), "")) {
	case "time":
		return AxisTime, true
	case "glucosevalue", "glucose", "glucose_value", "value":
		return AxisGlucoseValue, true
	}
	return "", false
}

func (a Axis) IsTime() bool {
	return a == AxisTime
}

// project returns the reading's field for this axis: a time.Time or a float64.
func (a Axis) project(r model.Reading) interface{} {
	if a.IsTime() {
		return r.Time
	}
	return r.GlucoseValue
}

// numeric maps the reading's field onto the chart's float axis.
func (a Axis) numeric(r model.Reading) float64 {
	if a.IsTime() {
		return float64(r.Time.UnixNano())
	}
	return r.GlucoseValue
}

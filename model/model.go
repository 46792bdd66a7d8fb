package model

import (
	"fmt"
	"time"
)

// Reading is one (Time, Glucose Value) observation.
type Reading struct {
	Time         time.Time `json:"time"`
	GlucoseValue float64   `json:"glucose_value"`
}

// Dataset is an ordered, read-only sequence of readings.
// It is never mutated after construction; every derived dataset is a new value.
type Dataset struct {
	readings []Reading
}

// NewDataset copies readings into a new Dataset.
func NewDataset(readings []Reading) *Dataset {
	cp := make([]Reading, len(readings))
	copy(cp, readings)
	return &Dataset{readings: cp}
}

func EmptyDataset() *Dataset {
	return &Dataset{readings: []Reading{}}
}

func (d *Dataset) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.readings) == 0
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.readings)
}

func (d *Dataset) At(i int) Reading {
	return d.readings[i]
}

// Readings returns a copy of the underlying rows.
func (d *Dataset) Readings() []Reading {
	if d == nil {
		return []Reading{}
	}
	cp := make([]Reading, len(d.readings))
	copy(cp, d.readings)
	return cp
}

func (d *Dataset) Values() []float64 {
	res := make([]float64, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		res = append(res, d.readings[i].GlucoseValue)
	}
	return res
}

// Bounds returns the observed value and time extremes, ok is false for an empty dataset.
func (d *Dataset) Bounds() (Bounds, bool) {
	if d.IsEmpty() {
		return Bounds{}, false
	}
	first := d.readings[0]
	b := Bounds{
		ValueMin: first.GlucoseValue,
		ValueMax: first.GlucoseValue,
		TimeMin:  first.Time,
		TimeMax:  first.Time,
	}
	for _, r := range d.readings[1:] {
		b.ValueMin = min(b.ValueMin, r.GlucoseValue)
		b.ValueMax = max(b.ValueMax, r.GlucoseValue)
		if r.Time.Before(b.TimeMin) {
			b.TimeMin = r.Time
		}
		if r.Time.After(b.TimeMax) {
			b.TimeMax = r.Time
		}
	}
	return b, true
}

func (d *Dataset) DebugString() string {
	b, ok := d.Bounds()
	if !ok {
		return "rows: 0"
	}
	return fmt.Sprintf("rows: %v, values: [%v, %v], times: [%v, %v]",
		d.Len(), b.ValueMin, b.ValueMax, b.TimeMin.Format(time.RFC3339), b.TimeMax.Format(time.RFC3339))
}

type Bounds struct {
	ValueMin float64   `json:"value_min"`
	ValueMax float64   `json:"value_max"`
	TimeMin  time.Time `json:"time_min"`
	TimeMax  time.Time `json:"time_max"`
}

// FilterCriteria is the four-bound predicate applied to a Dataset, all bounds inclusive.
// Ordering of the bounds is the caller's responsibility.
type FilterCriteria struct {
	ValueMin  float64   `json:"value_min"`
	ValueMax  float64   `json:"value_max"`
	TimeStart time.Time `json:"time_start"`
	TimeEnd   time.Time `json:"time_end"`
}

func (c FilterCriteria) Match(r Reading) bool {
	return c.ValueMin <= r.GlucoseValue && r.GlucoseValue <= c.ValueMax &&
		!r.Time.Before(c.TimeStart) && !r.Time.After(c.TimeEnd)
}

// SummaryStatistics holds nil Min/Max/Mean when computed over an empty dataset.
type SummaryStatistics struct {
	Min        *float64 `json:"min"`
	Max        *float64 `json:"max"`
	Mean       *float64 `json:"mean"`
	HypoCount  int      `json:"hypo_count"`
	HyperCount int      `json:"hyper_count"`
}

type RangeAnalysis struct {
	BelowRange float64  `json:"below_range"`
	InRange    float64  `json:"in_range"`
	AboveRange float64  `json:"above_range"`
	StdDev     *float64 `json:"stddev"`
	Median     *float64 `json:"median"`
}

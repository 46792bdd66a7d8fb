package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/glucose-insights/filter"
	"github.com/uyouii/glucose-insights/model"
)

var base = time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC)

func dataset(values ...float64) *model.Dataset {
	readings := make([]model.Reading, len(values))
	for i, v := range values {
		readings[i] = model.Reading{Time: base.Add(time.Duration(i) * 5 * time.Minute), GlucoseValue: v}
	}
	return model.NewDataset(readings)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(dataset(65, 75, 190, 120))

	require.NotNil(t, stats.Min)
	require.NotNil(t, stats.Max)
	require.NotNil(t, stats.Mean)
	assert.Equal(t, 65.0, *stats.Min)
	assert.Equal(t, 190.0, *stats.Max)
	assert.Equal(t, 112.5, *stats.Mean)
	assert.Equal(t, 1, stats.HypoCount)
	assert.Equal(t, 1, stats.HyperCount)
}

func TestSummarizeEmpty(t *testing.T) {
	for _, ds := range []*model.Dataset{nil, model.EmptyDataset()} {
		stats := Summarize(ds)
		assert.Nil(t, stats.Min)
		assert.Nil(t, stats.Max)
		assert.Nil(t, stats.Mean)
		assert.Equal(t, 0, stats.HypoCount)
		assert.Equal(t, 0, stats.HyperCount)
	}
}

func TestSummarizeEmptyFilterResult(t *testing.T) {
	ds := dataset(65, 75, 190, 120)
	criteria := model.FilterCriteria{ValueMin: 300, ValueMax: 400, TimeStart: base, TimeEnd: base.Add(time.Hour)}

	stats := Summarize(filter.Filter(ds, criteria))
	assert.Equal(t, model.SummaryStatistics{}, stats)
}

func TestThresholds(t *testing.T) {
	testCases := []struct {
		name      string
		value     float64
		wantHypo  int
		wantHyper int
	}{
		{name: "exactly hypo cutoff", value: 70},
		{name: "just below hypo cutoff", value: 69.999, wantHypo: 1},
		{name: "exactly hyper cutoff", value: 180},
		{name: "just above hyper cutoff", value: 180.001, wantHyper: 1},
		{name: "in range", value: 110},
		{name: "zero", value: 0, wantHypo: 1},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			stats := Summarize(dataset(testCase.value))
			assert.Equal(t, testCase.wantHypo, stats.HypoCount)
			assert.Equal(t, testCase.wantHyper, stats.HyperCount)
		})
	}
}

func TestMeanIsRounded(t *testing.T) {
	stats := Summarize(dataset(100, 100, 105))
	require.NotNil(t, stats.Mean)
	assert.Equal(t, 101.67, *stats.Mean)
}

func TestLines(t *testing.T) {
	testCases := []struct {
		name  string
		stats model.SummaryStatistics
		want  []string
	}{
		{
			name:  "end to end example",
			stats: Summarize(dataset(65, 75, 190, 120)),
			want: []string{
				"Minimum Glucose Level: 65 mg/dL",
				"Maximum Glucose Level: 190 mg/dL",
				"Average Glucose Level: 112.50 mg/dL",
				"Hypoglycemia Count: 1",
				"Hyperglycemia Count: 1",
			},
		},
		{
			name:  "fractional values",
			stats: Summarize(dataset(69.5, 181.25)),
			want: []string{
				"Minimum Glucose Level: 69.5 mg/dL",
				"Maximum Glucose Level: 181.25 mg/dL",
				"Average Glucose Level: 125.38 mg/dL",
				"Hypoglycemia Count: 1",
				"Hyperglycemia Count: 1",
			},
		},
		{
			name:  "empty",
			stats: Summarize(model.EmptyDataset()),
			want: []string{
				"Minimum Glucose Level: no data",
				"Maximum Glucose Level: no data",
				"Average Glucose Level: no data",
				"Hypoglycemia Count: 0",
				"Hyperglycemia Count: 0",
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Lines(testCase.stats))
		})
	}
}

func TestRanges(t *testing.T) {
	res := Ranges(dataset(65, 75, 190, 120))
	assert.InDelta(t, 0.25, res.BelowRange, 1e-9)
	assert.InDelta(t, 0.5, res.InRange, 1e-9)
	assert.InDelta(t, 0.25, res.AboveRange, 1e-9)
	require.NotNil(t, res.Median)
	assert.Equal(t, 97.5, *res.Median)
	require.NotNil(t, res.StdDev)
	assert.InDelta(t, 56.94, *res.StdDev, 0.001)

	single := Ranges(dataset(100))
	assert.Nil(t, single.StdDev)
	require.NotNil(t, single.Median)
	assert.Equal(t, 1.0, single.InRange)

	assert.Equal(t, model.RangeAnalysis{}, Ranges(model.EmptyDataset()))
}

package filter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/glucose-insights/model"
)

var base = time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func sample() *model.Dataset {
	return model.NewDataset([]model.Reading{
		{Time: at(0), GlucoseValue: 65},
		{Time: at(5), GlucoseValue: 75},
		{Time: at(10), GlucoseValue: 190},
		{Time: at(15), GlucoseValue: 120},
	})
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		name     string
		criteria model.FilterCriteria
		want     []float64
	}{
		{
			name:     "full range",
			criteria: model.FilterCriteria{ValueMin: 65, ValueMax: 190, TimeStart: at(0), TimeEnd: at(15)},
			want:     []float64{65, 75, 190, 120},
		},
		{
			name:     "value bounds are inclusive",
			criteria: model.FilterCriteria{ValueMin: 75, ValueMax: 120, TimeStart: at(0), TimeEnd: at(15)},
			want:     []float64{75, 120},
		},
		{
			name:     "time bounds are inclusive",
			criteria: model.FilterCriteria{ValueMin: 0, ValueMax: 500, TimeStart: at(5), TimeEnd: at(10)},
			want:     []float64{75, 190},
		},
		{
			name:     "both predicates",
			criteria: model.FilterCriteria{ValueMin: 70, ValueMax: 200, TimeStart: at(0), TimeEnd: at(10)},
			want:     []float64{75, 190},
		},
		{
			name:     "inverted value range",
			criteria: model.FilterCriteria{ValueMin: 190, ValueMax: 65, TimeStart: at(0), TimeEnd: at(15)},
			want:     []float64{},
		},
		{
			name:     "inverted time range",
			criteria: model.FilterCriteria{ValueMin: 0, ValueMax: 500, TimeStart: at(15), TimeEnd: at(0)},
			want:     []float64{},
		},
		{
			name:     "just outside value bounds",
			criteria: model.FilterCriteria{ValueMin: 65.0001, ValueMax: 189.999, TimeStart: at(0), TimeEnd: at(15)},
			want:     []float64{75, 120},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ds := sample()
			got := Filter(ds, testCase.criteria)
			assert.Equal(t, testCase.want, got.Values())
			// input untouched
			assert.Equal(t, []float64{65, 75, 190, 120}, ds.Values())
		})
	}
}

func TestFilterEmptyInput(t *testing.T) {
	criteria := model.FilterCriteria{ValueMin: 0, ValueMax: 500, TimeStart: at(0), TimeEnd: at(15)}

	got := Filter(model.EmptyDataset(), criteria)
	require.NotNil(t, got)
	assert.True(t, got.IsEmpty())

	got = Filter(nil, criteria)
	require.NotNil(t, got)
	assert.True(t, got.IsEmpty())
}

func TestFilterIsExactPredicate(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	readings := make([]model.Reading, 500)
	for i := range readings {
		readings[i] = model.Reading{
			Time:         at(rnd.Intn(2000)),
			GlucoseValue: float64(40 + rnd.Intn(300)),
		}
	}
	ds := model.NewDataset(readings)

	for i := 0; i < 50; i++ {
		criteria := model.FilterCriteria{
			ValueMin:  float64(40 + rnd.Intn(300)),
			ValueMax:  float64(40 + rnd.Intn(300)),
			TimeStart: at(rnd.Intn(2000)),
			TimeEnd:   at(rnd.Intn(2000)),
		}
		got := Filter(ds, criteria)

		// exactly the rows satisfying the predicate, in input order
		want := []model.Reading{}
		for _, r := range readings {
			if r.GlucoseValue >= criteria.ValueMin && r.GlucoseValue <= criteria.ValueMax &&
				!r.Time.Before(criteria.TimeStart) && !r.Time.After(criteria.TimeEnd) {
				want = append(want, r)
			}
		}
		assert.Equal(t, want, got.Readings())

		// idempotent
		assert.Equal(t, got.Readings(), Filter(got, criteria).Readings())
	}
}

func TestFullRange(t *testing.T) {
	ds := model.NewDataset([]model.Reading{
		{Time: at(10), GlucoseValue: 120},
		{Time: at(0), GlucoseValue: 190},
		{Time: at(5), GlucoseValue: 65},
	})

	criteria := FullRange(ds)
	assert.Equal(t, model.FilterCriteria{ValueMin: 65, ValueMax: 190, TimeStart: at(0), TimeEnd: at(10)}, criteria)
	assert.Equal(t, ds.Readings(), Filter(ds, criteria).Readings())

	assert.Equal(t, model.FilterCriteria{}, FullRange(model.EmptyDataset()))
}

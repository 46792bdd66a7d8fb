package filter

import (
	"github.com/uyouii/glucose-insights/model"
)

// Filter returns a new Dataset holding the rows of ds that satisfy all four
// inclusive bounds of criteria, in their original order. ds is not modified.
func Filter(ds *model.Dataset, criteria model.FilterCriteria) *model.Dataset {
	if ds.IsEmpty() {
		return model.EmptyDataset()
	}

	res := make([]model.Reading, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		reading := ds.At(i)
		if criteria.Match(reading) {
			res = append(res, reading)
		}
	}
	return model.NewDataset(res)
}

// FullRange returns criteria spanning every row of ds.
func FullRange(ds *model.Dataset) model.FilterCriteria {
	bounds, ok := ds.Bounds()
	if !ok {
		return model.FilterCriteria{}
	}
	return model.FilterCriteria{
		ValueMin:  bounds.ValueMin,
		ValueMax:  bounds.ValueMax,
		TimeStart: bounds.TimeMin,
		TimeEnd:   bounds.TimeMax,
	}
}

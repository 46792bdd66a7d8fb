package summary

import (
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the five summary statistics of ds.
// Min, Max and Mean are nil when ds is empty, the counts are zero.
func Summarize(ds *model.Dataset) model.SummaryStatistics {
	res := model.SummaryStatistics{}
	if ds.IsEmpty() {
		return res
	}

	values := ds.Values()
	res.Min = utils.FloatPtr(floats.Min(values))
	res.Max = utils.FloatPtr(floats.Max(values))
	res.Mean = utils.FloatPtr(utils.FormatFloat(stat.Mean(values, nil), MeanRoundDigits))

	for _, v := range values {
		switch {
		case v < HypoThreshold:
			res.HypoCount++
		case v > HyperThreshold:
			res.HyperCount++
		}
	}
	return res
}

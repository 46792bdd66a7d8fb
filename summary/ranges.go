package summary

import (
	"github.com/montanaflynn/stats"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/utils"
)

// Ranges reports the share of readings below, within and above the
// [HypoThreshold, HyperThreshold] target range, plus spread statistics.
func Ranges(ds *model.Dataset) model.RangeAnalysis {
	res := model.RangeAnalysis{}
	if ds.IsEmpty() {
		return res
	}

	values := ds.Values()
	below, above := 0.0, 0.0
	for _, v := range values {
		switch {
		case v < HypoThreshold:
			below++
		case v > HyperThreshold:
			above++
		}
	}
	total := float64(len(values))
	res.BelowRange = utils.FormatFloat(below/total, 4)
	res.AboveRange = utils.FormatFloat(above/total, 4)
	res.InRange = utils.FormatFloat((total-below-above)/total, 4)

	if dev, err := stats.StandardDeviationSample(values); err == nil && len(values) > 1 {
		res.StdDev = utils.FloatPtr(utils.FormatFloat(dev, MeanRoundDigits))
	}
	if median, err := stats.Median(values); err == nil {
		res.Median = utils.FloatPtr(median)
	}
	return res
}

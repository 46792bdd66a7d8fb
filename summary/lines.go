package summary

import (
	"fmt"
	"strconv"

	"github.com/uyouii/glucose-insights/model"
)

// Lines renders stats as the five display lines: minimum, maximum, average,
// hypoglycemia count, hyperglycemia count.
func Lines(stats model.SummaryStatistics) []string {
	return []string{
		fmt.Sprintf("Minimum Glucose Level: %s", level(stats.Min, formatValue)),
		fmt.Sprintf("Maximum Glucose Level: %s", level(stats.Max, formatValue)),
		fmt.Sprintf("Average Glucose Level: %s", level(stats.Mean, formatMean)),
		fmt.Sprintf("Hypoglycemia Count: %d", stats.HypoCount),
		fmt.Sprintf("Hyperglycemia Count: %d", stats.HyperCount),
	}
}

func level(v *float64, format func(float64) string) string {
	if v == nil {
		return NoData
	}
	return format(*v) + " " + Unit
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMean(v float64) string {
	return strconv.FormatFloat(v, 'f', MeanRoundDigits, 64)
}

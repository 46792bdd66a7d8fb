package summary

const (
	// mg/dL cutoffs, both exclusive
	HypoThreshold  = 70.0
	HyperThreshold = 180.0

	MeanRoundDigits = 2

	Unit   = "mg/dL"
	NoData = "no data"
)

package kde

const (
	ClipUpperZScore = 3.0
	ClipLowerZScore = 3.0

	KdeMinCalculatePointCnt = 5

	// grid points of the density curve
	KdeMinGridSize = 100
	KdeMaxGridSize = 200

	// integration points per grid interval when building the cdf
	KdeCdfQuadPoints = 20

	KdeBandwidthAdjust = 1.0
	KdeCut             = 3.0
)

var (
	AllCalculateQuantiles = []float64{0.05, 0.25, 0.5, 0.75, 0.95}
)

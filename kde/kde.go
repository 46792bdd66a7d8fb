package kde

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/uyouii/glucose-insights/common"
	"github.com/uyouii/glucose-insights/model"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"
)

// Estimator is a univariate weighted kernel density estimate.
type Estimator struct {
	Weights []float64
	// sorted sample
	Endog []float64

	gridSize int
	// bandwidth becomes bw * bwAdjust
	bwAdjust float64
	// the grid reaches cut*bw past the highest sample
	cut float64

	density []model.Density
	cdf     []model.Cdf
	grid    []float64
	bw      float64
	fitted  bool
	kernel  *GaussianKernel
}

func NewEstimator(endog []float64, weights []float64,
	bwAdjust float64, cut float64, clip *model.Clip) (*Estimator, error) {
	if len(endog) == 0 {
		return nil, common.ErrorInvalidValue
	}

	if len(weights) == 0 {
		weights = InitOnes(len(endog))
	} else if len(weights) != len(endog) {
		return nil, common.ErrorInvalidValue
	}

	x, w := make([]float64, len(endog)), make([]float64, len(weights))
	copy(x, endog)
	copy(w, weights)
	// sort the sample and carry the weights along
	sort.Sort(pairs{x: x, w: w})

	if clip != nil {
		x, w = Clip(x, w, clip)
	}
	if len(x) == 0 {
		return nil, common.ErrorInvalidValue
	}

	if cut == 0 {
		cut = KdeCut
	}
	if bwAdjust == 0 {
		bwAdjust = KdeBandwidthAdjust
	}

	return &Estimator{
		Weights:  w,
		Endog:    x,
		gridSize: min(max(len(x), KdeMinGridSize), KdeMaxGridSize),
		bwAdjust: bwAdjust,
		cut:      cut,
	}, nil
}

// Fit evaluates the density on an evenly spaced grid and returns it with the bandwidth.
func (e *Estimator) Fit() ([]model.Density, float64, error) {
	if e.fitted {
		return e.density, e.bw, nil
	}

	kernel := NewGaussianKernel()
	bw := NewNormalReferenceBandWidth(kernel).BandWidth(e.Endog) * e.bwAdjust
	if bw <= 0 || math.IsNaN(bw) {
		return nil, 0, errors.Wrapf(common.ErrorInvalidValue, "bandwidth %v", bw)
	}
	kernel.SetH(bw)
	kernel.SetWeights(e.Weights)

	// glucose is never negative, keep the grid on the positive axis
	a := max(floats.Min(e.Endog)-e.cut*1.5*bw, 0)
	b := floats.Max(e.Endog) + e.cut*bw
	grid := linspace(a, b, e.gridSize)

	res := make([]model.Density, len(grid))
	for i, x := range grid {
		res[i] = model.Density{X: x, Value: kernel.Density(e.Endog, x)}
	}

	e.density = res
	e.bw = bw
	e.grid = grid
	e.kernel = kernel
	e.fitted = true
	return res, bw, nil
}

func (e *Estimator) Cdf() ([]model.Cdf, error) {
	if _, _, err := e.Fit(); err != nil {
		return nil, err
	}
	if len(e.cdf) > 0 {
		return e.cdf, nil
	}

	newGrid := append([]float64{0}, e.grid...)

	f := func(x float64) float64 {
		return e.kernel.Density(e.Endog, x)
	}

	res := make([]model.Cdf, 0, len(e.grid))
	var cumSum float64
	for i := 1; i < len(newGrid); i++ {
		cumSum += quad.Fixed(f, newGrid[i-1], newGrid[i], KdeCdfQuadPoints, nil, 0)
		res = append(res, model.Cdf{X: newGrid[i], Value: cumSum})
	}

	e.cdf = res
	return res, nil
}

// Quantile linearly interpolates the cdf, clamping to the grid ends.
func (e *Estimator) Quantile(p float64) (*model.QuantileValue, error) {
	cdf, err := e.Cdf()
	if err != nil {
		return nil, err
	}
	if len(cdf) == 0 {
		return nil, common.ErrorInvalidValue
	}

	if p <= cdf[0].Value {
		return &model.QuantileValue{Quantile: p, Value: cdf[0].X}, nil
	}
	for i := 1; i < len(cdf); i++ {
		if cdf[i].Value > p {
			lowerX, lowerP := cdf[i-1].X, cdf[i-1].Value
			upperX, upperP := cdf[i].X, cdf[i].Value
			value := lowerX + (upperX-lowerX)*(p-lowerP)/(upperP-lowerP)
			return &model.QuantileValue{Quantile: p, Value: value}, nil
		}
	}
	return &model.QuantileValue{Quantile: p, Value: cdf[len(cdf)-1].X}, nil
}

// EstimateDistribution fits a density to glucose values after dropping
// non-positive readings and values beyond three standard deviations.
func EstimateDistribution(ctx context.Context, values []float64) (dist *model.Distribution, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("EstimateDistribution recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("cnt", len(values)))
			dist, err = nil, errors.Wrapf(common.ErrorInvalidValue, "panic: %v", r)
		}
	}()

	positive := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			positive = append(positive, v)
		}
	}

	if len(positive) < KdeMinCalculatePointCnt {
		logger.Debug("point too little, skip calculate", zap.Int("cnt", len(positive)))
		return nil, errors.Wrapf(common.ErrorInvalidValue, "%d points", len(positive))
	}

	mean, stddev := stat.MeanStdDev(positive, nil)
	clip := &model.Clip{
		Upper: mean + stddev*ClipUpperZScore,
		Lower: math.Max(mean-stddev*ClipLowerZScore, 0),
	}

	e, err := NewEstimator(positive, nil, KdeBandwidthAdjust, KdeCut, clip)
	if err != nil {
		logger.Error("NewEstimator failed", zap.Error(err))
		return nil, err
	}

	density, bw, err := e.Fit()
	if err != nil {
		logger.Debug("kde fit failed", zap.Error(err))
		return nil, err
	}

	quantiles := map[string]*model.QuantileValue{}
	for _, p := range AllCalculateQuantiles {
		quantile, err := e.Quantile(p)
		if err != nil {
			logger.Error("kde Quantile failed", zap.Error(err), zap.Float64("p", p))
			continue
		}
		quantile.Value = utils.FormatFloat(quantile.Value, 1)
		quantiles[fmt.Sprintf("%v", p)] = quantile
	}

	return &model.Distribution{
		Bandwidth:      utils.FormatFloat(bw, 3),
		Density:        density,
		QuantileValues: quantiles,
	}, nil
}

type pairs struct {
	x, w []float64
}

func (p pairs) Len() int           { return len(p.x) }
func (p pairs) Less(i, j int) bool { return p.x[i] < p.x[j] }
func (p pairs) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.w[i], p.w[j] = p.w[j], p.w[i]
}

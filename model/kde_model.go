package model

import "fmt"

type Clip struct {
	Lower float64
	Upper float64
}

type Density struct {
	X     float64 `json:"x"`
	Value float64 `json:"v"`
}

type Cdf struct {
	X     float64
	Value float64
}

type QuantileValue struct {
	Value    float64 `json:"v"`
	Quantile float64 `json:"q"`
}

// Distribution is the estimated glucose value density of a dataset.
type Distribution struct {
	Bandwidth      float64                   `json:"bandwidth"`
	Density        []Density                 `json:"density"`
	QuantileValues map[string]*QuantileValue `json:"quantiles,omitempty"`
}

func (c *Distribution) GetQuantileValue(value float64) (*QuantileValue, bool) {
	if c == nil || c.QuantileValues == nil {
		return nil, false
	}
	valueStr := fmt.Sprintf("%v", value)
	quantile, ok := c.QuantileValues[valueStr]
	return quantile, ok
}

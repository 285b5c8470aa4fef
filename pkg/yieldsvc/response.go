package yieldsvc

import (
	"errors"
	"fmt"
	"math"

	"github.com/gnames/gnfmt"
)

// TrendPoint is one observation of a trend.
type TrendPoint struct {
	Year  int     `json:"year"`
	Yield float64 `json:"yield"`
}

// UnmarshalJSON accepts the yield either as `yield` or as
// `yield_ton_per_ha`, and a year encoded as a whole float. A point
// without a year or a yield is an error.
func (p *TrendPoint) UnmarshalJSON(data []byte) error {
	var aux struct {
		Year          *float64 `json:"year"`
		Yield         *float64 `json:"yield"`
		YieldTonPerHa *float64 `json:"yield_ton_per_ha"`
	}
	if err := (gnfmt.GNjson{}).Decode(data, &aux); err != nil {
		return err
	}

	if aux.Year == nil {
		return errors.New("trend point has no year")
	}
	if *aux.Year != math.Trunc(*aux.Year) {
		return fmt.Errorf("trend point year %v is not a whole number", *aux.Year)
	}

	switch {
	case aux.Yield != nil:
		p.Yield = *aux.Yield
	case aux.YieldTonPerHa != nil:
		p.Yield = *aux.YieldTonPerHa
	default:
		return fmt.Errorf("trend point of year %d has no yield", int(*aux.Year))
	}
	p.Year = int(*aux.Year)
	return nil
}

// HasYield is true when the reply carries a usable prediction. A missing,
// zero or NaN yield is not usable.
func (r *PredictionResponse) HasYield() bool {
	if r == nil || r.PredictedYield == nil {
		return false
	}
	y := *r.PredictedYield
	return y != 0 && !math.IsNaN(y)
}

// UnitsOrDefault returns units reported by the service or DefaultUnits.
func (r *PredictionResponse) UnitsOrDefault() string {
	if r == nil || r.Units == "" {
		return DefaultUnits
	}
	return r.Units
}

// HasTrend is true when the reply has at least one trend point.
func (r *TrendResponse) HasTrend() bool {
	return r != nil && len(r.Trend) > 0
}

// Series splits the trend into index-aligned years and yields, in the
// order received.
func (r *TrendResponse) Series() ([]int, []float64) {
	if r == nil {
		return nil, nil
	}
	years := make([]int, len(r.Trend))
	yields := make([]float64, len(r.Trend))
	for i, v := range r.Trend {
		years[i] = v.Year
		yields[i] = v.Yield
	}
	return years, yields
}

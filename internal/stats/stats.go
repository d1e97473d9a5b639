// Package stats computes summary statistics and trend direction for one
// analyte across many dated results.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"vitalab/labparse/internal/models"
)

// Trend is the direction of change between the first and last point.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Summary holds the aggregate statistics for a series of chart points.
// With no data, Count is 0 and every other field is 0; the zero average on
// empty input is a deliberately preserved quirk of the original behavior,
// not an error signal. Callers that need to distinguish "no data" must
// check Count.
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
}

// Compute aggregates a series of points. The average is accumulated with
// decimal arithmetic so long series do not drift. The input slice is not
// modified; the median works on a sorted copy.
func Compute(points []models.ChartDataPoint) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	sum := decimal.Zero
	min := points[0].Value
	max := points[0].Value
	values := make([]float64, len(points))
	for i, p := range points {
		sum = sum.Add(decimal.NewFromFloat(p.Value))
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
		values[i] = p.Value
	}

	average, _ := sum.Div(decimal.NewFromInt(int64(len(points)))).Float64()

	sort.Float64s(values)
	mid := len(values) / 2
	var median float64
	if len(values)%2 == 1 {
		median = values[mid]
	} else {
		median = (values[mid-1] + values[mid]) / 2
	}

	return Summary{
		Count:   len(points),
		Average: average,
		Min:     min,
		Max:     max,
		Median:  median,
	}
}

// Direction compares the last point against the first. This is intentionally
// a two-point heuristic rather than a regression; intermediate points do not
// influence the outcome. Fewer than two points is always stable.
func Direction(points []models.ChartDataPoint) Trend {
	if len(points) < 2 {
		return TrendStable
	}
	first := points[0].Value
	last := points[len(points)-1].Value
	switch {
	case last > first:
		return TrendIncreasing
	case last < first:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

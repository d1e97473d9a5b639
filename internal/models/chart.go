package models

import "time"

// ChartDataPoint is a derived, non-persisted value used to plot one analyte
// across many blood tests. Its lifetime is a single chart render.
type ChartDataPoint struct {
	Date   time.Time `json:"date"`
	Value  float64   `json:"value"`
	Status Status    `json:"status"`
}

// ChartPoints collects the dated values of one analyte from a list of blood
// tests, in test order. Tests missing the analyte are skipped.
func ChartPoints(tests []BloodTest, analyteName string) []ChartDataPoint {
	var points []ChartDataPoint
	for _, test := range tests {
		if r, ok := test.ResultFor(analyteName); ok {
			points = append(points, ChartDataPoint{
				Date:   test.Date,
				Value:  r.Value,
				Status: r.Status,
			})
		}
	}
	return points
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartPoints(t *testing.T) {
	day1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []BloodTest{
		{Date: day1, Results: []TestResult{{Name: "Glucose", Value: 95, Status: StatusNormal}}},
		// This panel never measured glucose and must be skipped.
		{Date: day2, Results: []TestResult{{Name: "TSH", Value: 2.1, Status: StatusNormal}}},
		{Date: day3, Results: []TestResult{{Name: "Glucose", Value: 110, Status: StatusHigh}}},
	}

	points := ChartPoints(tests, "Glucose")
	require.Len(t, points, 2)
	assert.Equal(t, day1, points[0].Date)
	assert.Equal(t, 95.0, points[0].Value)
	assert.Equal(t, day3, points[1].Date)
	assert.Equal(t, StatusHigh, points[1].Status)
}

func TestChartPointsNoMatches(t *testing.T) {
	tests := []BloodTest{
		{Results: []TestResult{{Name: "TSH", Value: 2.1}}},
	}
	assert.Empty(t, ChartPoints(tests, "Glucose"))
	assert.Empty(t, ChartPoints(nil, "Glucose"))
}

func TestResultFor(t *testing.T) {
	test := BloodTest{
		Results: []TestResult{
			{Name: "Glucose", Value: 95},
			{Name: "Sodium", Value: 140},
		},
	}

	r, ok := test.ResultFor("Sodium")
	require.True(t, ok)
	assert.Equal(t, 140.0, r.Value)

	_, ok = test.ResultFor("Potassium")
	assert.False(t, ok)
}

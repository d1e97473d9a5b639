// Package classifier assigns a status to a measured value by comparing it
// against the analyte's reference range.
package classifier

import "vitalab/labparse/internal/models"

// Classify compares a value against the definition's reference range.
// Bounds are inclusive: a value equal to either bound is Normal, matching
// the "X-Y" display convention. A missing bound is treated as unbounded on
// that side, so a range defined only as "<150" can never produce Low.
func Classify(value float64, def models.AnalyteDefinition) models.Status {
	if def.Range.Low != nil && value < *def.Range.Low {
		return models.StatusLow
	}
	if def.Range.High != nil && value > *def.Range.High {
		return models.StatusHigh
	}
	return models.StatusNormal
}

// Note returns the clinical note matching the status, or the general
// explanation when the value is normal or no specific note exists.
func Note(status models.Status, def models.AnalyteDefinition) string {
	switch status {
	case models.StatusHigh:
		if def.HighNote != "" {
			return def.HighNote
		}
	case models.StatusLow:
		if def.LowNote != "" {
			return def.LowNote
		}
	}
	return def.Explanation
}

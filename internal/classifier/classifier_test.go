package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vitalab/labparse/internal/models"
)

func ptr(v float64) *float64 {
	return &v
}

func TestClassifyClosedRange(t *testing.T) {
	def := models.AnalyteDefinition{
		Name:  "Glucose",
		Range: models.ReferenceRange{Low: ptr(70), High: ptr(100)},
	}

	assert.Equal(t, models.StatusNormal, Classify(95, def))
	assert.Equal(t, models.StatusLow, Classify(69.9, def))
	assert.Equal(t, models.StatusHigh, Classify(100.1, def))
}

func TestClassifyBoundsAreInclusive(t *testing.T) {
	def := models.AnalyteDefinition{
		Name:  "Glucose",
		Range: models.ReferenceRange{Low: ptr(70), High: ptr(100)},
	}

	// A value exactly on either bound is normal.
	assert.Equal(t, models.StatusNormal, Classify(70, def))
	assert.Equal(t, models.StatusNormal, Classify(100, def))
}

func TestClassifyUpperBoundOnly(t *testing.T) {
	def := models.AnalyteDefinition{
		Name:  "HbA1c",
		Range: models.ReferenceRange{High: ptr(5.7)},
	}

	// With no lower bound the status can never be low.
	assert.Equal(t, models.StatusNormal, Classify(5.7, def))
	assert.Equal(t, models.StatusNormal, Classify(0.1, def))
	assert.Equal(t, models.StatusHigh, Classify(6.5, def))
}

func TestClassifyLowerBoundOnly(t *testing.T) {
	def := models.AnalyteDefinition{
		Name:  "HDL Cholesterol",
		Range: models.ReferenceRange{Low: ptr(40)},
	}

	assert.Equal(t, models.StatusNormal, Classify(40, def))
	assert.Equal(t, models.StatusNormal, Classify(90, def))
	assert.Equal(t, models.StatusLow, Classify(35, def))
}

func TestClassifyUnboundedRange(t *testing.T) {
	def := models.AnalyteDefinition{Name: "Misc"}

	assert.Equal(t, models.StatusNormal, Classify(-100, def))
	assert.Equal(t, models.StatusNormal, Classify(1e9, def))
}

func TestNote(t *testing.T) {
	def := models.AnalyteDefinition{
		Name:        "Glucose",
		Explanation: "Blood sugar level.",
		HighNote:    "May indicate diabetes.",
		LowNote:     "May cause dizziness.",
	}

	assert.Equal(t, "May indicate diabetes.", Note(models.StatusHigh, def))
	assert.Equal(t, "May cause dizziness.", Note(models.StatusLow, def))
	assert.Equal(t, "Blood sugar level.", Note(models.StatusNormal, def))
}

func TestNoteFallsBackToExplanation(t *testing.T) {
	def := models.AnalyteDefinition{
		Name:        "TSH",
		Explanation: "Thyroid stimulating hormone.",
	}

	// No specific notes defined, every status gets the explanation.
	assert.Equal(t, "Thyroid stimulating hormone.", Note(models.StatusHigh, def))
	assert.Equal(t, "Thyroid stimulating hormone.", Note(models.StatusLow, def))
}

package pdfparser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/extractor"
	"vitalab/labparse/internal/models"
	"vitalab/labparse/internal/parsererror"
)

const mockReportText = `Quest Diagnostics
Collected: 2024-03-12
Patient Name: John Doe

Glucose: 95 mg/dL (70-100)
Sodium 150 mEq/L
HbA1c <5.7
`

func newMockParser(text string, err error) *Parser {
	return NewWithExtractor(
		catalog.New(),
		extractor.DuplicateLastWins,
		"Blood Panel",
		NewMockPDFExtractor(text, err),
	)
}

func TestParseWithMockExtractor(t *testing.T) {
	p := newMockParser(mockReportText, nil)

	test, unparsed, err := p.Parse(strings.NewReader("%PDF-1.5 fake content"))
	require.NoError(t, err)

	assert.Equal(t, "Blood Panel", test.TestType)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), test.Date)

	require.Len(t, test.Results, 3)
	assert.Equal(t, "Glucose", test.Results[0].Name)
	assert.Equal(t, models.StatusNormal, test.Results[0].Status)
	assert.Equal(t, "Sodium", test.Results[1].Name)
	assert.Equal(t, models.StatusHigh, test.Results[1].Status)
	assert.Equal(t, "HbA1c", test.Results[2].Name)

	assert.Contains(t, unparsed, "Patient Name: John Doe")
}

func TestParseExtractionFailure(t *testing.T) {
	p := newMockParser("", errors.New("pdftotext not found"))

	_, _, err := p.Parse(strings.NewReader("%PDF-1.5"))
	require.Error(t, err)
	var parseErr *parsererror.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "PDF", parseErr.Parser)
}

func TestParseTextFallsBackToToday(t *testing.T) {
	p := newMockParser("", nil)

	before := time.Now()
	test, unparsed, err := p.ParseText("Glucose 95 mg/dL\n")
	require.NoError(t, err)

	// No collection date in the text, so the date defaults to now.
	assert.False(t, test.Date.Before(before))
	assert.Empty(t, unparsed)
	require.Len(t, test.Results, 1)
}

func TestParseTextEmptyInput(t *testing.T) {
	p := newMockParser("", nil)

	test, unparsed, err := p.ParseText("")
	require.NoError(t, err)
	assert.Empty(t, test.Results)
	assert.Empty(t, unparsed)
}

func TestParseFileMissingInput(t *testing.T) {
	p := newMockParser(mockReportText, nil)

	_, _, err := p.ParseFile("/nonexistent/report.pdf")
	assert.Error(t, err)
}

// Package pdfparser turns a PDF lab report into a BloodTest by extracting
// its text and feeding it through the extraction pipeline.
package pdfparser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/dateutils"
	"vitalab/labparse/internal/extractor"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
	"vitalab/labparse/internal/parsererror"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// extractTextFromPDF shells out to pdftotext. Held in a variable so tests
// can substitute it.
var extractTextFromPDF = func(pdfFile string) (string, error) {
	tempFile := pdfFile + ".txt"

	cmd := exec.Command("pdftotext", "-layout", pdfFile, tempFile)
	if err := cmd.Run(); err != nil {
		log.WithError(err).Error("Failed to run pdftotext command")
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}

	output, err := os.ReadFile(tempFile)
	if err != nil {
		log.WithError(err).Error("Failed to read text output")
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}

	if err := os.Remove(tempFile); err != nil {
		log.WithError(err).Warn("Failed to remove temporary text file",
			logging.Field{Key: logging.FieldFile, Value: tempFile})
	}

	return string(output), nil
}

// Parser wires a PDFExtractor to the extraction pipeline.
type Parser struct {
	extractor *extractor.Extractor
	catalog   *catalog.Catalog
	pdf       PDFExtractor
	testType  string
}

// New creates a Parser using the production pdftotext extractor.
func New(cat *catalog.Catalog, policy extractor.DuplicatePolicy, testType string) *Parser {
	return NewWithExtractor(cat, policy, testType, NewRealPDFExtractor())
}

// NewWithExtractor creates a Parser with a caller-provided PDF extractor.
func NewWithExtractor(cat *catalog.Catalog, policy extractor.DuplicatePolicy, testType string, pdf PDFExtractor) *Parser {
	return &Parser{
		extractor: extractor.New(cat, policy, log),
		catalog:   cat,
		pdf:       pdf,
		testType:  testType,
	}
}

// Parse reads PDF bytes, extracts their text and runs the extraction
// pipeline. The returned BloodTest carries the collection date found in the
// report header (falling back to today) and the results in extraction order.
// Unparsed lines are returned alongside for user review.
func (p *Parser) Parse(r io.Reader) (models.BloodTest, []string, error) {
	tempFile, err := os.CreateTemp("", "*.pdf")
	if err != nil {
		return models.BloodTest{}, nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			log.WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempFile.Name()})
		}
	}()
	defer func() {
		if err := tempFile.Close(); err != nil {
			log.WithError(err).Warn("Failed to close temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempFile.Name()})
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		return models.BloodTest{}, nil, fmt.Errorf("failed to write to temporary PDF file: %w", err)
	}

	text, err := p.pdf.ExtractText(tempFile.Name())
	if err != nil {
		return models.BloodTest{}, nil, &parsererror.ParseError{
			Parser: "PDF",
			Field:  "text extraction",
			Value:  tempFile.Name(),
			Err:    err,
		}
	}

	log.Info("Parsing PDF lab report",
		logging.Field{Key: logging.FieldFile, Value: tempFile.Name()})

	return p.ParseText(text)
}

// ParseFile parses the PDF at the given path.
func (p *Parser) ParseFile(pdfFile string) (models.BloodTest, []string, error) {
	file, err := os.Open(pdfFile)
	if err != nil {
		return models.BloodTest{}, nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: pdfFile})
		}
	}()
	return p.Parse(file)
}

// ParseText runs the pipeline over already-extracted text. This is the pure
// core shared by the PDF and plain-text front-ends.
func (p *Parser) ParseText(text string) (models.BloodTest, []string, error) {
	result := p.extractor.Extract(text)

	test := models.BloodTest{
		Date:     dateutils.CollectionDate(text, time.Now()),
		TestType: p.testType,
		Results:  result.Results,
	}

	log.Info("Extracted lab results from report",
		logging.Field{Key: logging.FieldCount, Value: len(test.Results)},
		logging.Field{Key: "unparsed", Value: len(result.UnparsedLines)})

	return test, result.UnparsedLines, nil
}

// ValidateFormat checks whether a file can be read as a PDF by attempting
// text extraction.
func ValidateFormat(pdfFile string) (bool, error) {
	if _, err := os.Stat(pdfFile); err != nil {
		return false, err
	}
	extractor := NewRealPDFExtractor()
	if _, err := extractor.ExtractText(pdfFile); err != nil {
		log.WithError(err).Error("PDF validation failed")
		return false, nil
	}
	return true, nil
}

// Package exporter writes parsed results out: the canonical JSON history
// document consumed by the importer, and flat CSV for spreadsheets.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter, configurable via config.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteHistoryJSON writes tests as the canonical interchange document.
func WriteHistoryJSON(tests []models.BloodTest, outputFile string) error {
	if tests == nil {
		tests = []models.BloodTest{}
	}

	if err := ensureDir(outputFile); err != nil {
		return err
	}

	data, err := json.MarshalIndent(models.HistoryDocument{Tests: tests}, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling history document: %w", err)
	}
	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		return fmt.Errorf("error writing history document: %w", err)
	}

	log.Info("Wrote history document",
		logging.Field{Key: logging.FieldCount, Value: len(tests)},
		logging.Field{Key: logging.FieldFile, Value: outputFile})
	return nil
}

// csvRow is the flat per-result shape written to CSV. One row per result,
// with the test date and type repeated.
type csvRow struct {
	Date           string  `csv:"date"`
	TestType       string  `csv:"test_type"`
	Name           string  `csv:"name"`
	Value          float64 `csv:"value"`
	Unit           string  `csv:"unit"`
	ReferenceRange string  `csv:"reference_range"`
	Status         string  `csv:"status"`
}

// WriteResultsToCSV flattens tests into one CSV row per result.
func WriteResultsToCSV(tests []models.BloodTest, csvFile string) error {
	if tests == nil {
		return fmt.Errorf("cannot write nil tests to CSV")
	}

	if err := ensureDir(csvFile); err != nil {
		return err
	}

	rows := make([]csvRow, 0)
	for _, test := range tests {
		for _, result := range test.Results {
			rows = append(rows, csvRow{
				Date:           test.Date.Format(time.RFC3339),
				TestType:       test.TestType,
				Name:           result.Name,
				Value:          result.Value,
				Unit:           result.Unit,
				ReferenceRange: result.ReferenceRange,
				Status:         string(result.Status),
			})
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}

	log.Info("Wrote results to CSV file",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldFile, Value: csvFile})
	return nil
}

func ensureDir(outputFile string) error {
	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

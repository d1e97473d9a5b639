// Package common contains shared functionality for command handlers
package common

import (
	"path/filepath"
	"strings"

	"vitalab/labparse/internal/exporter"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
)

// WriteOutput writes tests to the output file, picking the format from the
// file extension: .csv for flat CSV, anything else for the canonical JSON
// history document.
func WriteOutput(tests []models.BloodTest, outputFile string, log logging.Logger) error {
	if strings.EqualFold(filepath.Ext(outputFile), ".csv") {
		return exporter.WriteResultsToCSV(tests, outputFile)
	}
	return exporter.WriteHistoryJSON(tests, outputFile)
}

// ReportUnparsed logs every line that could not be parsed. Unparsed lines are
// diagnostics, not failures; the command still succeeds.
func ReportUnparsed(unparsed []string, log logging.Logger) {
	if len(unparsed) == 0 {
		return
	}
	log.Warn("Some lines could not be parsed",
		logging.Field{Key: logging.FieldCount, Value: len(unparsed)})
	for _, line := range unparsed {
		log.Debug("Unparsed line",
			logging.Field{Key: logging.FieldLine, Value: line})
	}
}

// Package batch processes a directory of lab reports into one combined
// history document. Files are dispatched to the matching front-end by
// extension; a file that fails to parse is logged and skipped so one bad
// report never aborts the run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
)

// DateRange is the span of collection dates covered by a batch.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the range in the format "YYYY-MM-DD_YYYY-MM-DD".
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// TestParser parses one report file into a BloodTest plus the lines or
// entries that could not be handled. Both the PDF and XML front-ends
// satisfy this shape.
type TestParser func(path string) (models.BloodTest, []string, error)

// Processor walks a directory and aggregates every parseable report.
type Processor struct {
	parsers map[string]TestParser // key: lowercased extension including dot
	logger  logging.Logger
}

// NewProcessor creates a Processor with the given per-extension parsers.
func NewProcessor(parsers map[string]TestParser, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{parsers: parsers, logger: logger}
}

// ListReportFiles returns the supported report files directly inside dir,
// sorted by name for deterministic processing order.
func (p *Processor) ListReportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := p.parsers[ext]; ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ProcessDirectory parses every supported report in dir and returns the
// tests sorted chronologically, oldest first. Files that fail to parse are
// skipped with an error log; the error return covers only directory-level
// failures.
func (p *Processor) ProcessDirectory(dir string) ([]models.BloodTest, error) {
	files, err := p.ListReportFiles(dir)
	if err != nil {
		return nil, err
	}

	var tests []models.BloodTest
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file))
		parse := p.parsers[ext]

		p.logger.Debug("Processing report file",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})

		test, unparsed, err := parse(file)
		if err != nil {
			p.logger.WithError(err).Error("Failed to parse report, skipping",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}
		if len(unparsed) > 0 {
			p.logger.Warn("Report contained unparsed content",
				logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)},
				logging.Field{Key: logging.FieldCount, Value: len(unparsed)})
		}
		tests = append(tests, test)
	}

	sortTestsChronologically(tests)
	p.logDuplicatePanels(tests)

	p.logger.Info("Processed report directory",
		logging.Field{Key: "files", Value: len(files)},
		logging.Field{Key: logging.FieldCount, Value: len(tests)})
	return tests, nil
}

// CalculateDateRange returns the span of collection dates across tests.
func CalculateDateRange(tests []models.BloodTest) DateRange {
	if len(tests) == 0 {
		return DateRange{}
	}

	start := tests[0].Date
	end := tests[0].Date
	for _, test := range tests {
		if test.Date.Before(start) {
			start = test.Date
		}
		if test.Date.After(end) {
			end = test.Date
		}
	}
	return DateRange{Start: start, End: end}
}

// GenerateOutputFilename names the combined output after the covered date
// range: "history_{start}_{end}.json", falling back to "history.json" when
// no dates are known.
func GenerateOutputFilename(dateRange DateRange) string {
	if span := dateRange.String(); span != "" {
		return fmt.Sprintf("history_%s.json", span)
	}
	return "history.json"
}

func sortTestsChronologically(tests []models.BloodTest) {
	sort.SliceStable(tests, func(i, j int) bool {
		if !tests[i].Date.Equal(tests[j].Date) {
			return tests[i].Date.Before(tests[j].Date)
		}
		return tests[i].TestType < tests[j].TestType
	})
}

// logDuplicatePanels warns about panels sharing a collection date and test
// type. Duplicates are kept; overlapping exports are a user decision.
func (p *Processor) logDuplicatePanels(tests []models.BloodTest) {
	seen := make(map[string]bool, len(tests))
	for _, test := range tests {
		key := test.Date.Format("2006-01-02") + "|" + test.TestType
		if seen[key] {
			p.logger.Warn("Potential duplicate panel",
				logging.Field{Key: "date", Value: test.Date.Format("2006-01-02")},
				logging.Field{Key: "test_type", Value: test.TestType})
			continue
		}
		seen[key] = true
	}
}

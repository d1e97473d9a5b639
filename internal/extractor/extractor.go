// Package extractor runs the extraction pipeline: raw report text in,
// classified results plus unparsed-line diagnostics out. The pipeline is a
// pure, synchronous transformation; malformed content never produces an
// error, only diagnostics.
package extractor

import (
	"strings"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/classifier"
	"vitalab/labparse/internal/lineparser"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
)

// DuplicatePolicy controls what happens when the same analyte appears more
// than once in one document. Lab reports sometimes repeat a summary line, so
// the default keeps the last occurrence. This is a policy choice, not an
// inferred behavior; it is configurable rather than hard-coded.
type DuplicatePolicy string

const (
	// DuplicateLastWins overwrites an earlier occurrence with the later one.
	DuplicateLastWins DuplicatePolicy = "last-wins"
	// DuplicateFirstWins keeps the first occurrence and ignores later ones.
	DuplicateFirstWins DuplicatePolicy = "first-wins"
)

// Valid reports whether the policy is one of the known values.
func (p DuplicatePolicy) Valid() bool {
	return p == DuplicateLastWins || p == DuplicateFirstWins
}

// Result is the outcome of one extraction run: classified results in
// encounter order plus every non-empty line that failed to parse.
type Result struct {
	Results       []models.TestResult `json:"results"`
	UnparsedLines []string            `json:"unparsed_lines,omitempty"`
}

// Extractor applies the line parser and classifier over a text blob.
// It is stateless across calls; each Extract owns its intermediate state.
type Extractor struct {
	catalog   *catalog.Catalog
	duplicate DuplicatePolicy
	logger    logging.Logger
}

// New creates an Extractor over the given catalog. A zero policy defaults
// to last-wins.
func New(cat *catalog.Catalog, policy DuplicatePolicy, logger logging.Logger) *Extractor {
	if !policy.Valid() {
		policy = DuplicateLastWins
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{catalog: cat, duplicate: policy, logger: logger}
}

// Extract splits the input into lines, parses each one, resolves units,
// classifies values and assembles the final ordered result list. Empty input
// yields zero results and zero unparsed lines, which is a valid non-error
// outcome.
func (e *Extractor) Extract(rawText string) Result {
	var out Result
	index := make(map[string]int) // analyte name -> position in out.Results

	for _, rawLine := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		candidate, reason := lineparser.Parse(line, e.catalog)
		if reason != lineparser.ReasonParsed {
			out.UnparsedLines = append(out.UnparsedLines, line)
			e.logger.Debug("Line not parsed",
				logging.Field{Key: logging.FieldLine, Value: line},
				logging.Field{Key: logging.FieldReason, Value: int(reason)})
			continue
		}

		for _, result := range e.buildResults(candidate) {
			e.appendResult(&out, index, result)
		}
	}

	e.logger.Info("Extraction complete",
		logging.Field{Key: logging.FieldCount, Value: len(out.Results)},
		logging.Field{Key: "unparsed", Value: len(out.UnparsedLines)})
	return out
}

// buildResults turns a candidate into one result, or several for composite
// analytes where each component classifies against its own range.
func (e *Extractor) buildResults(candidate lineparser.Candidate) []models.TestResult {
	if len(candidate.Components) > 0 {
		results := make([]models.TestResult, 0, len(candidate.Components))
		for _, component := range candidate.Components {
			def, ok := e.catalog.Lookup(component.Name)
			if !ok {
				continue
			}
			results = append(results, e.classify(component.Value, candidate.Unit, def))
		}
		return results
	}

	def, ok := e.catalog.Lookup(candidate.Name)
	if !ok {
		return nil
	}
	return []models.TestResult{e.classify(candidate.Value, candidate.Unit, def)}
}

func (e *Extractor) classify(value float64, unit string, def models.AnalyteDefinition) models.TestResult {
	return BuildResult(def, value, unit)
}

// BuildResult classifies a single measurement against its definition and
// assembles the immutable TestResult. The unit falls back to the catalog
// default when the report carried none. Shared by every front-end so status
// stays a pure function of value and range.
func BuildResult(def models.AnalyteDefinition, value float64, unit string) models.TestResult {
	if unit == "" {
		unit = def.Unit
	}
	status := classifier.Classify(value, def)
	return models.TestResult{
		Name:           def.Name,
		Value:          value,
		Unit:           unit,
		ReferenceRange: def.Range.Display(),
		Status:         status,
		Explanation:    classifier.Note(status, def),
	}
}

// appendResult appends in encounter order, applying the duplicate policy
// when the analyte was already seen.
func (e *Extractor) appendResult(out *Result, index map[string]int, result models.TestResult) {
	if pos, seen := index[result.Name]; seen {
		if e.duplicate == DuplicateLastWins {
			out.Results[pos] = result
		}
		return
	}
	index[result.Name] = len(out.Results)
	out.Results = append(out.Results, result)
}

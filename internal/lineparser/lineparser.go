// Package lineparser turns one line of extracted report text into a
// candidate measurement. Parsing is tolerant: colons, inline reference-range
// text and comma decimal separators are all accepted. The parser holds no
// cross-line state; each call is independent.
package lineparser

import (
	"regexp"
	"strconv"
	"strings"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/models"
)

// Reason explains why a line produced no candidate.
type Reason int

const (
	// ReasonParsed means the line yielded a candidate.
	ReasonParsed Reason = iota
	// ReasonNoDigits means the line contains no numeric content at all.
	ReasonNoDigits
	// ReasonNoName means a number was found but no analyte name precedes it,
	// e.g. a bare "70-100" reference-range line.
	ReasonNoName
	// ReasonRangeToken means the only numeric content is a range bound like
	// "70-100", which is reference text rather than a measured value.
	ReasonRangeToken
	// ReasonMalformedNumeric means the numeric token failed to parse.
	ReasonMalformedNumeric
	// ReasonUnknownAnalyte means the name segment does not resolve in the
	// reference catalog, directly or via synonym.
	ReasonUnknownAnalyte
)

// Component is one part of a composite measurement such as blood pressure.
type Component struct {
	Name  string
	Value float64
}

// Candidate is a successfully parsed line before classification.
// For composite analytes Components carries the per-part values and Value
// holds the first component for convenience.
type Candidate struct {
	Name       string
	Value      float64
	Unit       string
	Components []Component
}

var (
	parenRe     = regexp.MustCompile(`\([^)]*\)`)
	digitRe     = regexp.MustCompile(`\d`)
	numericRe   = regexp.MustCompile(`^[<>]?\d+([.,]\d+)?$`)
	compositeRe = regexp.MustCompile(`^\d+([.,]\d+)?(/\d+([.,]\d+)?)+$`)
	rangeRe     = regexp.MustCompile(`^[\d.,]+-[\d.,]+$`)
)

// Parse extracts zero or one candidate from a single line of text. The
// returned Reason is ReasonParsed on success and explains the rejection
// otherwise. Rejected lines are never fatal; the orchestrator collects them
// as unparsed lines for user review.
func Parse(line string, cat *catalog.Catalog) (Candidate, Reason) {
	cleaned := normalizeLine(line)
	if !digitRe.MatchString(cleaned) {
		return Candidate{}, ReasonNoDigits
	}

	tokens := strings.Fields(cleaned)
	valueIdx := -1
	sawRangeToken := false
	for i, token := range tokens {
		if numericRe.MatchString(token) || compositeRe.MatchString(token) {
			valueIdx = i
			break
		}
		if rangeRe.MatchString(token) {
			sawRangeToken = true
			break
		}
	}
	if valueIdx < 0 {
		if sawRangeToken {
			return Candidate{}, ReasonRangeToken
		}
		return Candidate{}, ReasonNoDigits
	}

	name := strings.TrimSpace(strings.Join(tokens[:valueIdx], " "))
	name = strings.Trim(name, ":;,-")
	if name == "" || !startsWithLetter(name) {
		return Candidate{}, ReasonNoName
	}

	canonical, ok := cat.Resolve(name)
	if !ok {
		return Candidate{}, ReasonUnknownAnalyte
	}
	def, _ := cat.Lookup(canonical)

	rawValue := tokens[valueIdx]
	unit := ""
	if valueIdx+1 < len(tokens) {
		if u, ok := canonicalUnit(tokens[valueIdx+1]); ok {
			unit = u
		}
	}

	if def.IsComposite() {
		return parseComposite(canonical, def, rawValue, unit)
	}

	if strings.Contains(rawValue, "/") {
		// A slash value on a scalar analyte is not a measurement.
		return Candidate{}, ReasonMalformedNumeric
	}
	value, err := parseNumber(rawValue)
	if err != nil {
		return Candidate{}, ReasonMalformedNumeric
	}
	return Candidate{Name: canonical, Value: value, Unit: unit}, ReasonParsed
}

// parseComposite splits a value like "120/80" into the per-component values
// declared by the analyte's composite spec.
func parseComposite(canonical string, def models.AnalyteDefinition, rawValue, unit string) (Candidate, Reason) {
	parts := strings.Split(rawValue, def.Composite.Separator)
	if len(parts) != len(def.Composite.Components) {
		return Candidate{}, ReasonMalformedNumeric
	}
	components := make([]Component, len(parts))
	for i, part := range parts {
		value, err := parseNumber(part)
		if err != nil {
			return Candidate{}, ReasonMalformedNumeric
		}
		components[i] = Component{Name: def.Composite.Components[i], Value: value}
	}
	return Candidate{
		Name:       canonical,
		Value:      components[0].Value,
		Unit:       unit,
		Components: components,
	}, ReasonParsed
}

// parseNumber parses a numeric token, accepting a leading "<" or ">"
// (treated as the boundary value, so "<5.7" parses to 5.7) and a comma
// decimal separator.
func parseNumber(token string) (float64, error) {
	token = strings.TrimLeft(token, "<>")
	if strings.Count(token, ",") == 1 && !strings.Contains(token, ".") {
		token = strings.Replace(token, ",", ".", 1)
	}
	token = strings.ReplaceAll(token, ",", "")
	return strconv.ParseFloat(token, 64)
}

// normalizeLine strips parenthesized inline range text, folds en dashes to
// hyphens and guarantees whitespace after colons so that "Glucose:95"
// tokenizes cleanly.
func normalizeLine(line string) string {
	line = parenRe.ReplaceAllString(line, " ")
	line = strings.ReplaceAll(line, "–", "-")
	line = strings.ReplaceAll(line, ":", ": ")
	line = strings.ReplaceAll(line, "\t", " ")
	return strings.TrimSpace(line)
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

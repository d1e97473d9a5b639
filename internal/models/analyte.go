package models

import (
	"fmt"
	"strconv"
)

// ReferenceRange describes the clinically normal interval for an analyte.
// Either bound may be nil, representing open-ended ranges such as "<150"
// (high only) or ">40" (low only). Both bounds are inclusive.
type ReferenceRange struct {
	Low  *float64 `json:"low,omitempty" yaml:"low,omitempty"`
	High *float64 `json:"high,omitempty" yaml:"high,omitempty"`
}

// Bounded reports whether the range has at least one bound defined.
func (r ReferenceRange) Bounded() bool {
	return r.Low != nil || r.High != nil
}

// Display renders the range in the conventional report notation:
// "70-100" for closed ranges, "<150" for upper-bound-only ranges and
// ">40" for lower-bound-only ranges. An unbounded range renders empty.
func (r ReferenceRange) Display() string {
	switch {
	case r.Low != nil && r.High != nil:
		return fmt.Sprintf("%s-%s", formatBound(*r.Low), formatBound(*r.High))
	case r.High != nil:
		return "<" + formatBound(*r.High)
	case r.Low != nil:
		return ">" + formatBound(*r.Low)
	default:
		return ""
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CompositeSpec describes analytes whose report line carries several numeric
// components separated by a delimiter, such as blood pressure "120/80".
// Components names each part in order; every component must itself resolve
// in the catalog so it can be classified against its own range.
type CompositeSpec struct {
	Separator  string   `json:"separator" yaml:"separator"`
	Components []string `json:"components" yaml:"components"`
}

// AnalyteDefinition is the catalog entry for a single measurable blood-test
// component. Definitions are immutable: they are loaded once at startup and
// only read afterwards.
type AnalyteDefinition struct {
	Name        string         `json:"name" yaml:"name"`
	Unit        string         `json:"unit" yaml:"unit"`
	Range       ReferenceRange `json:"range" yaml:"range"`
	Explanation string         `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	HighNote    string         `json:"high_note,omitempty" yaml:"high_note,omitempty"`
	LowNote     string         `json:"low_note,omitempty" yaml:"low_note,omitempty"`
	Composite   *CompositeSpec `json:"composite,omitempty" yaml:"composite,omitempty"`
}

// IsComposite reports whether the analyte expects multiple numeric
// components on a single report line.
func (d AnalyteDefinition) IsComposite() bool {
	return d.Composite != nil && len(d.Composite.Components) > 0
}

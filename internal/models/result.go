package models

// Status classifies a measured value relative to its reference range.
type Status string

const (
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
	StatusLow    Status = "low"
)

// IsValid reports whether s is one of the known status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusNormal, StatusHigh, StatusLow:
		return true
	}
	return false
}

// TestResult is one classified measurement extracted from a lab report.
// Instances are immutable after creation; Status is always a pure function
// of Value and the catalog range recorded in ReferenceRange.
type TestResult struct {
	Name           string  `json:"name" yaml:"name" csv:"name"`
	Value          float64 `json:"value" yaml:"value" csv:"value"`
	Unit           string  `json:"unit,omitempty" yaml:"unit,omitempty" csv:"unit"`
	ReferenceRange string  `json:"reference_range,omitempty" yaml:"reference_range,omitempty" csv:"reference_range"`
	Status         Status  `json:"status" yaml:"status" csv:"status"`
	Explanation    string  `json:"explanation,omitempty" yaml:"explanation,omitempty" csv:"explanation"`
}

package models

import "time"

// BloodTest is one lab panel event: a collection date, a test-type label and
// the ordered list of results extracted or entered for that panel. Result
// order is insertion order, which for parsed reports equals extraction order.
// Saved panels are deleted wholesale; there is no partial mutation after save.
type BloodTest struct {
	Date     time.Time    `json:"date" yaml:"date"`
	TestType string       `json:"test_type" yaml:"test_type"`
	Results  []TestResult `json:"results" yaml:"results"`
}

// ResultFor returns the result for the named analyte, if present.
func (b BloodTest) ResultFor(name string) (TestResult, bool) {
	for _, r := range b.Results {
		if r.Name == name {
			return r, true
		}
	}
	return TestResult{}, false
}

// HistoryDocument is the persisted interchange shape: a list of BloodTest
// records with ISO-8601 dates. It is what the settings export produces and
// what the importer reads back.
type HistoryDocument struct {
	Tests []BloodTest `json:"tests" yaml:"tests"`
}

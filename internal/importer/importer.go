// Package importer reads previously exported histories back in. Instead of
// trying one JSON shape after another and relying on decode failures, the
// importer inspects the top-level shape once and dispatches to a named
// importer for that schema. Each importer returns typed results or a typed
// error.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/classifier"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
)

// Schema identifies a recognized top-level JSON shape.
type Schema string

const (
	// SchemaHistory is the canonical export: {"tests": [...]}.
	SchemaHistory Schema = "history"
	// SchemaTestList is a bare array of BloodTest objects.
	SchemaTestList Schema = "test-list"
	// SchemaSingleTest is one BloodTest object.
	SchemaSingleTest Schema = "single-test"
	// SchemaResultList is a bare array of result objects, wrapped into a
	// single test dated at import time.
	SchemaResultList Schema = "result-list"
	// SchemaUnknown is anything else.
	SchemaUnknown Schema = "unknown"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Importer turns exported JSON documents into BloodTest lists.
type Importer struct {
	catalog *catalog.Catalog
}

// New creates an Importer over the given catalog.
func New(cat *catalog.Catalog) *Importer {
	return &Importer{catalog: cat}
}

// DetectSchema inspects the top-level JSON shape without decoding the whole
// document. It never guesses by trial decode; unrecognized shapes come back
// as SchemaUnknown.
func DetectSchema(data []byte) Schema {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return SchemaUnknown
	}

	switch trimmed[0] {
	case '{':
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keys); err != nil {
			return SchemaUnknown
		}
		if _, ok := keys["tests"]; ok {
			return SchemaHistory
		}
		if _, ok := keys["results"]; ok {
			return SchemaSingleTest
		}
		return SchemaUnknown
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return SchemaUnknown
		}
		if len(elements) == 0 {
			return SchemaTestList
		}
		var first map[string]json.RawMessage
		if err := json.Unmarshal(elements[0], &first); err != nil {
			return SchemaUnknown
		}
		if _, ok := first["results"]; ok {
			return SchemaTestList
		}
		if _, ok := first["value"]; ok {
			return SchemaResultList
		}
		return SchemaUnknown
	default:
		return SchemaUnknown
	}
}

// Import detects the document schema and dispatches to the matching
// importer. Statuses of resolvable analytes are recomputed against the
// catalog so a tampered or stale export can never disagree with the range
// that will be displayed.
func (i *Importer) Import(data []byte) ([]models.BloodTest, Schema, error) {
	schema := DetectSchema(data)
	log.Debug("Detected import schema",
		logging.Field{Key: logging.FieldSchema, Value: string(schema)})

	var (
		tests []models.BloodTest
		err   error
	)
	switch schema {
	case SchemaHistory:
		tests, err = importHistory(data)
	case SchemaTestList:
		tests, err = importTestList(data)
	case SchemaSingleTest:
		tests, err = importSingleTest(data)
	case SchemaResultList:
		tests, err = importResultList(data)
	default:
		return nil, SchemaUnknown, fmt.Errorf("unrecognized import document shape")
	}
	if err != nil {
		return nil, schema, err
	}

	for ti := range tests {
		i.reclassify(&tests[ti])
	}

	log.Info("Imported blood tests",
		logging.Field{Key: logging.FieldCount, Value: len(tests)},
		logging.Field{Key: logging.FieldSchema, Value: string(schema)})
	return tests, schema, nil
}

func importHistory(data []byte) ([]models.BloodTest, error) {
	var doc models.HistoryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding history document: %w", err)
	}
	return doc.Tests, nil
}

func importTestList(data []byte) ([]models.BloodTest, error) {
	var tests []models.BloodTest
	if err := json.Unmarshal(data, &tests); err != nil {
		return nil, fmt.Errorf("decoding test list: %w", err)
	}
	return tests, nil
}

func importSingleTest(data []byte) ([]models.BloodTest, error) {
	var test models.BloodTest
	if err := json.Unmarshal(data, &test); err != nil {
		return nil, fmt.Errorf("decoding single test: %w", err)
	}
	return []models.BloodTest{test}, nil
}

func importResultList(data []byte) ([]models.BloodTest, error) {
	var results []models.TestResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decoding result list: %w", err)
	}
	return []models.BloodTest{{
		Date:     time.Now(),
		TestType: "Imported",
		Results:  results,
	}}, nil
}

// reclassify recomputes the status of every result whose analyte resolves
// in the catalog. Unresolvable names keep their stored status; they are a
// supported fallback, not an error.
func (i *Importer) reclassify(test *models.BloodTest) {
	for ri := range test.Results {
		result := &test.Results[ri]
		def, ok := i.catalog.Lookup(result.Name)
		if !ok {
			log.Debug("Imported result does not resolve in catalog",
				logging.Field{Key: logging.FieldAnalyte, Value: result.Name})
			continue
		}
		recomputed := classifier.Classify(result.Value, def)
		if recomputed != result.Status {
			log.Warn("Imported status disagreed with recomputation; corrected",
				logging.Field{Key: logging.FieldAnalyte, Value: result.Name},
				logging.Field{Key: logging.FieldValue, Value: result.Value},
				logging.Field{Key: logging.FieldStatus, Value: string(recomputed)})
			result.Status = recomputed
		}
		if result.ReferenceRange == "" {
			result.ReferenceRange = def.Range.Display()
		}
		if result.Unit == "" {
			result.Unit = def.Unit
		}
	}
}

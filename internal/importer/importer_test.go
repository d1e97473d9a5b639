package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/models"
)

func TestDetectSchema(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Schema
	}{
		{"history document", `{"tests": []}`, SchemaHistory},
		{"single test", `{"date": "2024-03-12T00:00:00Z", "results": []}`, SchemaSingleTest},
		{"test list", `[{"date": "2024-03-12T00:00:00Z", "results": []}]`, SchemaTestList},
		{"result list", `[{"name": "Glucose", "value": 95}]`, SchemaResultList},
		{"empty array", `[]`, SchemaTestList},
		{"unrelated object", `{"foo": 1}`, SchemaUnknown},
		{"unrelated array", `[{"foo": 1}]`, SchemaUnknown},
		{"scalar", `42`, SchemaUnknown},
		{"empty input", ``, SchemaUnknown},
		{"malformed", `{"tests": `, SchemaUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSchema([]byte(tt.data)))
		})
	}
}

func TestImportHistoryDocument(t *testing.T) {
	i := New(catalog.New())

	data := `{
		"tests": [
			{
				"date": "2024-03-12T00:00:00Z",
				"test_type": "Blood Panel",
				"results": [
					{"name": "Glucose", "value": 95, "unit": "mg/dL", "reference_range": "70-100", "status": "normal"}
				]
			}
		]
	}`

	tests, schema, err := i.Import([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, SchemaHistory, schema)
	require.Len(t, tests, 1)
	assert.Equal(t, "Blood Panel", tests[0].TestType)
	require.Len(t, tests[0].Results, 1)
	assert.Equal(t, models.StatusNormal, tests[0].Results[0].Status)
}

func TestImportRecomputesStatus(t *testing.T) {
	i := New(catalog.New())

	// Stored status claims normal, but 150 is above the sodium range.
	data := `{
		"tests": [
			{
				"date": "2024-03-12T00:00:00Z",
				"test_type": "Blood Panel",
				"results": [
					{"name": "Sodium", "value": 150, "status": "normal"}
				]
			}
		]
	}`

	tests, _, err := i.Import([]byte(data))
	require.NoError(t, err)
	result := tests[0].Results[0]
	assert.Equal(t, models.StatusHigh, result.Status)
	// Missing unit and range are filled from the catalog.
	assert.Equal(t, "mEq/L", result.Unit)
	assert.Equal(t, "135-145", result.ReferenceRange)
}

func TestImportKeepsUnresolvableResults(t *testing.T) {
	i := New(catalog.New())

	data := `{
		"tests": [
			{
				"date": "2024-03-12T00:00:00Z",
				"results": [
					{"name": "Obscure Marker", "value": 3.2, "status": "high"}
				]
			}
		]
	}`

	tests, _, err := i.Import([]byte(data))
	require.NoError(t, err)
	result := tests[0].Results[0]
	// Unknown analytes keep their stored status untouched.
	assert.Equal(t, models.StatusHigh, result.Status)
}

func TestImportResultList(t *testing.T) {
	i := New(catalog.New())

	data := `[
		{"name": "Glucose", "value": 95},
		{"name": "TSH", "value": 2.1}
	]`

	before := time.Now()
	tests, schema, err := i.Import([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, SchemaResultList, schema)
	require.Len(t, tests, 1)
	assert.Len(t, tests[0].Results, 2)
	assert.False(t, tests[0].Date.Before(before))
}

func TestImportSingleTest(t *testing.T) {
	i := New(catalog.New())

	data := `{"date": "2024-03-12T00:00:00Z", "test_type": "Panel", "results": []}`
	tests, schema, err := i.Import([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, SchemaSingleTest, schema)
	require.Len(t, tests, 1)
	assert.Equal(t, "Panel", tests[0].TestType)
}

func TestImportUnknownShape(t *testing.T) {
	i := New(catalog.New())

	_, schema, err := i.Import([]byte(`{"foo": "bar"}`))
	assert.Error(t, err)
	assert.Equal(t, SchemaUnknown, schema)
}

func TestImportMalformedDocument(t *testing.T) {
	i := New(catalog.New())

	_, _, err := i.Import([]byte(`{"tests": [{]`))
	assert.Error(t, err)
}

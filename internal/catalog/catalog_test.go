package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalab/labparse/internal/models"
	"vitalab/labparse/internal/parsererror"
)

func TestLookupCanonicalName(t *testing.T) {
	cat := New()

	def, ok := cat.Lookup("Glucose")
	require.True(t, ok)
	assert.Equal(t, "Glucose", def.Name)
	assert.Equal(t, "mg/dL", def.Unit)
	require.NotNil(t, def.Range.Low)
	require.NotNil(t, def.Range.High)
	assert.Equal(t, 70.0, *def.Range.Low)
	assert.Equal(t, 100.0, *def.Range.High)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	cat := New()

	for _, name := range []string{"glucose", "GLUCOSE", "Glucose", "  glucose  "} {
		def, ok := cat.Lookup(name)
		assert.True(t, ok, "lookup failed for %q", name)
		assert.Equal(t, "Glucose", def.Name)
	}
}

func TestLookupViaSynonym(t *testing.T) {
	cat := New()

	tests := map[string]string{
		"wbc":      "White Blood Cells",
		"hgb":      "Hemoglobin",
		"a1c":      "HbA1c",
		"bp":       "Blood Pressure",
		"sed rate": "ESR",
	}
	for alias, canonical := range tests {
		def, ok := cat.Lookup(alias)
		assert.True(t, ok, "lookup failed for %q", alias)
		assert.Equal(t, canonical, def.Name)
	}
}

func TestLookupStripsPunctuation(t *testing.T) {
	cat := New()

	def, ok := cat.Lookup("Glucose:")
	require.True(t, ok)
	assert.Equal(t, "Glucose", def.Name)
}

func TestLookupUnknown(t *testing.T) {
	cat := New()

	_, ok := cat.Lookup("Midichlorians")
	assert.False(t, ok)
}

func TestMustLookupReturnsTypedError(t *testing.T) {
	cat := New()

	_, err := cat.MustLookup("Midichlorians")
	require.Error(t, err)
	var unknownErr *parsererror.UnknownAnalyteError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Midichlorians", unknownErr.Name)
}

func TestResolve(t *testing.T) {
	cat := New()

	canonical, ok := cat.Resolve("sgpt")
	require.True(t, ok)
	assert.Equal(t, "ALT", canonical)

	_, ok = cat.Resolve("not a test")
	assert.False(t, ok)
}

func TestMergeOverridesAndExtends(t *testing.T) {
	cat := New()

	low, high := 60.0, 110.0
	cat.Merge([]models.AnalyteDefinition{
		{
			// Override the built-in glucose range.
			Name:  "Glucose",
			Unit:  "mg/dL",
			Range: models.ReferenceRange{Low: &low, High: &high},
		},
		{
			Name: "Lipase",
			Unit: "U/L",
		},
	}, map[string]string{"lps": "Lipase"})

	def, ok := cat.Lookup("Glucose")
	require.True(t, ok)
	assert.Equal(t, 60.0, *def.Range.Low)

	def, ok = cat.Lookup("lps")
	require.True(t, ok)
	assert.Equal(t, "Lipase", def.Name)
}

func TestDefinitionsPreserveRegistrationOrder(t *testing.T) {
	cat := New()

	defs := cat.Definitions()
	require.NotEmpty(t, defs)
	assert.Equal(t, "Glucose", defs[0].Name)
}

func TestCompositeDefinition(t *testing.T) {
	cat := New()

	def, ok := cat.Lookup("Blood Pressure")
	require.True(t, ok)
	require.True(t, def.IsComposite())
	assert.Equal(t, "/", def.Composite.Separator)
	assert.Equal(t, []string{"Systolic", "Diastolic"}, def.Composite.Components)
}

func TestSynonymsFor(t *testing.T) {
	cat := New()

	synonyms := cat.SynonymsFor("Hemoglobin")
	assert.Contains(t, synonyms, "hgb")
}

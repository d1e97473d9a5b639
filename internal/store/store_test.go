package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAnalytesWithTopLevelKey(t *testing.T) {
	tempDir := t.TempDir()
	analytesFile := filepath.Join(tempDir, "analytes.yaml")
	content := `analytes:
  - name: Glucose
    unit: mg/dL
    range:
      low: 60
      high: 110
  - name: Lipase
    unit: U/L
`
	require.NoError(t, os.WriteFile(analytesFile, []byte(content), 0600))

	s := NewCatalogStore(analytesFile, "")
	defs, err := s.LoadAnalytes()
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "Glucose", defs[0].Name)
	require.NotNil(t, defs[0].Range.Low)
	assert.Equal(t, 60.0, *defs[0].Range.Low)
	assert.Equal(t, "Lipase", defs[1].Name)
}

func TestLoadAnalytesBareList(t *testing.T) {
	tempDir := t.TempDir()
	analytesFile := filepath.Join(tempDir, "analytes.yaml")
	content := `- name: Amylase
  unit: U/L
`
	require.NoError(t, os.WriteFile(analytesFile, []byte(content), 0600))

	s := NewCatalogStore(analytesFile, "")
	defs, err := s.LoadAnalytes()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Amylase", defs[0].Name)
}

func TestLoadAnalytesMissingFile(t *testing.T) {
	s := NewCatalogStore(filepath.Join(t.TempDir(), "missing.yaml"), "")

	defs, err := s.LoadAnalytes()
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadSynonyms(t *testing.T) {
	tempDir := t.TempDir()
	synonymsFile := filepath.Join(tempDir, "synonyms.yaml")
	content := `blood sugar: Glucose
sed rate: ESR
`
	require.NoError(t, os.WriteFile(synonymsFile, []byte(content), 0600))

	s := NewCatalogStore("", synonymsFile)
	mappings, err := s.LoadSynonyms()
	require.NoError(t, err)
	assert.Equal(t, "Glucose", mappings["blood sugar"])
	assert.Equal(t, "ESR", mappings["sed rate"])
}

func TestLoadSynonymsMissingFile(t *testing.T) {
	s := NewCatalogStore("", filepath.Join(t.TempDir(), "missing.yaml"))

	mappings, err := s.LoadSynonyms()
	require.NoError(t, err)
	assert.Empty(t, mappings)
}

func TestSaveSynonymsRoundTrip(t *testing.T) {
	synonymsFile := filepath.Join(t.TempDir(), "synonyms.yaml")
	s := NewCatalogStore("", synonymsFile)

	in := map[string]string{"blood sugar": "Glucose"}
	require.NoError(t, s.SaveSynonyms(in))

	out, err := s.LoadSynonyms()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadSynonymsMalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	synonymsFile := filepath.Join(tempDir, "synonyms.yaml")
	require.NoError(t, os.WriteFile(synonymsFile, []byte("- just\n- a\n- list\n"), 0600))

	s := NewCatalogStore("", synonymsFile)
	_, err := s.LoadSynonyms()
	assert.Error(t, err)
}

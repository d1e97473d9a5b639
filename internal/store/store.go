// Package store loads user-provided catalog data from YAML files: analyte
// definition overrides and extra synonym mappings. Missing files are not an
// error; the built-in catalog simply stands alone.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// CatalogStore manages loading of catalog override data.
type CatalogStore struct {
	AnalytesFile string
	SynonymsFile string
}

// NewCatalogStore creates a store for catalog-related data.
func NewCatalogStore(analytesFile, synonymsFile string) *CatalogStore {
	return &CatalogStore{
		AnalytesFile: analytesFile,
		SynonymsFile: synonymsFile,
	}
}

// analytesDocument is the YAML shape of the analyte override file:
//
//	analytes:
//	  - name: Glucose
//	    unit: mg/dL
//	    range: {low: 70, high: 100}
type analytesDocument struct {
	Analytes []models.AnalyteDefinition `yaml:"analytes"`
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CatalogStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "labparse", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadAnalytes loads analyte definition overrides from the YAML file.
// A missing file yields an empty slice, not an error.
func (s *CatalogStore) LoadAnalytes() ([]models.AnalyteDefinition, error) {
	filename := s.AnalytesFile
	if filename == "" {
		filename = "analytes.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Analyte override file not found",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return []models.AnalyteDefinition{}, nil
		}
		return nil, fmt.Errorf("error resolving analytes file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading analytes file: %w", err)
	}

	var doc analytesDocument
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Analytes) > 0 {
		log.Debug("Loaded analyte overrides",
			logging.Field{Key: logging.FieldCount, Value: len(doc.Analytes)},
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return doc.Analytes, nil
	}

	// Fallback: a bare list without the top-level key.
	var defs []models.AnalyteDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("error parsing analytes file: %w", err)
	}
	log.Debug("Loaded analyte overrides from bare list",
		logging.Field{Key: logging.FieldCount, Value: len(defs)},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return defs, nil
}

// LoadSynonyms loads extra synonym mappings (alias -> canonical name).
// A missing file yields an empty map, not an error.
func (s *CatalogStore) LoadSynonyms() (map[string]string, error) {
	filename := s.SynonymsFile
	if filename == "" {
		filename = "synonyms.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Synonyms file not found",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error resolving synonyms file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading synonyms file: %w", err)
	}

	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing synonyms file: %w", err)
	}

	log.Debug("Loaded synonym mappings",
		logging.Field{Key: logging.FieldCount, Value: len(mappings)},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return mappings, nil
}

// SaveSynonyms writes synonym mappings back to YAML. Used when the resolver
// learns a new alias so it persists across runs.
func (s *CatalogStore) SaveSynonyms(mappings map[string]string) error {
	filename := s.SynonymsFile
	if filename == "" {
		filename = "synonyms.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil && err != os.ErrNotExist {
		return fmt.Errorf("error resolving synonyms file: %w", err)
	}
	if err == os.ErrNotExist {
		if !filepath.IsAbs(filename) {
			filePath = filepath.Join("config", filename)
		} else {
			filePath = filename
		}
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("error marshaling synonyms: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing synonyms: %w", err)
	}

	log.Debug("Saved synonym mappings",
		logging.Field{Key: logging.FieldCount, Value: len(mappings)},
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return nil
}

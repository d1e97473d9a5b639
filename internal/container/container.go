// Package container provides dependency injection for the labparse
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/config"
	"vitalab/labparse/internal/exporter"
	"vitalab/labparse/internal/extractor"
	"vitalab/labparse/internal/importer"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/pdfparser"
	"vitalab/labparse/internal/resolver"
	"vitalab/labparse/internal/store"
	"vitalab/labparse/internal/xmlparser"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation; fields are private and only
// reachable through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	catalog   *catalog.Catalog
	store     *store.CatalogStore
	extractor *extractor.Extractor
	pdf       *pdfparser.Parser
	xml       *xmlparser.Parser
	importer  *importer.Importer
	resolver  *resolver.Resolver
	aiClose   func() error
	learner   *resolver.SynonymLearner
}

// NewContainer creates and wires all application dependencies from the
// configuration: catalog seeded with built-ins plus YAML overrides, the
// extraction pipeline, both file front-ends, the importer and the resolver
// chain. The AI strategy is attached only when enabled and keyed.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	catalogStore := store.NewCatalogStore(
		cfg.Catalog.AnalytesFile,
		cfg.Catalog.SynonymsFile,
	)

	cat := catalog.New()
	overrides, err := catalogStore.LoadAnalytes()
	if err != nil {
		return nil, fmt.Errorf("loading analyte overrides: %w", err)
	}
	synonyms, err := catalogStore.LoadSynonyms()
	if err != nil {
		return nil, fmt.Errorf("loading synonyms: %w", err)
	}
	cat.Merge(overrides, synonyms)

	policy := extractor.DuplicatePolicy(cfg.Extraction.DuplicatePolicy)
	ext := extractor.New(cat, policy, logger)

	strategies := []resolver.Strategy{resolver.NewCatalogStrategy(cat)}
	var aiClose func() error
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		aiStrategy, err := resolver.NewAIStrategy(
			context.Background(),
			cat,
			cfg.AI.APIKey,
			cfg.AI.Model,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("creating AI strategy: %w", err)
		}
		strategies = append(strategies, aiStrategy)
		aiClose = aiStrategy.Close
		logger.Info("AI analyte resolution enabled")
	} else {
		logger.Info("AI analyte resolution disabled")
	}

	if cfg.CSV.Delimiter != "" {
		exporter.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
	}

	c := &Container{
		logger:    logger,
		config:    cfg,
		catalog:   cat,
		store:     catalogStore,
		extractor: ext,
		pdf:       pdfparser.New(cat, policy, cfg.Extraction.TestType),
		xml:       xmlparser.New(cat),
		importer:  importer.New(cat),
		resolver:  resolver.New(logger, strategies...),
		aiClose:   aiClose,
		learner:   resolver.NewSynonymLearner(catalogStore, synonyms, logger),
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: logging.FieldCount, Value: len(cat.Definitions())},
		logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled})
	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCatalog returns the merged analyte catalog.
func (c *Container) GetCatalog() *catalog.Catalog {
	return c.catalog
}

// GetStore returns the catalog data store.
func (c *Container) GetStore() *store.CatalogStore {
	return c.store
}

// GetExtractor returns the plain-text extraction pipeline.
func (c *Container) GetExtractor() *extractor.Extractor {
	return c.extractor
}

// GetPDFParser returns the PDF report parser.
func (c *Container) GetPDFParser() *pdfparser.Parser {
	return c.pdf
}

// GetXMLParser returns the XML lab-export parser.
func (c *Container) GetXMLParser() *xmlparser.Parser {
	return c.xml
}

// GetImporter returns the JSON document importer.
func (c *Container) GetImporter() *importer.Importer {
	return c.importer
}

// GetResolver returns the analyte-name resolver chain.
func (c *Container) GetResolver() *resolver.Resolver {
	return c.resolver
}

// GetLearner returns the synonym learner shared by commands.
func (c *Container) GetLearner() *resolver.SynonymLearner {
	return c.learner
}

// Close flushes learned synonyms and releases the AI client if one exists.
func (c *Container) Close() error {
	if err := c.learner.Save(); err != nil {
		c.logger.WithError(err).Warn("Failed to save learned synonyms")
	}
	if c.aiClose != nil {
		if err := c.aiClose(); err != nil {
			return err
		}
	}
	c.logger.Info("Container closed")
	return nil
}

package resolver

import (
	"context"
	"strings"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/parsererror"
)

// Resolver runs a chain of strategies over a raw name segment.
type Resolver struct {
	strategies []Strategy
	logger     logging.Logger
}

// New creates a Resolver with the given strategy chain.
func New(logger logging.Logger, strategies ...Strategy) *Resolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Resolver{strategies: strategies, logger: logger}
}

// Resolve tries each strategy in order and returns the first successful
// canonical name. Strategy errors are logged and treated as "not resolved"
// so one failing backend never breaks the chain.
func (r *Resolver) Resolve(ctx context.Context, rawName string) (string, error) {
	if strings.TrimSpace(rawName) == "" {
		return "", &parsererror.UnknownAnalyteError{Name: rawName}
	}

	for _, strategy := range r.strategies {
		canonical, found, err := strategy.Resolve(ctx, rawName)
		if err != nil {
			r.logger.WithError(err).Warn("Resolution strategy failed",
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: logging.FieldAnalyte, Value: rawName})
			continue
		}
		if found {
			r.logger.Debug("Analyte name resolved",
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: logging.FieldAnalyte, Value: rawName},
				logging.Field{Key: "canonical", Value: canonical})
			return canonical, nil
		}
	}

	return "", &parsererror.UnknownAnalyteError{Name: rawName}
}

// CatalogStrategy resolves names through the catalog's definitions and
// synonym table. This is the strategy every deployment runs first.
type CatalogStrategy struct {
	catalog *catalog.Catalog
}

// NewCatalogStrategy creates a CatalogStrategy.
func NewCatalogStrategy(cat *catalog.Catalog) *CatalogStrategy {
	return &CatalogStrategy{catalog: cat}
}

// Name returns the name of this strategy for logging and debugging.
func (s *CatalogStrategy) Name() string {
	return "Catalog"
}

// Resolve resolves through the catalog; it never errors.
func (s *CatalogStrategy) Resolve(_ context.Context, rawName string) (string, bool, error) {
	canonical, ok := s.catalog.Resolve(rawName)
	return canonical, ok, nil
}

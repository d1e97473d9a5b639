package resolver

import (
	"sync"

	"vitalab/labparse/internal/logging"
	"vitalab/labparse/internal/store"
)

// SynonymLearner records alias -> canonical mappings discovered at runtime
// (typically by the AI strategy) so future runs resolve them without another
// API call. Mappings accumulate in memory and are flushed once via Save.
type SynonymLearner struct {
	store    *store.CatalogStore
	mu       sync.Mutex
	learned  map[string]string
	existing map[string]string
	dirty    bool
	logger   logging.Logger
}

// NewSynonymLearner creates a learner over the given store. The existing
// mappings seed the save set so a flush never drops user-maintained entries.
func NewSynonymLearner(st *store.CatalogStore, existing map[string]string, logger logging.Logger) *SynonymLearner {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if existing == nil {
		existing = map[string]string{}
	}
	return &SynonymLearner{
		store:    st,
		learned:  map[string]string{},
		existing: existing,
		logger:   logger,
	}
}

// Record remembers that alias resolves to canonical. Aliases already present
// in the existing mappings are left alone.
func (l *SynonymLearner) Record(alias, canonical string) {
	if alias == "" || canonical == "" || alias == canonical {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.existing[alias]; ok {
		return
	}
	if l.learned[alias] == canonical {
		return
	}
	l.learned[alias] = canonical
	l.dirty = true
	l.logger.Debug("Learned new analyte synonym",
		logging.Field{Key: logging.FieldAnalyte, Value: alias},
		logging.Field{Key: "canonical", Value: canonical})
}

// Save persists the merged mappings when anything new was learned.
func (l *SynonymLearner) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.dirty {
		return nil
	}

	merged := make(map[string]string, len(l.existing)+len(l.learned))
	for alias, canonical := range l.existing {
		merged[alias] = canonical
	}
	for alias, canonical := range l.learned {
		merged[alias] = canonical
	}

	if err := l.store.SaveSynonyms(merged); err != nil {
		return err
	}
	l.dirty = false
	l.logger.Info("Saved learned analyte synonyms",
		logging.Field{Key: logging.FieldCount, Value: len(l.learned)})
	return nil
}

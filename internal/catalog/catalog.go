// Package catalog holds the immutable reference catalog: the mapping from
// analyte name to unit, normal range, and explanatory text. The catalog is
// built once at startup and only read afterwards; lookups are pure.
package catalog

import (
	"sort"
	"strings"

	"vitalab/labparse/internal/models"
	"vitalab/labparse/internal/parsererror"
)

// Catalog maps analyte names (and their synonyms) to definitions.
// Matching is case-insensitive and tolerant of surrounding punctuation.
type Catalog struct {
	definitions map[string]models.AnalyteDefinition // key: lowercased canonical name
	synonyms    map[string]string                   // key: lowercased alias, value: canonical name
	order       []string                            // canonical names in registration order
}

// New builds a catalog containing the built-in analyte definitions and
// synonym table.
func New() *Catalog {
	c := &Catalog{
		definitions: make(map[string]models.AnalyteDefinition, len(builtinDefinitions)),
		synonyms:    make(map[string]string, len(builtinSynonyms)),
	}
	for _, def := range builtinDefinitions {
		c.register(def)
	}
	for alias, canonical := range builtinSynonyms {
		c.synonyms[normalizeName(alias)] = canonical
	}
	return c
}

// register adds or replaces a definition under its canonical name.
func (c *Catalog) register(def models.AnalyteDefinition) {
	key := normalizeName(def.Name)
	if _, exists := c.definitions[key]; !exists {
		c.order = append(c.order, def.Name)
	}
	c.definitions[key] = def
}

// Merge overlays additional definitions and synonyms, typically loaded from
// a user override file. Later entries replace built-ins with the same name.
func (c *Catalog) Merge(defs []models.AnalyteDefinition, synonyms map[string]string) {
	for _, def := range defs {
		c.register(def)
	}
	for alias, canonical := range synonyms {
		c.synonyms[normalizeName(alias)] = canonical
	}
}

// Lookup returns the definition for the given analyte name, resolving
// synonyms. The boolean reports whether the name was found.
func (c *Catalog) Lookup(name string) (models.AnalyteDefinition, bool) {
	canonical, ok := c.Resolve(name)
	if !ok {
		return models.AnalyteDefinition{}, false
	}
	def, ok := c.definitions[normalizeName(canonical)]
	return def, ok
}

// MustLookup is Lookup returning an UnknownAnalyteError instead of a boolean.
func (c *Catalog) MustLookup(name string) (models.AnalyteDefinition, error) {
	def, ok := c.Lookup(name)
	if !ok {
		return models.AnalyteDefinition{}, &parsererror.UnknownAnalyteError{Name: name}
	}
	return def, nil
}

// Resolve maps a raw name segment to the canonical analyte name, checking
// the definitions first and the synonym table second.
func (c *Catalog) Resolve(name string) (string, bool) {
	key := normalizeName(name)
	if key == "" {
		return "", false
	}
	if def, ok := c.definitions[key]; ok {
		return def.Name, true
	}
	if canonical, ok := c.synonyms[key]; ok {
		if def, ok := c.definitions[normalizeName(canonical)]; ok {
			return def.Name, true
		}
	}
	return "", false
}

// Definitions returns all definitions in registration order.
func (c *Catalog) Definitions() []models.AnalyteDefinition {
	defs := make([]models.AnalyteDefinition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.definitions[normalizeName(name)])
	}
	return defs
}

// Names returns the sorted canonical analyte names.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	sort.Strings(names)
	return names
}

// SynonymsFor returns the aliases registered for a canonical name.
func (c *Catalog) SynonymsFor(canonical string) []string {
	var aliases []string
	key := normalizeName(canonical)
	for alias, target := range c.synonyms {
		if normalizeName(target) == key {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// normalizeName lowercases a name and strips surrounding punctuation and
// redundant interior whitespace so that "Glucose:", "glucose" and
// "GLUCOSE " all resolve to the same key.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, ":;,.-*")
	name = strings.TrimSpace(name)
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Package dimension holds the static table that drives every breakdown
// query: which nested collection to explode, which keys to group on, how the
// group is named and which identity fields are echoed.
package dimension

import (
	"errors"
	"fmt"
	"strings"

	"usage-insights-service/internal/metrics/core/domain"
)

var ErrUnknownDimension = errors.New("unknown breakdown dimension")

type Dimension string

const (
	IDE             Dimension = "ide"
	Model           Dimension = "model"
	Feature         Dimension = "feature"
	LanguageModel   Dimension = "language_model"
	LanguageFeature Dimension = "language_feature"
	ModelFeature    Dimension = "model_feature"
)

// Collection selects one nested sub-total collection of a record.
type Collection func(r *domain.MetricRecord) []domain.DimensionTotals

var (
	ByIDE             Collection = func(r *domain.MetricRecord) []domain.DimensionTotals { return r.TotalsByIDE }
	ByFeature         Collection = func(r *domain.MetricRecord) []domain.DimensionTotals { return r.TotalsByFeature }
	ByLanguageModel   Collection = func(r *domain.MetricRecord) []domain.DimensionTotals { return r.TotalsByLanguageModel }
	ByLanguageFeature Collection = func(r *domain.MetricRecord) []domain.DimensionTotals { return r.TotalsByLanguageFeature }
	ByModelFeature    Collection = func(r *domain.MetricRecord) []domain.DimensionTotals { return r.TotalsByModelFeature }
)

// Key is one grouping field of a dimension element.
type Key struct {
	Name string
	Get  func(e domain.DimensionTotals) string
	Echo func(k *domain.DimensionKeys, v string)
}

var (
	KeyIDE = Key{
		Name: "ide",
		Get:  func(e domain.DimensionTotals) string { return e.IDE },
		Echo: func(k *domain.DimensionKeys, v string) { k.IDE = v },
	}
	KeyFeature = Key{
		Name: "feature",
		Get:  func(e domain.DimensionTotals) string { return e.Feature },
		Echo: func(k *domain.DimensionKeys, v string) { k.Feature = v },
	}
	KeyLanguage = Key{
		Name: "language",
		Get:  func(e domain.DimensionTotals) string { return e.Language },
		Echo: func(k *domain.DimensionKeys, v string) { k.Language = v },
	}
	KeyModel = Key{
		Name: "model",
		Get:  func(e domain.DimensionTotals) string { return e.Model },
		Echo: func(k *domain.DimensionKeys, v string) { k.Model = v },
	}
)

// Config is one row of the registry.
type Config struct {
	Dimension  Dimension
	Collection Collection
	// CollectionName is the stored column / JSON field of the collection.
	CollectionName string
	Keys           []Key
	// CarriesModel / CarriesLanguage mark collections whose elements hold
	// those keys, so model/language criteria apply per element.
	CarriesModel    bool
	CarriesLanguage bool
}

const nameSeparator = " | "

var registry = map[Dimension]Config{
	IDE: {
		Dimension: IDE, Collection: ByIDE, CollectionName: "totals_by_ide",
		Keys: []Key{KeyIDE},
	},
	Model: {
		Dimension: Model, Collection: ByLanguageModel, CollectionName: "totals_by_language_model",
		Keys: []Key{KeyModel}, CarriesModel: true, CarriesLanguage: true,
	},
	Feature: {
		Dimension: Feature, Collection: ByFeature, CollectionName: "totals_by_feature",
		Keys: []Key{KeyFeature},
	},
	LanguageModel: {
		Dimension: LanguageModel, Collection: ByLanguageModel, CollectionName: "totals_by_language_model",
		Keys: []Key{KeyLanguage, KeyModel}, CarriesModel: true, CarriesLanguage: true,
	},
	LanguageFeature: {
		Dimension: LanguageFeature, Collection: ByLanguageFeature, CollectionName: "totals_by_language_feature",
		Keys: []Key{KeyLanguage, KeyFeature}, CarriesLanguage: true,
	},
	ModelFeature: {
		Dimension: ModelFeature, Collection: ByModelFeature, CollectionName: "totals_by_model_feature",
		Keys: []Key{KeyModel, KeyFeature}, CarriesModel: true,
	},
}

// Lookup returns the registry row for d.
func Lookup(d Dimension) (Config, error) {
	cfg, ok := registry[d]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownDimension, string(d))
	}
	return cfg, nil
}

// All lists the registered dimensions in a fixed order.
func All() []Dimension {
	return []Dimension{IDE, Model, Feature, LanguageModel, LanguageFeature, ModelFeature}
}

// GroupKey is the identity of an element within this dimension.
func (c Config) GroupKey(e domain.DimensionTotals) string {
	if len(c.Keys) == 1 {
		return c.Keys[0].Get(e)
	}
	parts := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		parts[i] = k.Get(e)
	}
	return strings.Join(parts, "\x00")
}

// DisplayName renders the group name: the single key, or "A | B".
func (c Config) DisplayName(e domain.DimensionTotals) string {
	parts := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		parts[i] = k.Get(e)
	}
	return strings.Join(parts, nameSeparator)
}

// Identity echoes the dimension's key fields of e.
func (c Config) Identity(e domain.DimensionTotals) domain.DimensionKeys {
	var k domain.DimensionKeys
	for _, key := range c.Keys {
		key.Echo(&k, key.Get(e))
	}
	return k
}

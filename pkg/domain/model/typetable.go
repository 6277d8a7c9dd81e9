package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// TypeMapping maps one upstream category code to a canonical incident type
type TypeMapping struct {
	Category string             `yaml:"category"` // Upstream category code (e.g. "food_water")
	Type     types.IncidentType `yaml:"type"`     // Canonical incident type
}

// TypeTable is the category to incident type lookup table.
// Unknown categories always fall back to "other"; a feed record is never
// dropped for carrying an unmapped category.
type TypeTable struct {
	Mappings []TypeMapping `yaml:"mappings"`
}

// Validate validates the type table
func (t *TypeTable) Validate() error {
	if len(t.Mappings) == 0 {
		return goerr.New("at least one type mapping is required")
	}

	seen := make(map[string]bool)
	for i, m := range t.Mappings {
		if m.Category == "" {
			return goerr.New("mapping category is required", goerr.V("index", i))
		}
		if !m.Type.IsValid() {
			return goerr.New("invalid incident type in mapping",
				goerr.V("category", m.Category),
				goerr.V("type", m.Type))
		}
		key := strings.ToLower(m.Category)
		if seen[key] {
			return goerr.New("duplicate category in type table",
				goerr.V("category", m.Category))
		}
		seen[key] = true
	}

	return nil
}

// Lookup resolves an upstream category code to an incident type.
// Matching is case-insensitive; nil category or no match yields "other".
func (t *TypeTable) Lookup(category *string) types.IncidentType {
	if category == nil {
		return types.IncidentTypeOther
	}

	key := strings.ToLower(strings.TrimSpace(*category))
	for _, m := range t.Mappings {
		if strings.ToLower(m.Category) == key {
			return m.Type
		}
	}
	return types.IncidentTypeOther
}

// DefaultTypeTable returns the built-in category mapping. It covers the
// category codes the upstream emits today plus the canonical names, so a
// feed that already speaks canonical types maps through unchanged.
func DefaultTypeTable() *TypeTable {
	return &TypeTable{
		Mappings: []TypeMapping{
			{Category: "fire", Type: types.IncidentTypeFire},
			{Category: "wildfire", Type: types.IncidentTypeFire},
			{Category: "medical", Type: types.IncidentTypeMedical},
			{Category: "rescue", Type: types.IncidentTypeRescue},
			{Category: "disaster", Type: types.IncidentTypeDisaster},
			{Category: "flood", Type: types.IncidentTypeDisaster},
			{Category: "shelter", Type: types.IncidentTypeDisaster},
			{Category: "emergency", Type: types.IncidentTypeEmergency},
			{Category: "sos", Type: types.IncidentTypeEmergency},
			{Category: "fuel", Type: types.IncidentTypeOther},
			{Category: "food_water", Type: types.IncidentTypeOther},
			{Category: "other", Type: types.IncidentTypeOther},
		},
	}
}

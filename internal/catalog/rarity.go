package catalog

import (
	"maps"

	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// RarityTable maps each rarity to its affix count bounds
type RarityTable struct {
	definitions map[equipment.Rarity]equipment.RarityDefinition
}

// DefaultRarityTable returns the built-in table
func DefaultRarityTable() *RarityTable {
	return &RarityTable{definitions: equipment.DefaultRarityDefinitions()}
}

// NewRarityTable builds a table from records, starting from the defaults so
// that a file only needs to list the rarities it overrides
func NewRarityTable(records []RarityRecord) (*RarityTable, error) {
	defs := equipment.DefaultRarityDefinitions()
	for i, rec := range records {
		rarity, ok := equipment.RarityFromString(rec.Rarity)
		if !ok {
			return nil, errors.InvalidArgumentf("rarity record %d: unknown rarity %q", i, rec.Rarity)
		}
		if rec.MinAffixes < 0 || rec.MaxAffixes < rec.MinAffixes {
			return nil, errors.InvalidArgumentf("rarity record %d: invalid affix range %d-%d",
				i, rec.MinAffixes, rec.MaxAffixes).WithMeta("rarity", rarity.String())
		}
		defs[rarity] = equipment.RarityDefinition{
			Rarity:     rarity,
			MinAffixes: rec.MinAffixes,
			MaxAffixes: rec.MaxAffixes,
		}
	}
	return &RarityTable{definitions: defs}, nil
}

// Get returns the definition for rarity
func (t *RarityTable) Get(rarity equipment.Rarity) (equipment.RarityDefinition, bool) {
	def, ok := t.definitions[rarity]
	return def, ok
}

// Definitions returns a copy of the table
func (t *RarityTable) Definitions() map[equipment.Rarity]equipment.RarityDefinition {
	return maps.Clone(t.definitions)
}

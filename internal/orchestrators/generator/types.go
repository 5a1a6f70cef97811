package generator

import (
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/random"
)

// LevelProvider supplies an item level at generation time, for callers such
// as spawners or enemies that know their own level
type LevelProvider interface {
	ItemLevel() int
}

// LevelFunc adapts a function to LevelProvider
type LevelFunc func() int

// ItemLevel returns f()
func (f LevelFunc) ItemLevel() int {
	return f()
}

// GenerateInput defines the request for generating an item
type GenerateInput struct {
	TemplateID string
	Level      int
	// LevelProvider, when set, takes precedence over Level.
	LevelProvider LevelProvider
	Rarity        equipment.Rarity
	// Random overrides the generator's source for this call only.
	Random random.Source
}

// GenerateOutput defines the response for generating an item
type GenerateOutput struct {
	Item *equipment.Item
}

// RollAffixesInput defines the request for rolling a fresh affix list
type RollAffixesInput struct {
	Template *equipment.Template
	Level    int
	Rarity   equipment.Rarity
	Random   random.Source
	// Exclude lists affix ids that must not be drawn.
	Exclude []string
}

// RollAffixesOutput defines the response for rolling affixes
type RollAffixesOutput struct {
	Affixes []*equipment.AffixInstance
}

package crafting

import (
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/random"
)

// RerollInput defines the request for rerolling an item's affixes
type RerollInput struct {
	Item *equipment.Item
	// CurrencyID and Cost override the configured price when CurrencyID is set.
	CurrencyID string
	Cost       int
	Random     random.Source
}

// RerollOutput defines the response for rerolling an item
type RerollOutput struct {
	Item *equipment.Item
	// Equipped reports whether the loadout reapplied the item.
	Equipped bool
}

// AugmentInput defines the request for adding an affix to an item
type AugmentInput struct {
	Item       *equipment.Item
	CurrencyID string
	Cost       int
	Random     random.Source
}

// AugmentOutput defines the response for augmenting an item
type AugmentOutput struct {
	Item     *equipment.Item
	Added    *equipment.AffixInstance
	Equipped bool
}

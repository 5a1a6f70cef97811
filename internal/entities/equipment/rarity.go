package equipment

import (
	"fmt"
	"strings"
)

// Rarity is the tier that controls how many affixes an item rolls
type Rarity string

// Define all rarities from lowest to highest
const (
	RarityCommon    Rarity = "common"
	RarityMagic     Rarity = "magic"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// String returns the string representation of the rarity
func (r Rarity) String() string {
	return string(r)
}

// IsValid checks if the rarity is valid
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityMagic, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// UnmarshalText accepts rarity names case-insensitively
func (r *Rarity) UnmarshalText(text []byte) error {
	rarity, ok := RarityFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown rarity %q", string(text))
	}
	*r = rarity
	return nil
}

// AllRarities returns all rarities from lowest to highest
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityMagic, RarityRare, RarityEpic, RarityLegendary}
}

// RarityFromString converts a string to a Rarity
func RarityFromString(s string) (Rarity, bool) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	if r.IsValid() {
		return r, true
	}
	return "", false
}

// RarityDefinition bounds the affix count for a rarity
type RarityDefinition struct {
	Rarity     Rarity `json:"rarity" yaml:"rarity"`
	MinAffixes int    `json:"minAffixes" yaml:"minAffixes"`
	MaxAffixes int    `json:"maxAffixes" yaml:"maxAffixes"`
}

// DefaultRarityDefinitions returns the built-in rarity table
func DefaultRarityDefinitions() map[Rarity]RarityDefinition {
	return map[Rarity]RarityDefinition{
		RarityCommon:    {Rarity: RarityCommon, MinAffixes: 0, MaxAffixes: 0},
		RarityMagic:     {Rarity: RarityMagic, MinAffixes: 1, MaxAffixes: 2},
		RarityRare:      {Rarity: RarityRare, MinAffixes: 2, MaxAffixes: 3},
		RarityEpic:      {Rarity: RarityEpic, MinAffixes: 3, MaxAffixes: 4},
		RarityLegendary: {Rarity: RarityLegendary, MinAffixes: 4, MaxAffixes: 5},
	}
}

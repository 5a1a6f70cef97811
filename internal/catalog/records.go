// Package catalog loads the static equipment and affix catalogs and answers
// eligibility and weighted selection queries against them.
package catalog

import "github.com/KirkDiggler/rpg-loot/internal/entities/stats"

// Affix record defaults applied when a field is absent
const (
	DefaultAffixWeight   = 1.0
	DefaultAffixMinLevel = 1
	DefaultAffixMaxLevel = 1000
)

// EquipmentFile is the root document of an equipment catalog
type EquipmentFile struct {
	Items []EquipmentRecord `json:"items" yaml:"items"`
}

// EquipmentRecord is one equipment template as stored on disk
type EquipmentRecord struct {
	ID               string         `json:"id" yaml:"id"`
	DisplayName      string         `json:"displayName" yaml:"displayName"`
	Description      string         `json:"description,omitempty" yaml:"description,omitempty"`
	IconResourcePath string         `json:"iconResourcePath,omitempty" yaml:"iconResourcePath,omitempty"`
	Slot             string         `json:"slot" yaml:"slot"`
	Tags             []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	BaseModifier     ModifierRecord `json:"baseModifier" yaml:"baseModifier"`
	// Modifiers is the key older catalogs used for BaseModifier.
	Modifiers *ModifierRecord `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// ModifierRecord is a stored modifier. Older files carry flat stat fields
// instead of entries; MigrateModifier moves them into Entries.
type ModifierRecord struct {
	Entries        []stats.Entry `json:"entries" yaml:"entries"`
	LegacyModifier `yaml:",inline"`
}

// LegacyModifier holds the flat per-stat fields of the old modifier schema
type LegacyModifier struct {
	MaxHealth             float64 `json:"maxHealth,omitempty" yaml:"maxHealth,omitempty"`
	MoveSpeed             float64 `json:"moveSpeed,omitempty" yaml:"moveSpeed,omitempty"`
	BaseDamage            float64 `json:"baseDamage,omitempty" yaml:"baseDamage,omitempty"`
	CritChance            float64 `json:"critChance,omitempty" yaml:"critChance,omitempty"`
	CritMultiplier        float64 `json:"critMultiplier,omitempty" yaml:"critMultiplier,omitempty"`
	AttackSpeedMultiplier float64 `json:"attackSpeedMultiplier,omitempty" yaml:"attackSpeedMultiplier,omitempty"`
	ProjectileCount       int     `json:"projectileCount,omitempty" yaml:"projectileCount,omitempty"`
	ProjectileSpreadAngle float64 `json:"projectileSpreadAngle,omitempty" yaml:"projectileSpreadAngle,omitempty"`
	WeaponAttackSpeed     float64 `json:"weaponAttackSpeed,omitempty" yaml:"weaponAttackSpeed,omitempty"`
	ChainCount            int     `json:"chainCount,omitempty" yaml:"chainCount,omitempty"`
	SplitCount            int     `json:"splitCount,omitempty" yaml:"splitCount,omitempty"`
	Armor                 float64 `json:"armor,omitempty" yaml:"armor,omitempty"`
	DodgeChance           float64 `json:"dodgeChance,omitempty" yaml:"dodgeChance,omitempty"`
	XPGainMultiplier      float64 `json:"xpGainMultiplier,omitempty" yaml:"xpGainMultiplier,omitempty"`
	CooldownReduction     float64 `json:"cooldownReduction,omitempty" yaml:"cooldownReduction,omitempty"`
	WeaponDamageMin       float64 `json:"weaponDamageMin,omitempty" yaml:"weaponDamageMin,omitempty"`
	WeaponDamageMax       float64 `json:"weaponDamageMax,omitempty" yaml:"weaponDamageMax,omitempty"`
}

// AffixFile is the root document of an affix catalog
type AffixFile struct {
	Affixes []AffixRecord `json:"affixes" yaml:"affixes"`
}

// AffixRecord is one affix definition as stored on disk. Pointer fields fall
// back to the package defaults when absent.
type AffixRecord struct {
	ID           string           `json:"id" yaml:"id"`
	DisplayName  string           `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Weight       *float64         `json:"weight,omitempty" yaml:"weight,omitempty"`
	MinLevel     *int             `json:"minLevel,omitempty" yaml:"minLevel,omitempty"`
	MaxLevel     *int             `json:"maxLevel,omitempty" yaml:"maxLevel,omitempty"`
	AllowedSlots []string         `json:"allowedSlots,omitempty" yaml:"allowedSlots,omitempty"`
	RequiredTags []string         `json:"requiredTags,omitempty" yaml:"requiredTags,omitempty"`
	ExcludedTags []string         `json:"excludedTags,omitempty" yaml:"excludedTags,omitempty"`
	StatRolls    []StatRollRecord `json:"statRolls" yaml:"statRolls"`
}

// StatRollRecord is a stored stat roll range
type StatRollRecord struct {
	StatID    string          `json:"statId" yaml:"statId"`
	MinValue  float64         `json:"minValue" yaml:"minValue"`
	MaxValue  float64         `json:"maxValue" yaml:"maxValue"`
	Operation stats.Operation `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// RarityFile is the root document of a rarity table override
type RarityFile struct {
	Rarities []RarityRecord `json:"rarities" yaml:"rarities"`
}

// RarityRecord is a stored rarity definition
type RarityRecord struct {
	Rarity     string `json:"rarity" yaml:"rarity"`
	MinAffixes int    `json:"minAffixes" yaml:"minAffixes"`
	MaxAffixes int    `json:"maxAffixes" yaml:"maxAffixes"`
}

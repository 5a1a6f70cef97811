package stats

import "slices"

// Sheet is a character's derived combat attributes. Equipment modifiers are
// applied to and reversed from a Sheet through the engine registry.
type Sheet struct {
	MaxHealth     float64 `json:"maxHealth" yaml:"maxHealth"`
	CurrentHealth float64 `json:"currentHealth" yaml:"currentHealth"`
	MoveSpeed     float64 `json:"moveSpeed" yaml:"moveSpeed"`

	Armor       float64 `json:"armor" yaml:"armor"`
	DodgeChance float64 `json:"dodgeChance" yaml:"dodgeChance"`

	BaseDamage            float64 `json:"baseDamage" yaml:"baseDamage"`
	ProjectileCount       int     `json:"projectileCount" yaml:"projectileCount"`
	ProjectileSpreadAngle float64 `json:"projectileSpreadAngle" yaml:"projectileSpreadAngle"`
	SplitCount            int     `json:"splitCount" yaml:"splitCount"`
	ChainCount            int     `json:"chainCount" yaml:"chainCount"`
	CooldownReduction     float64 `json:"cooldownReduction" yaml:"cooldownReduction"`
	AttackSpeedMultiplier float64 `json:"attackSpeedMultiplier" yaml:"attackSpeedMultiplier"`
	CritChance            float64 `json:"critChance" yaml:"critChance"`
	CritMultiplier        float64 `json:"critMultiplier" yaml:"critMultiplier"`
	WeaponAttackSpeed     float64 `json:"weaponAttackSpeed" yaml:"weaponAttackSpeed"`

	WeaponDamageMin float64 `json:"weaponDamageMin" yaml:"weaponDamageMin"`
	WeaponDamageMax float64 `json:"weaponDamageMax" yaml:"weaponDamageMax"`

	FireDamageMin      float64 `json:"fireDamageMin" yaml:"fireDamageMin"`
	FireDamageMax      float64 `json:"fireDamageMax" yaml:"fireDamageMax"`
	ColdDamageMin      float64 `json:"coldDamageMin" yaml:"coldDamageMin"`
	ColdDamageMax      float64 `json:"coldDamageMax" yaml:"coldDamageMax"`
	LightningDamageMin float64 `json:"lightningDamageMin" yaml:"lightningDamageMin"`
	LightningDamageMax float64 `json:"lightningDamageMax" yaml:"lightningDamageMax"`

	FireResistance      float64 `json:"fireResistance" yaml:"fireResistance"`
	ColdResistance      float64 `json:"coldResistance" yaml:"coldResistance"`
	LightningResistance float64 `json:"lightningResistance" yaml:"lightningResistance"`
	ShockDamageChance   float64 `json:"shockDamageChance" yaml:"shockDamageChance"`

	Level            int     `json:"level" yaml:"level"`
	XPGainMultiplier float64 `json:"xpGainMultiplier" yaml:"xpGainMultiplier"`

	// AllowedSkillTags gates skill acquisition; empty means no restriction.
	AllowedSkillTags []string `json:"allowedSkillTags,omitempty" yaml:"allowedSkillTags,omitempty"`
}

// NewSheet returns a sheet with the baseline values of a fresh character
func NewSheet() *Sheet {
	return &Sheet{
		MaxHealth:             100,
		CurrentHealth:         100,
		MoveSpeed:             5,
		ProjectileCount:       1,
		AttackSpeedMultiplier: 1,
		CritMultiplier:        1.5,
		WeaponAttackSpeed:     1,
		Level:                 1,
		XPGainMultiplier:      1,
	}
}

// Clone returns a deep copy
func (s *Sheet) Clone() *Sheet {
	if s == nil {
		return nil
	}
	c := *s
	c.AllowedSkillTags = slices.Clone(s.AllowedSkillTags)
	return &c
}

package catalog

import (
	"math"
	"slices"

	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
)

// MigrateModifier moves the legacy flat fields of rec into entries with the
// default operation and clears them. rec is not modified. The second return
// value reports whether any legacy field was set.
func MigrateModifier(rec ModifierRecord) (ModifierRecord, bool) {
	out := ModifierRecord{Entries: slices.Clone(rec.Entries)}
	legacy := rec.LegacyModifier

	fields := []struct {
		id    string
		value float64
	}{
		{stats.MaxHealth, legacy.MaxHealth},
		{stats.MoveSpeed, legacy.MoveSpeed},
		{stats.BaseDamage, legacy.BaseDamage},
		{stats.CritChance, legacy.CritChance},
		{stats.CritMultiplier, legacy.CritMultiplier},
		{stats.AttackSpeedMultiplier, legacy.AttackSpeedMultiplier},
		{stats.ProjectileCount, float64(legacy.ProjectileCount)},
		{stats.ProjectileSpreadAngle, legacy.ProjectileSpreadAngle},
		{stats.WeaponAttackSpeed, legacy.WeaponAttackSpeed},
		{stats.ChainCount, float64(legacy.ChainCount)},
		{stats.SplitCount, float64(legacy.SplitCount)},
		{stats.Armor, legacy.Armor},
		{stats.DodgeChance, legacy.DodgeChance},
		{stats.XPGainMultiplier, legacy.XPGainMultiplier},
		{stats.CooldownReduction, legacy.CooldownReduction},
		{stats.WeaponDamageMin, legacy.WeaponDamageMin},
		{stats.WeaponDamageMax, legacy.WeaponDamageMax},
	}

	changed := false
	for _, f := range fields {
		if isNearZero(f.value) {
			continue
		}
		out.Entries = append(out.Entries, stats.NewEntry(f.id, f.value, stats.OperationDefault))
		changed = true
	}
	return out, changed
}

// MigrateEquipmentFile migrates every record of doc, folding the old
// "modifiers" key into baseModifier. It returns the number of records that
// changed.
func MigrateEquipmentFile(doc EquipmentFile) (EquipmentFile, int) {
	out := EquipmentFile{Items: make([]EquipmentRecord, 0, len(doc.Items))}
	changed := 0
	for _, rec := range doc.Items {
		migrated, ok := migrateRecord(rec)
		if ok {
			changed++
		}
		out.Items = append(out.Items, migrated)
	}
	return out, changed
}

func migrateRecord(rec EquipmentRecord) (EquipmentRecord, bool) {
	out := rec
	out.Tags = slices.Clone(rec.Tags)

	base := rec.BaseModifier
	folded := false
	if rec.Modifiers != nil {
		base.Entries = append(slices.Clone(base.Entries), rec.Modifiers.Entries...)
		base.LegacyModifier = mergeLegacy(base.LegacyModifier, rec.Modifiers.LegacyModifier)
		out.Modifiers = nil
		folded = true
	}

	migrated, changed := MigrateModifier(base)
	out.BaseModifier = migrated
	return out, changed || folded
}

func mergeLegacy(a, b LegacyModifier) LegacyModifier {
	return LegacyModifier{
		MaxHealth:             a.MaxHealth + b.MaxHealth,
		MoveSpeed:             a.MoveSpeed + b.MoveSpeed,
		BaseDamage:            a.BaseDamage + b.BaseDamage,
		CritChance:            a.CritChance + b.CritChance,
		CritMultiplier:        a.CritMultiplier + b.CritMultiplier,
		AttackSpeedMultiplier: a.AttackSpeedMultiplier + b.AttackSpeedMultiplier,
		ProjectileCount:       a.ProjectileCount + b.ProjectileCount,
		ProjectileSpreadAngle: a.ProjectileSpreadAngle + b.ProjectileSpreadAngle,
		WeaponAttackSpeed:     a.WeaponAttackSpeed + b.WeaponAttackSpeed,
		ChainCount:            a.ChainCount + b.ChainCount,
		SplitCount:            a.SplitCount + b.SplitCount,
		Armor:                 a.Armor + b.Armor,
		DodgeChance:           a.DodgeChance + b.DodgeChance,
		XPGainMultiplier:      a.XPGainMultiplier + b.XPGainMultiplier,
		CooldownReduction:     a.CooldownReduction + b.CooldownReduction,
		WeaponDamageMin:       a.WeaponDamageMin + b.WeaponDamageMin,
		WeaponDamageMax:       a.WeaponDamageMax + b.WeaponDamageMax,
	}
}

func isNearZero(v float64) bool {
	return math.Abs(v) < 1e-6
}

package engine

import (
	"math"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
)

const (
	// multiplierEpsilon is how close 1+value may get to zero before the
	// multiplier is replaced with degenerateMultiplier. Reversal is not exact
	// for such entries.
	multiplierEpsilon    = 1e-6
	degenerateMultiplier = 1e-4
)

type definition struct {
	defaultOp stats.Operation
	apply     ApplyFunc
}

// Registry maps stat ids to their default operation and apply function.
// Registration happens at startup; the registry is read-only afterwards.
type Registry struct {
	definitions map[string]definition
}

// Verify that Registry implements StatApplier
var _ StatApplier = (*Registry)(nil)

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[string]definition)}
}

// NewDefaultRegistry creates a registry with every built-in stat registered
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	floats := []struct {
		id     string
		target func(*stats.Sheet) *float64
	}{
		{stats.MaxHealth, func(s *stats.Sheet) *float64 { return &s.MaxHealth }},
		{stats.MoveSpeed, func(s *stats.Sheet) *float64 { return &s.MoveSpeed }},
		{stats.BaseDamage, func(s *stats.Sheet) *float64 { return &s.BaseDamage }},
		{stats.CritChance, func(s *stats.Sheet) *float64 { return &s.CritChance }},
		{stats.CritMultiplier, func(s *stats.Sheet) *float64 { return &s.CritMultiplier }},
		{stats.AttackSpeedMultiplier, func(s *stats.Sheet) *float64 { return &s.AttackSpeedMultiplier }},
		{stats.ProjectileSpreadAngle, func(s *stats.Sheet) *float64 { return &s.ProjectileSpreadAngle }},
		{stats.WeaponAttackSpeed, func(s *stats.Sheet) *float64 { return &s.WeaponAttackSpeed }},
		{stats.Armor, func(s *stats.Sheet) *float64 { return &s.Armor }},
		{stats.DodgeChance, func(s *stats.Sheet) *float64 { return &s.DodgeChance }},
		{stats.XPGainMultiplier, func(s *stats.Sheet) *float64 { return &s.XPGainMultiplier }},
		{stats.CooldownReduction, func(s *stats.Sheet) *float64 { return &s.CooldownReduction }},
		{stats.WeaponDamageMin, func(s *stats.Sheet) *float64 { return &s.WeaponDamageMin }},
		{stats.WeaponDamageMax, func(s *stats.Sheet) *float64 { return &s.WeaponDamageMax }},
		{stats.FireDamageMin, func(s *stats.Sheet) *float64 { return &s.FireDamageMin }},
		{stats.FireDamageMax, func(s *stats.Sheet) *float64 { return &s.FireDamageMax }},
		{stats.ColdDamageMin, func(s *stats.Sheet) *float64 { return &s.ColdDamageMin }},
		{stats.ColdDamageMax, func(s *stats.Sheet) *float64 { return &s.ColdDamageMax }},
		{stats.LightningDamageMin, func(s *stats.Sheet) *float64 { return &s.LightningDamageMin }},
		{stats.LightningDamageMax, func(s *stats.Sheet) *float64 { return &s.LightningDamageMax }},
		{stats.FireResistance, func(s *stats.Sheet) *float64 { return &s.FireResistance }},
		{stats.ColdResistance, func(s *stats.Sheet) *float64 { return &s.ColdResistance }},
		{stats.LightningResistance, func(s *stats.Sheet) *float64 { return &s.LightningResistance }},
		{stats.ShockDamageChance, func(s *stats.Sheet) *float64 { return &s.ShockDamageChance }},
	}
	for _, f := range floats {
		r.Register(f.id, stats.OperationAdd, FloatStat(f.target))
	}

	ints := []struct {
		id     string
		target func(*stats.Sheet) *int
	}{
		{stats.ProjectileCount, func(s *stats.Sheet) *int { return &s.ProjectileCount }},
		{stats.ChainCount, func(s *stats.Sheet) *int { return &s.ChainCount }},
		{stats.SplitCount, func(s *stats.Sheet) *int { return &s.SplitCount }},
	}
	for _, i := range ints {
		r.Register(i.id, stats.OperationAdd, IntStat(i.target))
	}

	r.Register(stats.WeaponDamage, stats.OperationAdd, func(sheet *stats.Sheet, entry stats.Entry, op stats.Operation, sign Sign) {
		sheet.WeaponDamageMin = combine(sheet.WeaponDamageMin, entry.Value, op, sign)
		sheet.WeaponDamageMax = combine(sheet.WeaponDamageMax, entry.Value, op, sign)
	})
	r.Register(stats.AllowedSkillTags, stats.OperationAdd, applySkillTag)

	return r
}

// Register sets the default operation and apply function for a stat id.
// Registering an id twice replaces the earlier registration.
func (r *Registry) Register(statID string, defaultOp stats.Operation, fn ApplyFunc) {
	if statID == "" || fn == nil {
		return
	}
	r.definitions[statID] = definition{defaultOp: defaultOp, apply: fn}
}

// IsKnown reports whether statID has a registration
func (r *Registry) IsKnown(statID string) bool {
	_, ok := r.definitions[statID]
	return ok
}

// DefaultOperation returns the registered default operation for statID
func (r *Registry) DefaultOperation(statID string) (stats.Operation, bool) {
	def, ok := r.definitions[statID]
	if !ok {
		return stats.OperationDefault, false
	}
	return def.defaultOp, true
}

// KnownStatIDs returns the registered stat ids in ordinal order
func (r *Registry) KnownStatIDs() []string {
	ids := make([]string, 0, len(r.definitions))
	for id := range r.definitions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Apply executes entry against sheet with the given sign
func (r *Registry) Apply(sheet *stats.Sheet, entry stats.Entry, sign Sign) bool {
	if sheet == nil || !sign.IsValid() || strings.TrimSpace(entry.StatID) == "" {
		return false
	}

	def, ok := r.definitions[entry.StatID]
	if !ok {
		return false
	}

	op := entry.Operation
	if op == stats.OperationDefault {
		op = def.defaultOp
	}
	def.apply(sheet, entry, op, sign)
	return true
}

// ApplyModifier applies every entry of m in list order, or in reverse list
// order when sign is SignReverse, so a reversal undoes an application exactly
// even when Add and Multiply entries target the same stat.
func (r *Registry) ApplyModifier(sheet *stats.Sheet, m stats.Modifier, sign Sign) int {
	entries := m.Entries()
	if sign == SignReverse {
		slices.Reverse(entries)
	}

	applied := 0
	for _, entry := range entries {
		if r.Apply(sheet, entry, sign) {
			applied++
		}
	}
	return applied
}

// FloatStat builds an ApplyFunc for a float field of the sheet
func FloatStat(target func(*stats.Sheet) *float64) ApplyFunc {
	return func(sheet *stats.Sheet, entry stats.Entry, op stats.Operation, sign Sign) {
		p := target(sheet)
		*p = combine(*p, entry.Value, op, sign)
	}
}

// IntStat builds an ApplyFunc for an integer field of the sheet. Added values
// and multiplied products are rounded, so Multiply on an integer stat is not
// always exactly reversible.
func IntStat(target func(*stats.Sheet) *int) ApplyFunc {
	return func(sheet *stats.Sheet, entry stats.Entry, op stats.Operation, sign Sign) {
		p := target(sheet)
		switch op {
		case stats.OperationMultiply:
			*p = int(math.Round(float64(*p) * multiplier(entry.Value, sign)))
		default:
			*p += int(sign) * int(math.Round(entry.Value))
		}
	}
}

func combine(target, value float64, op stats.Operation, sign Sign) float64 {
	switch op {
	case stats.OperationMultiply:
		return target * multiplier(value, sign)
	default:
		return target + float64(sign)*value
	}
}

func multiplier(value float64, sign Sign) float64 {
	factor := 1 + value
	if math.Abs(factor) < multiplierEpsilon {
		factor = degenerateMultiplier
	}
	if sign == SignReverse {
		return 1 / factor
	}
	return factor
}

func applySkillTag(sheet *stats.Sheet, entry stats.Entry, _ stats.Operation, sign Sign) {
	tag := strings.TrimSpace(entry.Text)
	if tag == "" {
		return
	}

	if sign == SignReverse {
		sheet.AllowedSkillTags = slices.DeleteFunc(sheet.AllowedSkillTags, func(t string) bool {
			return strings.EqualFold(t, tag)
		})
		return
	}

	if !slices.ContainsFunc(sheet.AllowedSkillTags, func(t string) bool { return strings.EqualFold(t, tag) }) {
		sheet.AllowedSkillTags = append(sheet.AllowedSkillTags, tag)
	}
}

package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/random"
)

// AffixCatalog is the read-only pool of affix definitions
type AffixCatalog struct {
	affixes []*equipment.AffixDefinition
	byID    map[string]*equipment.AffixDefinition
}

// NewAffixCatalog builds a catalog from definitions. Empty ids, duplicate ids
// and definitions without stat rolls are dropped with a warning.
func NewAffixCatalog(defs ...*equipment.AffixDefinition) (*AffixCatalog, []Warning) {
	c := &AffixCatalog{byID: make(map[string]*equipment.AffixDefinition, len(defs))}
	var warnings []Warning
	for i, d := range defs {
		if d == nil {
			continue
		}
		if w, ok := c.add(i, d); !ok {
			warnings = append(warnings, w)
		}
	}
	return c, warnings
}

func (c *AffixCatalog) add(index int, d *equipment.AffixDefinition) (Warning, bool) {
	switch {
	case strings.TrimSpace(d.ID) == "":
		return Warning{Kind: WarningEmptyID, Index: index, Message: "affix record has an empty id"}, false
	case c.byID[d.ID] != nil:
		return Warning{Kind: WarningDuplicateID, ID: d.ID, Index: index, Message: "duplicate affix id, entry skipped"}, false
	case len(d.StatRolls) == 0:
		return Warning{Kind: WarningNoStatRolls, ID: d.ID, Index: index, Message: "affix has no stat rolls, entry skipped"}, false
	case d.MinLevel > d.MaxLevel:
		return Warning{
			Kind: WarningBadRange, ID: d.ID, Index: index,
			Message: fmt.Sprintf("minLevel %d exceeds maxLevel %d, entry skipped", d.MinLevel, d.MaxLevel),
		}, false
	}
	c.byID[d.ID] = d
	c.affixes = append(c.affixes, d)
	return Warning{}, true
}

// LoadAffixes converts records into a catalog. Unknown slots or operations
// abort the load; id, range and empty roll problems only produce warnings.
func LoadAffixes(records []AffixRecord, opts *Options) (*AffixCatalog, []Warning, error) {
	c := &AffixCatalog{byID: make(map[string]*equipment.AffixDefinition, len(records))}
	var warnings []Warning

	for i, rec := range records {
		def, err := affixFromRecord(rec)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "affix record %d (%q)", i, rec.ID)
		}

		w, ok := c.add(i, def)
		if !ok {
			warnings = append(warnings, w)
			continue
		}
		for _, roll := range def.StatRolls {
			if !opts.knownStat(roll.StatID) {
				warnings = append(warnings, Warning{
					Kind: WarningUnknownStat, ID: def.ID, Index: i,
					Message: fmt.Sprintf("stat roll references unknown stat %q", roll.StatID),
				})
			}
		}
	}
	return c, warnings, nil
}

func affixFromRecord(rec AffixRecord) (*equipment.AffixDefinition, error) {
	def := &equipment.AffixDefinition{
		ID:           strings.TrimSpace(rec.ID),
		DisplayName:  rec.DisplayName,
		Description:  rec.Description,
		Weight:       DefaultAffixWeight,
		MinLevel:     DefaultAffixMinLevel,
		MaxLevel:     DefaultAffixMaxLevel,
		RequiredTags: append([]string(nil), rec.RequiredTags...),
		ExcludedTags: append([]string(nil), rec.ExcludedTags...),
	}
	if rec.Weight != nil {
		def.Weight = *rec.Weight
	}
	if rec.MinLevel != nil {
		def.MinLevel = *rec.MinLevel
	}
	if rec.MaxLevel != nil {
		def.MaxLevel = *rec.MaxLevel
	}

	for _, s := range rec.AllowedSlots {
		slot, ok := equipment.SlotFromString(s)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown allowed slot %q", s).WithMeta("slot", s)
		}
		def.AllowedSlots = append(def.AllowedSlots, slot)
	}

	for _, roll := range rec.StatRolls {
		if !roll.Operation.IsValid() {
			return nil, errors.InvalidArgumentf("invalid operation for stat %q", roll.StatID)
		}
		if strings.TrimSpace(roll.StatID) == "" {
			continue
		}
		def.StatRolls = append(def.StatRolls, equipment.StatRoll{
			StatID:    roll.StatID,
			MinValue:  roll.MinValue,
			MaxValue:  roll.MaxValue,
			Operation: roll.Operation,
		})
	}
	return def, nil
}

// Get returns the definition with the given id
func (c *AffixCatalog) Get(id string) (*equipment.AffixDefinition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// All returns the definitions in load order
func (c *AffixCatalog) All() []*equipment.AffixDefinition {
	return append([]*equipment.AffixDefinition(nil), c.affixes...)
}

// Len returns the number of definitions
func (c *AffixCatalog) Len() int {
	return len(c.affixes)
}

// GetEligibleAffixes returns the definitions eligible for item at level, in
// catalog order
func (c *AffixCatalog) GetEligibleAffixes(item *equipment.Template, level int) []*equipment.AffixDefinition {
	eligible := make([]*equipment.AffixDefinition, 0, len(c.affixes))
	for _, d := range c.affixes {
		if IsEligible(d, item, level) {
			eligible = append(eligible, d)
		}
	}
	return eligible
}

// IsEligible reports whether affix may roll on item at level
func IsEligible(affix *equipment.AffixDefinition, item *equipment.Template, level int) bool {
	if affix == nil || item == nil {
		return false
	}
	if level < affix.MinLevel || level > affix.MaxLevel {
		return false
	}
	if len(affix.AllowedSlots) > 0 && !slices.Contains(affix.AllowedSlots, item.Slot) {
		return false
	}
	for _, tag := range affix.ExcludedTags {
		if strings.TrimSpace(tag) != "" && item.HasTag(tag) {
			return false
		}
	}
	for _, tag := range affix.RequiredTags {
		if strings.TrimSpace(tag) != "" && !item.HasTag(tag) {
			return false
		}
	}
	return len(affix.StatRolls) > 0
}

// CreateInstance rolls one value per stat roll of affix. Rolls with a blank
// stat id are skipped.
func CreateInstance(src random.Source, affix *equipment.AffixDefinition) *equipment.AffixInstance {
	instance := &equipment.AffixInstance{
		AffixID:     affix.ID,
		DisplayName: affix.DisplayName,
		Description: affix.Description,
		Entries:     make([]stats.Entry, 0, len(affix.StatRolls)),
	}
	for _, roll := range affix.StatRolls {
		if strings.TrimSpace(roll.StatID) == "" {
			continue
		}
		value := random.Uniform(src, roll.MinValue, roll.MaxValue)
		instance.Entries = append(instance.Entries, stats.NewEntry(roll.StatID, value, roll.Operation))
	}
	return instance
}

// DrawWeighted picks one candidate with probability proportional to its
// weight. Candidates with a weight of zero or less are never picked. It
// returns nil when no candidate has a positive weight.
func DrawWeighted(src random.Source, candidates []*equipment.AffixDefinition) *equipment.AffixDefinition {
	var (
		total float64
		last  *equipment.AffixDefinition
	)
	for _, c := range candidates {
		if c != nil && c.Weight > 0 {
			total += c.Weight
			last = c
		}
	}
	if total <= 0 {
		return nil
	}

	r := src.Float64() * total
	for _, c := range candidates {
		if c == nil || c.Weight <= 0 {
			continue
		}
		r -= c.Weight
		if r <= 0 {
			return c
		}
	}
	// rounding left r slightly above zero
	return last
}

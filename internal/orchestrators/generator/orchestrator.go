// Package generator combines equipment templates with randomly rolled affixes
// into concrete items
package generator

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-loot/internal/catalog"
	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/random"
)

// Service defines the interface for item generation
type Service interface {
	// Generate builds a new item from a template
	// Returns errors.InvalidArgument for an unknown template, rarity or a negative level
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// RollAffixes draws a fresh affix list for a template without building an item
	RollAffixes(ctx context.Context, input *RollAffixesInput) (*RollAffixesOutput, error)

	// Template resolves a template id
	Template(id string) (*equipment.Template, bool)

	// GetMaxAffixesForRarity returns the affix cap of rarity, zero when unknown
	GetMaxAffixesForRarity(rarity equipment.Rarity) int

	// GetEligibleAffixes returns the affixes that may roll on template at level
	GetEligibleAffixes(template *equipment.Template, level int) []*equipment.AffixDefinition

	// DrawAffix picks one affix by weight and rolls an instance of it
	DrawAffix(candidates []*equipment.AffixDefinition, src random.Source) *equipment.AffixInstance

	// Compose returns the template's base modifier followed by every affix entry
	Compose(template *equipment.Template, affixes []*equipment.AffixInstance) stats.Modifier
}

// Config holds the dependencies for the generator
type Config struct {
	Equipment   *catalog.EquipmentCatalog
	Affixes     *catalog.AffixCatalog
	Rarities    *catalog.RarityTable // optional, defaults to catalog.DefaultRarityTable
	DiceRoller  dice.Roller
	Random      random.Source
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Equipment == nil {
		vb.RequiredField("Equipment")
	}
	if c.Affixes == nil {
		vb.RequiredField("Affixes")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	equipment  *catalog.EquipmentCatalog
	affixes    *catalog.AffixCatalog
	rarities   *catalog.RarityTable
	diceRoller dice.Roller
	random     random.Source
	idGen      idgen.Generator
	clock      clock.Clock
}

// NewOrchestrator creates a new generator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rarities := cfg.Rarities
	if rarities == nil {
		rarities = catalog.DefaultRarityTable()
	}

	return &orchestrator{
		equipment:  cfg.Equipment,
		affixes:    cfg.Affixes,
		rarities:   rarities,
		diceRoller: cfg.DiceRoller,
		random:     cfg.Random,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
	}, nil
}

func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	template, ok := o.equipment.Get(input.TemplateID)
	if !ok {
		slog.WarnContext(ctx, "generate requested for unknown template", "template_id", input.TemplateID)
		return nil, errors.InvalidArgumentf("unknown template %q", input.TemplateID).
			WithMeta("template_id", input.TemplateID)
	}

	level := input.Level
	if input.LevelProvider != nil {
		level = input.LevelProvider.ItemLevel()
	}

	rolled, err := o.RollAffixes(ctx, &RollAffixesInput{
		Template: template,
		Level:    level,
		Rarity:   input.Rarity,
		Random:   input.Random,
	})
	if err != nil {
		return nil, err
	}

	item := &equipment.Item{
		ID:          o.idGen.Generate(),
		TemplateID:  template.ID,
		DisplayName: DisplayName(template, rolled.Affixes),
		Slot:        template.Slot,
		ItemLevel:   level,
		Rarity:      input.Rarity,
		Affixes:     rolled.Affixes,
		Modifier:    o.Compose(template, rolled.Affixes),
		GeneratedAt: o.clock.Now(),
	}

	slog.DebugContext(ctx, "generated item",
		"item_id", item.ID,
		"template_id", item.TemplateID,
		"rarity", item.Rarity.String(),
		"level", item.ItemLevel,
		"affixes", item.AffixIDs())

	return &GenerateOutput{Item: item}, nil
}

func (o *orchestrator) RollAffixes(ctx context.Context, input *RollAffixesInput) (*RollAffixesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	if input.Level < 0 {
		return nil, errors.InvalidArgumentf("level cannot be negative: %d", input.Level)
	}
	if !input.Rarity.IsValid() {
		return nil, errors.InvalidArgumentf("unknown rarity %q", input.Rarity)
	}

	src := o.source(input.Random)

	pool := o.GetEligibleAffixes(input.Template, input.Level)
	if len(input.Exclude) > 0 {
		pool = slices.DeleteFunc(pool, func(d *equipment.AffixDefinition) bool {
			return slices.Contains(input.Exclude, d.ID)
		})
	}

	count, err := o.rollAffixCount(input.Rarity, input.Random)
	if err != nil {
		return nil, err
	}
	count = min(count, len(pool))

	affixes := make([]*equipment.AffixInstance, 0, count)
	for len(affixes) < count {
		chosen := catalog.DrawWeighted(src, pool)
		if chosen == nil {
			// only non-positive weights remain
			break
		}
		affixes = append(affixes, catalog.CreateInstance(src, chosen))
		pool = slices.DeleteFunc(pool, func(d *equipment.AffixDefinition) bool { return d == chosen })
	}

	return &RollAffixesOutput{Affixes: affixes}, nil
}

// rollAffixCount draws uniformly from the rarity's [min, max] affix range. A
// per-call source also drives the count so that the whole roll follows it.
func (o *orchestrator) rollAffixCount(rarity equipment.Rarity, override random.Source) (int, error) {
	def, ok := o.rarities.Get(rarity)
	if !ok {
		return 0, nil
	}

	lo, hi := max(def.MinAffixes, 0), def.MaxAffixes
	if hi <= lo {
		return lo, nil
	}

	roller := o.diceRoller
	if override != nil {
		roller = random.NewDiceRoller(override)
	}

	roll, err := roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll affix count")
	}
	return lo + roll - 1, nil
}

func (o *orchestrator) Template(id string) (*equipment.Template, bool) {
	return o.equipment.Get(id)
}

func (o *orchestrator) GetMaxAffixesForRarity(rarity equipment.Rarity) int {
	def, ok := o.rarities.Get(rarity)
	if !ok {
		return 0
	}
	return max(def.MaxAffixes, 0)
}

func (o *orchestrator) GetEligibleAffixes(template *equipment.Template, level int) []*equipment.AffixDefinition {
	return o.affixes.GetEligibleAffixes(template, level)
}

func (o *orchestrator) DrawAffix(candidates []*equipment.AffixDefinition, src random.Source) *equipment.AffixInstance {
	src = o.source(src)
	chosen := catalog.DrawWeighted(src, candidates)
	if chosen == nil {
		return nil
	}
	return catalog.CreateInstance(src, chosen)
}

func (o *orchestrator) Compose(template *equipment.Template, affixes []*equipment.AffixInstance) stats.Modifier {
	return Compose(template, affixes)
}

func (o *orchestrator) source(override random.Source) random.Source {
	if override != nil {
		return override
	}
	return o.random
}

// Compose returns the template's base modifier followed by every affix entry
// in affix order
func Compose(template *equipment.Template, affixes []*equipment.AffixInstance) stats.Modifier {
	var composed stats.Modifier
	if template != nil {
		composed = template.BaseModifier.Clone()
	}
	for _, a := range affixes {
		if a != nil {
			composed.Append(a.Entries...)
		}
	}
	return composed
}

// DisplayName names an item after its first affix, e.g. "Fiery Bow"
func DisplayName(template *equipment.Template, affixes []*equipment.AffixInstance) string {
	base := template.DisplayName
	if base == "" {
		base = template.ID
	}
	if len(affixes) == 0 || affixes[0] == nil || strings.TrimSpace(affixes[0].DisplayName) == "" {
		return base
	}
	return affixes[0].DisplayName + " " + base
}

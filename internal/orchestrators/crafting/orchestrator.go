// Package crafting spends currency to reroll or augment the affixes of
// generated items.
//
// Every operation validates first and pays last. A returned error means the
// item, the loadout and the ledger were left untouched.
package crafting

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-loot/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
	"github.com/KirkDiggler/rpg-loot/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-loot/internal/pkg/random"
	"github.com/KirkDiggler/rpg-loot/internal/repositories/ledger"
)

// Default currencies and costs
const (
	CurrencyRerollOrb    = "RerollOrb"
	CurrencyAugmentShard = "AugmentShard"

	DefaultRerollCost  = 1
	DefaultAugmentCost = 3
)

// Event types published on the configured bus
const (
	EventItemRerolled  = "loot.item.rerolled"
	EventItemAugmented = "loot.item.augmented"
)

// Service defines the interface for crafting operations
type Service interface {
	// Reroll replaces every affix on the item with a fresh roll
	// Returns errors.InvalidArgument for a nil or non-generated item
	// Returns errors.InsufficientResource when the ledger cannot cover the cost
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)

	// Augment adds one affix the item does not have yet
	// Returns errors.InvalidArgument for a nil or non-generated item
	// Returns errors.FailedPrecondition when the item is at its rarity's affix cap
	// Returns errors.NoEligibleOptions when no new affix can roll on the item
	// Returns errors.InsufficientResource when the ledger cannot cover the cost
	Augment(ctx context.Context, input *AugmentInput) (*AugmentOutput, error)
}

// ItemSyncer reapplies an item that may be equipped after it changed
type ItemSyncer interface {
	Resync(ctx context.Context, item *equipment.Item) (bool, error)
}

// Config holds the dependencies for crafting
type Config struct {
	Generator generator.Service
	Ledger    ledger.Ledger

	// Loadout is optional. When set, equipped items are resynced after a change.
	Loadout ItemSyncer
	// EventBus is optional.
	EventBus events.EventBus
	// Owner is the event source.
	Owner core.Entity
	// Random is used for augment draws, defaults to a time seeded source.
	Random random.Source

	RerollCurrency  string
	RerollCost      int
	AugmentCurrency string
	AugmentCost     int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	errors.ValidateNonNegative("RerollCost", c.RerollCost, vb)
	errors.ValidateNonNegative("AugmentCost", c.AugmentCost, vb)

	return vb.Build()
}

type orchestrator struct {
	generator generator.Service
	ledger    ledger.Ledger
	loadout   ItemSyncer
	eventBus  events.EventBus
	owner     core.Entity
	random    random.Source

	reroll  price
	augment price
}

type price struct {
	currencyID string
	cost       int
}

// NewOrchestrator creates a new crafting service with the provided dependencies.
// Empty currencies fall back to RerollOrb and AugmentShard; with an empty
// currency a zero cost falls back to the default cost too.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		generator: cfg.Generator,
		ledger:    cfg.Ledger,
		loadout:   cfg.Loadout,
		eventBus:  cfg.EventBus,
		owner:     cfg.Owner,
		random:    cfg.Random,
		reroll:    price{currencyID: cfg.RerollCurrency, cost: cfg.RerollCost},
		augment:   price{currencyID: cfg.AugmentCurrency, cost: cfg.AugmentCost},
	}

	if o.random == nil {
		o.random = random.New()
	}
	if o.reroll.currencyID == "" {
		o.reroll.currencyID = CurrencyRerollOrb
		if o.reroll.cost == 0 {
			o.reroll.cost = DefaultRerollCost
		}
	}
	if o.augment.currencyID == "" {
		o.augment.currencyID = CurrencyAugmentShard
		if o.augment.cost == 0 {
			o.augment.cost = DefaultAugmentCost
		}
	}

	return o, nil
}

func (o *orchestrator) Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	template, err := o.resolveTemplate(input.Item)
	if err != nil {
		return nil, err
	}

	p, err := o.reroll.override(input.CurrencyID, input.Cost)
	if err != nil {
		return nil, err
	}

	item := input.Item
	if err := o.checkBalance(ctx, "reroll", item, p); err != nil {
		return nil, err
	}

	rolled, err := o.generator.RollAffixes(ctx, &generator.RollAffixesInput{
		Template: template,
		Level:    item.ItemLevel,
		Rarity:   item.Rarity,
		Random:   input.Random,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reroll item %s", item.ID)
	}

	if err := o.pay(ctx, "reroll", item, p); err != nil {
		return nil, err
	}

	previous := item.AffixIDs()
	o.rebuild(item, template, rolled.Affixes)
	equipped := o.resync(ctx, item)

	slog.InfoContext(ctx, "rerolled item",
		"item_id", item.ID,
		"currency", p.currencyID,
		"cost", p.cost,
		"previous_affixes", previous,
		"affixes", item.AffixIDs())

	o.publish(ctx, EventItemRerolled, item)

	return &RerollOutput{Item: item, Equipped: equipped}, nil
}

func (o *orchestrator) Augment(ctx context.Context, input *AugmentInput) (*AugmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	template, err := o.resolveTemplate(input.Item)
	if err != nil {
		return nil, err
	}

	p, err := o.augment.override(input.CurrencyID, input.Cost)
	if err != nil {
		return nil, err
	}

	item := input.Item
	maxAffixes := o.generator.GetMaxAffixesForRarity(item.Rarity)
	if len(item.Affixes) >= maxAffixes {
		slog.DebugContext(ctx, "augment rejected, item at affix cap",
			"item_id", item.ID,
			"rarity", item.Rarity.String(),
			"max_affixes", maxAffixes)
		return nil, errors.FailedPreconditionf("item %s already has %d of %d affixes",
			item.ID, len(item.Affixes), maxAffixes).
			WithMeta("item_id", item.ID)
	}

	pool := slices.DeleteFunc(o.generator.GetEligibleAffixes(template, item.ItemLevel),
		func(d *equipment.AffixDefinition) bool { return item.HasAffix(d.ID) })
	if len(pool) == 0 {
		slog.DebugContext(ctx, "augment rejected, no eligible affixes", "item_id", item.ID)
		return nil, errors.NoEligibleOptionsf("no new affix can roll on item %s", item.ID).
			WithMeta("item_id", item.ID)
	}

	if err := o.checkBalance(ctx, "augment", item, p); err != nil {
		return nil, err
	}

	src := input.Random
	if src == nil {
		src = o.random
	}
	instance := o.generator.DrawAffix(pool, src)
	if instance == nil {
		slog.DebugContext(ctx, "augment rejected, eligible affixes have no weight", "item_id", item.ID)
		return nil, errors.NoEligibleOptionsf("no eligible affix for item %s has a positive weight", item.ID).
			WithMeta("item_id", item.ID)
	}

	if err := o.pay(ctx, "augment", item, p); err != nil {
		return nil, err
	}

	affixes := append(slices.Clone(item.Affixes), instance)
	o.rebuild(item, template, affixes)
	equipped := o.resync(ctx, item)

	slog.InfoContext(ctx, "augmented item",
		"item_id", item.ID,
		"currency", p.currencyID,
		"cost", p.cost,
		"affix_id", instance.AffixID)

	o.publish(ctx, EventItemAugmented, item)

	return &AugmentOutput{Item: item, Added: instance, Equipped: equipped}, nil
}

func (o *orchestrator) resolveTemplate(item *equipment.Item) (*equipment.Template, error) {
	if item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if item.TemplateID == "" {
		return nil, errors.InvalidArgumentf("item %s was not generated from a template", item.ID).
			WithMeta("item_id", item.ID)
	}

	template, ok := o.generator.Template(item.TemplateID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown template %q", item.TemplateID).
			WithMeta("item_id", item.ID).
			WithMeta("template_id", item.TemplateID)
	}
	return template, nil
}

func (o *orchestrator) checkBalance(ctx context.Context, action string, item *equipment.Item, p price) error {
	ok, err := o.ledger.ContainsAtLeast(ctx, p.currencyID, p.cost)
	if err != nil {
		return errors.Wrapf(err, "failed to check %s balance", p.currencyID)
	}
	if !ok {
		slog.DebugContext(ctx, action+" rejected, insufficient currency",
			"item_id", item.ID,
			"currency", p.currencyID,
			"cost", p.cost)
		return insufficient(p)
	}
	return nil
}

// pay consumes the cost; the ledger may still refuse if the balance moved
// since the check
func (o *orchestrator) pay(ctx context.Context, action string, item *equipment.Item, p price) error {
	ok, err := o.ledger.Consume(ctx, p.currencyID, p.cost)
	if err != nil {
		return errors.Wrapf(err, "failed to consume %s", p.currencyID)
	}
	if !ok {
		slog.DebugContext(ctx, action+" rejected, currency consumed concurrently",
			"item_id", item.ID,
			"currency", p.currencyID)
		return insufficient(p)
	}
	return nil
}

func (o *orchestrator) rebuild(item *equipment.Item, template *equipment.Template, affixes []*equipment.AffixInstance) {
	item.Affixes = affixes
	item.Modifier = o.generator.Compose(template, affixes)
	item.DisplayName = generator.DisplayName(template, affixes)
}

func (o *orchestrator) resync(ctx context.Context, item *equipment.Item) bool {
	if o.loadout == nil {
		return false
	}

	equipped, err := o.loadout.Resync(ctx, item)
	if err != nil {
		// The item is already paid for and rebuilt at this point.
		slog.ErrorContext(ctx, "failed to resync equipped item", "item_id", item.ID, "error", err)
		return false
	}
	return equipped
}

func (o *orchestrator) publish(ctx context.Context, eventType string, item *equipment.Item) {
	if o.eventBus == nil {
		return
	}

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, o.owner, item)); err != nil {
		slog.WarnContext(ctx, "failed to publish crafting event",
			"event", eventType,
			"item_id", item.ID,
			"error", err)
	}
}

func (p price) override(currencyID string, cost int) (price, error) {
	if currencyID == "" {
		return p, nil
	}
	if cost < 0 {
		return price{}, errors.InvalidArgumentf("cost cannot be negative: %d", cost)
	}
	return price{currencyID: currencyID, cost: cost}, nil
}

func insufficient(p price) error {
	return errors.InsufficientResourcef("not enough %s, need %d", p.currencyID, p.cost).
		WithMeta("currency_id", p.currencyID).
		WithMeta("cost", p.cost)
}
